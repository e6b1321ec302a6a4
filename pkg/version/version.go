package version

import (
	"strconv"
	"time"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

type BuildVersionInfo struct {
	Major      string    `json:"major,omitempty" yaml:"major,omitempty"`
	Minor      string    `json:"minor,omitempty" yaml:"minor,omitempty"`
	GitVersion string    `json:"gitversion" yaml:"gitversion"`
	GitCommit  string    `json:"gitcommit" yaml:"gitcommit"`
	BuildDate  time.Time `json:"builddate" yaml:"builddate"`
	GOOS       string    `json:"goos" yaml:"goos"`
	GOARCH     string    `json:"goarch" yaml:"goarch"`
}

// Get returns the version the binary was built from.
func Get() (*BuildVersionInfo, error) {
	return parse(GITVERSION, GITCOMMIT, BUILDDATE)
}

func parse(gitVersion, gitCommit, buildDate string) (*BuildVersionInfo, error) {
	s, err := semver.NewVersion(gitVersion)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse GITVERSION %q", gitVersion)
	}
	info := &BuildVersionInfo{
		GitVersion: gitVersion,
		Major:      strconv.FormatInt(s.Major(), 10), //nolint:gomnd
		Minor:      strconv.FormatInt(s.Minor(), 10), //nolint:gomnd
		GitCommit:  gitCommit,
		GOOS:       GOOS,
		GOARCH:     GOARCH,
	}
	if buildDate != "" {
		if info.BuildDate, err = time.Parse("2006-01-02T15:04:05Z", buildDate); err != nil {
			return nil, errors.Wrapf(err, "could not parse BUILDDATE %q", buildDate)
		}
	}
	return info, nil
}
