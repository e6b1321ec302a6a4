package version

import "runtime"

// Set with -ldflags "-X github.com/truverse/taskctl/pkg/version.GITVERSION=..." at build time.
var (
	GITVERSION = "v0.0.0-dev"
	GITCOMMIT  = ""
	BUILDDATE  = ""
	GOOS       = runtime.GOOS
	GOARCH     = runtime.GOARCH
)
