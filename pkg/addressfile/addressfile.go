// Package addressfile persists the deployed task contract address between the
// publish and submit commands.
package addressfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// DefaultPath is relative to the working directory.
const DefaultPath = ".address"

// ErrNotPublished is returned by Read when there is no address file yet.
var ErrNotPublished = errors.New("no deployed contract address found, run publish first")

// Write replaces the contents of path with the checksummed hex address.
func Write(path string, addr common.Address) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.WriteString(addr.Hex()); err != nil {
		tmp.Close() //nolint:errcheck
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil { //nolint:gomnd
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(os.Rename(tmp.Name(), path), "writing %s", path)
}

// Read returns the address stored at path.
func Read(path string) (common.Address, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return common.Address{}, errors.Wrap(ErrNotPublished, path)
	}
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "reading %s", path)
	}
	s := strings.TrimSpace(string(b))
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Errorf("%s does not contain a contract address: %q", path, s)
	}
	return common.HexToAddress(s), nil
}
