//go:build unit || !integration

package addressfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"pgregory.net/rapid"
)

func TestProperty_WriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		var addr common.Address
		copy(addr[:], rapid.SliceOfN(rapid.Byte(), common.AddressLength, common.AddressLength).Draw(t, "addr"))
		path := filepath.Join(dir, DefaultPath)

		if err := Write(path, addr); err != nil {
			t.Fatalf("write: %v", err)
		}
		got, err := Read(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != addr {
			t.Fatalf("read %s, wrote %s", got.Hex(), addr.Hex())
		}
		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}
	})
}
