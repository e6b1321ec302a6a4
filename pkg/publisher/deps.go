package publisher

import (
	"time"

	"github.com/truverse/taskctl/pkg/chain"
	"github.com/truverse/taskctl/pkg/ipfs"
	"github.com/truverse/taskctl/pkg/truebit"
)

// NewDeps binds the filesystem registry from the manifest to client.
func NewDeps(client *chain.Client, store ipfs.Store, manifest chain.Manifest) (Deps, error) {
	fs, err := manifest.Bind(client, chain.Filesystem)
	if err != nil {
		return Deps{}, err
	}
	return Deps{
		Store:    store,
		Registry: truebit.NewFilesystem(fs),
		Chain:    client,
		Now:      time.Now,
	}, nil
}
