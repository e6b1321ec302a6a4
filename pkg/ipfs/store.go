package ipfs

import (
	"context"

	"github.com/ipfs/go-cid"
)

// Upload is what the content store returns for an added buffer.
type Upload struct {
	// Path is the logical name the buffer was added under.
	Path string
	CID  cid.Cid
}

// Store is a content-addressed store that can take a named byte buffer.
type Store interface {
	Add(ctx context.Context, name string, data []byte) (Upload, error)
}
