// Package ipfstesting has an in-memory content store for tests.
package ipfstesting

import (
	"context"
	"sync"

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"

	"github.com/truverse/taskctl/pkg/ipfs"
)

// FakeStore keeps added buffers in memory keyed by a raw sha2-256 CIDv1.
type FakeStore struct {
	mu    sync.Mutex
	Files map[cid.Cid][]byte
	Names []string
	// Err, when set, is returned by every Add.
	Err error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{Files: map[cid.Cid][]byte{}}
}

func (f *FakeStore) Add(_ context.Context, name string, data []byte) (ipfs.Upload, error) {
	if f.Err != nil {
		return ipfs.Upload{}, f.Err
	}
	c, err := cid.V1Builder{Codec: cid.Raw, MhType: mh.SHA2_256}.Sum(data)
	if err != nil {
		return ipfs.Upload{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Files[c] = append([]byte(nil), data...)
	f.Names = append(f.Names, name)
	return ipfs.Upload{Path: name, CID: c}, nil
}

var _ ipfs.Store = (*FakeStore)(nil)
