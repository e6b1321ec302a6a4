package ipfs_http //nolint:revive,stylecheck

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/ipfs/go-libipfs/files"
	httpapi "github.com/ipfs/go-ipfs-http-client"
	"github.com/ipfs/interface-go-ipfs-core/options"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/truverse/taskctl/pkg/ipfs"
)

// IPFSHttpClient talks to the HTTP API of an IPFS daemon.
type IPFSHttpClient struct {
	Address string
	Pin     bool
	API     *httpapi.HttpApi
}

// NewIPFSHttpClient accepts either a multiaddr (/ip4/127.0.0.1/tcp/5001) or a
// URL (http://localhost:5001) for the daemon's API.
func NewIPFSHttpClient(address string, client *http.Client) (*IPFSHttpClient, error) {
	if client == nil {
		client = http.DefaultClient
	}

	var (
		api *httpapi.HttpApi
		err error
	)
	if strings.HasPrefix(address, "/") {
		var addr ma.Multiaddr
		addr, err = ma.NewMultiaddr(address)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid IPFS API multiaddr %q", address)
		}
		api, err = httpapi.NewApiWithClient(addr, client)
	} else {
		api, err = httpapi.NewURLApiWithClient(strings.TrimSuffix(address, "/"), client)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "creating IPFS client for %s", address)
	}

	return &IPFSHttpClient{
		Address: address,
		Pin:     true,
		API:     api,
	}, nil
}

// Add uploads data as a single unixfs file.
func (c *IPFSHttpClient) Add(ctx context.Context, name string, data []byte) (ipfs.Upload, error) {
	node := files.NewReaderFile(bytes.NewReader(data))
	resolved, err := c.API.Unixfs().Add(ctx, node, options.Unixfs.Pin(c.Pin))
	if err != nil {
		return ipfs.Upload{}, errors.Wrapf(err, "adding %s to IPFS at %s", name, c.Address)
	}

	log.Ctx(ctx).Debug().
		Str("name", name).
		Int("size", len(data)).
		Stringer("cid", resolved.Cid()).
		Msg("added file to IPFS")

	return ipfs.Upload{
		Path: name,
		CID:  resolved.Cid(),
	}, nil
}

var _ ipfs.Store = (*IPFSHttpClient)(nil)
