package chain

import (
	"encoding/json"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Names of the protocol contracts in a manifest.
const (
	Filesystem = "filesystem"
	Incentive  = "incentive"
	Token      = "tru"
)

// ContractRef is one deployed protocol contract.
type ContractRef struct {
	Address common.Address  `json:"address"`
	ABI     json.RawMessage `json:"abi"`
}

func (r ContractRef) Artifact() (*Artifact, error) {
	return ParseArtifact(r.ABI)
}

// Manifest maps protocol contract names to their deployment for one network.
type Manifest map[string]ContractRef

func LoadManifest(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading contracts manifest %s", path)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing contracts manifest %s", path)
	}
	return m, nil
}

func (m Manifest) Get(name string) (ContractRef, error) {
	ref, ok := m[name]
	if !ok {
		return ContractRef{}, errors.Errorf("contracts manifest has no %q entry", name)
	}
	if ref.Address == (common.Address{}) {
		return ContractRef{}, errors.Errorf("contracts manifest entry %q has no address", name)
	}
	return ref, nil
}

// Bind parses the ABI of the named contract and binds it to the client.
func (m Manifest) Bind(c *Client, name string) (*Contract, error) {
	ref, err := m.Get(name)
	if err != nil {
		return nil, err
	}
	artifact, err := ref.Artifact()
	if err != nil {
		return nil, errors.Wrapf(err, "contracts manifest entry %q", name)
	}
	return c.Bind(ref.Address, artifact.ABI), nil
}
