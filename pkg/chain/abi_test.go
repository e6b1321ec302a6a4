//go:build unit || !integration

package chain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reverseArtifact = `{
  "_format": "hh-sol-artifact-1",
  "contractName": "Reverse",
  "abi": [
    {"type":"function","name":"getOutput","inputs":[{"name":"input","type":"bytes"}],"outputs":[{"name":"","type":"bytes"}],"stateMutability":"view"}
  ],
  "bytecode": "0x6080"
}`

func TestParseArtifactHardhat(t *testing.T) {
	artifact, err := ParseArtifact([]byte(reverseArtifact))
	require.NoError(t, err)
	assert.Equal(t, "Reverse", artifact.ContractName)
	assert.Contains(t, artifact.ABI.Methods, "getOutput")
	assert.Equal(t, []byte{0x60, 0x80}, artifact.Bytecode)
}

func TestParseArtifactBareABI(t *testing.T) {
	artifact, err := ParseArtifact([]byte(feeABI))
	require.NoError(t, err)
	assert.Contains(t, artifact.ABI.Methods, "protocolFee")
	assert.Empty(t, artifact.Bytecode)
}

func TestParseArtifactErrors(t *testing.T) {
	for _, in := range []string{"", "{}", "not json", `{"abi":[],"bytecode":"0xzz"}`, `[{"type":"function","name":1}]`} {
		_, err := ParseArtifact([]byte(in))
		assert.Error(t, err, in)
	}
}

func TestLoadArtifactMissing(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "Reverse.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Reverse.json")
}

func TestManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contracts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"filesystem": {"address": "0x5FbDB2315678afecb367f032d93F642f64180aa3", "abi": `+feeABI+`},
		"tru": {"address": "0x0000000000000000000000000000000000000000", "abi": []}
	}`), 0o600))

	m, err := LoadManifest(path)
	require.NoError(t, err)

	ref, err := m.Get(Filesystem)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), ref.Address)
	artifact, err := ref.Artifact()
	require.NoError(t, err)
	assert.Contains(t, artifact.ABI.Methods, "poke")

	_, err = m.Get(Incentive)
	assert.Error(t, err)
	_, err = m.Get(Token)
	assert.Error(t, err, "zero address should be rejected")
}
