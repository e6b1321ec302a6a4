package chain

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Artifact is a compiled contract: a Hardhat artifact file or a bare ABI.
type Artifact struct {
	ContractName string
	ABI          abi.ABI
	Bytecode     []byte
}

type hardhatArtifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// ParseArtifact accepts either a JSON ABI array or an object with "abi" and
// optionally "bytecode" fields.
func ParseArtifact(b []byte) (*Artifact, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, errors.New("empty contract artifact")
	}
	if b[0] == '[' {
		parsed, err := abi.JSON(bytes.NewReader(b))
		if err != nil {
			return nil, errors.Wrap(err, "parsing abi")
		}
		return &Artifact{ABI: parsed}, nil
	}

	var raw hardhatArtifact
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing contract artifact")
	}
	if len(raw.ABI) == 0 {
		return nil, errors.New("contract artifact has no abi")
	}
	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing abi of %s", raw.ContractName)
	}
	artifact := &Artifact{ContractName: raw.ContractName, ABI: parsed}
	if raw.Bytecode != "" && raw.Bytecode != "0x" {
		artifact.Bytecode, err = hexutil.Decode(raw.Bytecode)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding bytecode of %s", raw.ContractName)
		}
	}
	return artifact, nil
}

func LoadArtifact(path string) (*Artifact, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading contract artifact %s", path)
	}
	artifact, err := ParseArtifact(b)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return artifact, nil
}

func LoadABI(path string) (abi.ABI, error) {
	artifact, err := LoadArtifact(path)
	if err != nil {
		return abi.ABI{}, err
	}
	return artifact.ABI, nil
}
