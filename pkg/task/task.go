package task

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

const (
	BinaryExt   = ".wasm"
	MetadataExt = ".wasm.json"
)

// VM is the execution environment section of the task metadata. Only the code
// root is interpreted; the remaining fields are kept as emitted by the task
// toolchain.
type VM struct {
	Code  common.Hash                `json:"code"`
	Extra map[string]json.RawMessage `json:"-"`
}

func (vm *VM) UnmarshalJSON(b []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	code, ok := raw["code"]
	if !ok {
		return errors.New("vm.code is missing")
	}
	var codeHex string
	if err := json.Unmarshal(code, &codeHex); err != nil {
		return errors.Wrap(err, "vm.code is not a string")
	}
	codeBytes, err := hexutil.Decode(codeHex)
	if err != nil {
		return errors.Wrapf(err, "vm.code %q", codeHex)
	}
	if len(codeBytes) != common.HashLength {
		return errors.Errorf("vm.code must be %d bytes, got %d", common.HashLength, len(codeBytes))
	}
	delete(raw, "code")
	vm.Code = common.BytesToHash(codeBytes)
	vm.Extra = raw
	return nil
}

// Metadata is the <name>.wasm.json file written next to a compiled task.
type Metadata struct {
	VM VM `json:"vm"`
}

// Artifact is a compiled task loaded from disk.
type Artifact struct {
	Name     string
	Path     string
	Code     []byte
	Metadata Metadata
}

func (a *Artifact) Size() uint64 {
	return uint64(len(a.Code))
}

// CodeRoot is the execution-environment code root from the metadata.
func (a *Artifact) CodeRoot() common.Hash {
	return a.Metadata.VM.Code
}

// Load reads <dir>/<name>.wasm and <dir>/<name>.wasm.json.
func Load(dir, name string) (*Artifact, error) {
	if name == "" {
		return nil, errors.New("task name is empty")
	}
	binPath := filepath.Join(dir, name+BinaryExt)
	code, err := os.ReadFile(binPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading task binary %s", binPath)
	}

	metaPath := filepath.Join(dir, name+MetadataExt)
	metaBytes, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading task metadata %s", metaPath)
	}
	var meta Metadata
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, errors.Wrapf(err, "parsing task metadata %s", metaPath)
	}
	if meta.VM.Code == (common.Hash{}) {
		return nil, errors.Errorf("task metadata %s has no vm.code", metaPath)
	}

	return &Artifact{
		Name:     name,
		Path:     binPath,
		Code:     code,
		Metadata: meta,
	}, nil
}
