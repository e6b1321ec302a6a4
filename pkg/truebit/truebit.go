// Package truebit has typed wrappers over the protocol contracts a task owner
// talks to: the filesystem registry, the TRU token and a deployed task
// contract.
package truebit

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// CodeTypeWasm marks a registered code root as WebAssembly.
const CodeTypeWasm = 1

// VMParameters size the execution environment of a task.
type VMParameters struct {
	Stack   uint64
	Memory  uint64
	Globals uint64
	Table   uint64
	Call    uint64
}

func single(out []interface{}, method string) (interface{}, error) {
	if len(out) != 1 {
		return nil, errors.Errorf("%s returned %d values, expected 1", method, len(out))
	}
	return out[0], nil
}

func asBigInt(out []interface{}, method string) (*big.Int, error) {
	v, err := single(out, method)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*big.Int)
	if !ok {
		return nil, errors.Errorf("%s returned %T, expected uint256", method, v)
	}
	return n, nil
}

func asHash(out []interface{}, method string) (common.Hash, error) {
	v, err := single(out, method)
	if err != nil {
		return common.Hash{}, err
	}
	h, ok := v.([32]byte)
	if !ok {
		return common.Hash{}, errors.Errorf("%s returned %T, expected bytes32", method, v)
	}
	return common.Hash(h), nil
}

func asBytes(out []interface{}, method string) ([]byte, error) {
	v, err := single(out, method)
	if err != nil {
		return nil, err
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, errors.Errorf("%s returned %T, expected bytes", method, v)
	}
	return b, nil
}

func u256(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}
