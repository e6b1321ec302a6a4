package truebit

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/truverse/taskctl/pkg/chain"
)

const (
	methodAddIPFSFile = "addIpfsFile"
	methodSetCodeRoot = "setCodeRoot"
	methodCalculateID = "calculateId"
	methodGetRoot     = "getRoot"
)

// Filesystem is the on-chain file registry.
type Filesystem struct {
	contract *chain.Contract
}

func NewFilesystem(contract *chain.Contract) *Filesystem {
	return &Filesystem{contract: contract}
}

func (f *Filesystem) Address() common.Address {
	return f.contract.Address
}

// AddIPFSFile registers a file stored on IPFS under a nonce chosen by the caller.
func (f *Filesystem) AddIPFSFile(
	ctx context.Context, name string, size uint64, ipfsHash string, root common.Hash, nonce uint64,
) (*types.Transaction, error) {
	return f.contract.Transact(ctx, nil, methodAddIPFSFile, name, u256(size), ipfsHash, [32]byte(root), u256(nonce))
}

// SetCodeRoot attaches the execution code root and VM sizing to the file
// registered under nonce.
func (f *Filesystem) SetCodeRoot(
	ctx context.Context, nonce uint64, codeRoot common.Hash, codeType uint64, vm VMParameters,
) (*types.Transaction, error) {
	return f.contract.Transact(ctx, nil, methodSetCodeRoot,
		u256(nonce), [32]byte(codeRoot), u256(codeType),
		u256(vm.Stack), u256(vm.Memory), u256(vm.Globals), u256(vm.Table), u256(vm.Call),
	)
}

// CalculateID derives the file id the registry assigned to the caller's nonce.
func (f *Filesystem) CalculateID(ctx context.Context, nonce uint64) (common.Hash, error) {
	out, err := f.contract.Call(ctx, methodCalculateID, u256(nonce))
	if err != nil {
		return common.Hash{}, err
	}
	return asHash(out, methodCalculateID)
}

// CanReadRoot reports whether the registry ABI exposes getRoot.
func (f *Filesystem) CanReadRoot() bool {
	return f.contract.HasMethod(methodGetRoot)
}

// Root reads back the merkle root stored for a file id.
func (f *Filesystem) Root(ctx context.Context, id common.Hash) (common.Hash, error) {
	out, err := f.contract.Call(ctx, methodGetRoot, [32]byte(id))
	if err != nil {
		return common.Hash{}, err
	}
	return asHash(out, methodGetRoot)
}
