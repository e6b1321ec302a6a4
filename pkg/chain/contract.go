package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Contract is a live handle on a deployed contract, signed by the client's
// account.
type Contract struct {
	Address common.Address
	ABI     abi.ABI

	client *Client
	bound  *bind.BoundContract
}

func (c *Client) Bind(address common.Address, parsed abi.ABI) *Contract {
	return &Contract{
		Address: address,
		ABI:     parsed,
		client:  c,
		bound:   bind.NewBoundContract(address, parsed, c.backend, c.backend, c.backend),
	}
}

func (k *Contract) HasMethod(name string) bool {
	_, ok := k.ABI.Methods[name]
	return ok
}

// Call runs a constant method and returns its unpacked outputs.
func (k *Contract) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	if !k.HasMethod(method) {
		return nil, errors.Errorf("contract %s has no method %s", k.Address.Hex(), method)
	}
	var out []interface{}
	if err := k.bound.Call(k.client.callOpts(ctx), &out, method, args...); err != nil {
		return nil, errors.Wrapf(err, "calling %s on %s", method, k.Address.Hex())
	}
	return out, nil
}

// Transact sends a state changing call. value is the native currency attached
// to the call and may be nil.
func (k *Contract) Transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (*types.Transaction, error) {
	if !k.HasMethod(method) {
		return nil, errors.Errorf("contract %s has no method %s", k.Address.Hex(), method)
	}
	tx, err := k.bound.Transact(k.client.transactOpts(ctx, value), method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "sending %s to %s", method, k.Address.Hex())
	}
	return tx, nil
}
