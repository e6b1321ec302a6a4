package truebit

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/truverse/taskctl/pkg/chain"
)

// Token is the ERC-20 TRU token.
type Token struct {
	contract *chain.Contract
}

func NewToken(contract *chain.Contract) *Token {
	return &Token{contract: contract}
}

func (t *Token) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := t.contract.Call(ctx, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	return asBigInt(out, "balanceOf")
}

func (t *Token) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	out, err := t.contract.Call(ctx, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	return asBigInt(out, "allowance")
}

func (t *Token) Approve(ctx context.Context, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(ctx, nil, "approve", spender, amount)
}
