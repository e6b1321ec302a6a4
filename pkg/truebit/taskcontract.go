package truebit

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/truverse/taskctl/pkg/chain"
)

// DefaultSubmitMethod is the entry point of the reverse example task.
const DefaultSubmitMethod = "reverse"

const (
	methodProtocolFee = "protocolFee"
	methodPlatformFee = "platformFee"
	methodGetOutput   = "getOutput"
)

// TaskContract is a deployed per-task contract.
type TaskContract struct {
	contract     *chain.Contract
	submitMethod string
}

// NewTaskContract wraps contract. submitMethod is the payable function taking
// the task input; empty means DefaultSubmitMethod.
func NewTaskContract(contract *chain.Contract, submitMethod string) *TaskContract {
	if submitMethod == "" {
		submitMethod = DefaultSubmitMethod
	}
	return &TaskContract{contract: contract, submitMethod: submitMethod}
}

func (t *TaskContract) Address() common.Address {
	return t.contract.Address
}

// ProtocolFee is charged in TRU.
func (t *TaskContract) ProtocolFee(ctx context.Context) (*big.Int, error) {
	out, err := t.contract.Call(ctx, methodProtocolFee)
	if err != nil {
		return nil, err
	}
	return asBigInt(out, methodProtocolFee)
}

// PlatformFee is charged in the native currency.
func (t *TaskContract) PlatformFee(ctx context.Context) (*big.Int, error) {
	out, err := t.contract.Call(ctx, methodPlatformFee)
	if err != nil {
		return nil, err
	}
	return asBigInt(out, methodPlatformFee)
}

func (t *TaskContract) Submit(ctx context.Context, input []byte, value *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(ctx, value, t.submitMethod, input)
}

// Output returns the result stored for input. It is empty until the task has
// been solved.
func (t *TaskContract) Output(ctx context.Context, input []byte) ([]byte, error) {
	out, err := t.contract.Call(ctx, methodGetOutput, input)
	if err != nil {
		return nil, err
	}
	return asBytes(out, methodGetOutput)
}
