// Package chaintesting runs chain.Client against an in-process simulated
// chain.
package chaintesting

import (
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core"
	"github.com/stretchr/testify/require"

	"github.com/truverse/taskctl/pkg/chain"
)

const (
	// PrivateKey is the funded account of the simulated chain.
	PrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	ChainID    = 1337

	// ConstantWord is what the Constant contract returns for every call.
	ConstantWord = 42
	// constantInitCode deploys a contract answering every call with the
	// 32 byte word 42.
	constantInitCode = "0x69602a60005260206000f3600052600a6016f3"
)

type Simulated struct {
	Backend *backends.SimulatedBackend
	Client  *chain.Client
}

// NewSimulated starts a simulated chain with a funded signer.
func NewSimulated(t testing.TB) *Simulated {
	t.Helper()
	chainID := big.NewInt(ChainID)
	auth, err := chain.NewSigner(chain.Config{PrivateKey: PrivateKey}, chainID)
	require.NoError(t, err)

	balance := new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18))
	sim := backends.NewSimulatedBackend(core.GenesisAlloc{auth.From: {Balance: balance}}, 30_000_000)
	t.Cleanup(func() { _ = sim.Close() })

	return &Simulated{Backend: sim, Client: chain.NewClient(sim, auth, chainID)}
}

func (s *Simulated) Context(t testing.TB) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// DeployConstant deploys the Constant contract and binds it with abiJSON, so a
// test can read any uint256, bytes32 or address method as 42.
func (s *Simulated) DeployConstant(t testing.TB, abiJSON string) *chain.Contract {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)

	ctx := s.Context(t)
	artifact := &chain.Artifact{ContractName: "Constant", ABI: parsed, Bytecode: hexutil.MustDecode(constantInitCode)}
	_, tx, err := s.Client.Deploy(ctx, artifact)
	require.NoError(t, err)
	s.Backend.Commit()

	addr, err := s.Client.WaitDeployed(ctx, tx)
	require.NoError(t, err)
	return s.Client.Bind(addr, parsed)
}
