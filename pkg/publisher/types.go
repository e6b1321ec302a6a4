//go:generate mockgen --source types.go --destination mocks.go --package publisher

package publisher

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/truverse/taskctl/pkg/chain"
	"github.com/truverse/taskctl/pkg/ipfs"
	"github.com/truverse/taskctl/pkg/truebit"
	"github.com/truverse/taskctl/pkg/units"
)

// ErrRegistrationMismatch is returned when the registry reports a different
// root for the derived file id than the one that was registered.
var ErrRegistrationMismatch = errors.New("registered file does not match the uploaded binary")

// Registry is the on-chain filesystem the task binary is registered with.
type Registry interface {
	Address() common.Address
	AddIPFSFile(ctx context.Context, name string, size uint64, ipfsHash string, root common.Hash, nonce uint64) (*types.Transaction, error)
	SetCodeRoot(ctx context.Context, nonce uint64, codeRoot common.Hash, codeType uint64, vm truebit.VMParameters) (*types.Transaction, error)
	CalculateID(ctx context.Context, nonce uint64) (common.Hash, error)
	CanReadRoot() bool
	Root(ctx context.Context, id common.Hash) (common.Hash, error)
}

// Chain confirms transactions and deploys contracts. chain.Client implements it.
type Chain interface {
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	Deploy(ctx context.Context, artifact *chain.Artifact, args ...interface{}) (common.Address, *types.Transaction, error)
	WaitDeployed(ctx context.Context, tx *types.Transaction) (common.Address, error)
}

type Deps struct {
	Store    ipfs.Store
	Registry Registry
	Chain    Chain
	// Now supplies the registration nonce. Defaults to time.Now.
	Now func() time.Time
}

// Economics are decimal TRU amounts passed to the task contract constructor.
type Economics struct {
	MinDeposit   string
	SolverReward string
	VerifierTax  string
	OwnerFee     string
}

func DefaultEconomics() Economics {
	return Economics{
		MinDeposit:   "100",
		SolverReward: "100",
		VerifierTax:  "50",
		OwnerFee:     "0",
	}
}

type economics struct {
	minDeposit, solverReward, verifierTax, ownerFee *big.Int
}

func (e Economics) parse() (economics, error) {
	var (
		out economics
		err error
	)
	for _, f := range []struct {
		name  string
		value string
		dst   **big.Int
	}{
		{"min deposit", e.MinDeposit, &out.minDeposit},
		{"solver reward", e.SolverReward, &out.solverReward},
		{"verifier tax", e.VerifierTax, &out.verifierTax},
		{"owner fee", e.OwnerFee, &out.ownerFee},
	} {
		if *f.dst, err = units.ParseToken(f.value); err != nil {
			return economics{}, errors.Wrap(err, f.name)
		}
	}
	return out, nil
}

func DefaultVM() truebit.VMParameters {
	return truebit.VMParameters{
		Stack:   20,
		Memory:  25,
		Globals: 8,
		Table:   20,
		Call:    10,
	}
}

const (
	DefaultArtifactDir     = "artifacts-task/truebit"
	DefaultUploadName      = "task.wasm"
	DefaultChallengeWindow = 3
)

type Request struct {
	TaskName    string
	ArtifactDir string
	// UploadName is the logical name the binary is added to IPFS and the
	// registry under.
	UploadName  string
	AddressFile string

	// Contract is the compiled task contract to deploy.
	Contract  *chain.Artifact
	Incentive common.Address
	Token     common.Address

	Economics       Economics
	ChallengeWindow uint64
	VM              truebit.VMParameters
	CodeType        uint64
}

type Result struct {
	Task       string
	Size       uint64
	Upload     ipfs.Upload
	Root       common.Hash
	CodeRoot   common.Hash
	Nonce      uint64
	FileID     common.Hash
	Verified   bool
	RegisterTx common.Hash
	CodeTx     common.Hash
	DeployTx   common.Hash
	Contract   common.Address
}
