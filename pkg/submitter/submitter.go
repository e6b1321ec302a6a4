package submitter

import (
	"context"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/truverse/taskctl/pkg/system"
	"github.com/truverse/taskctl/pkg/units"
)

// DefaultPollInterval is the delay between two output queries.
const DefaultPollInterval = 3 * time.Second

// ErrOutputTimeout is returned when the output did not show up before the
// configured timeout.
var ErrOutputTimeout = errors.New("timed out waiting for task output")

// ErrMalformedOutput is returned when the posted output is not valid UTF-8.
var ErrMalformedOutput = errors.New("task output is not valid UTF-8")

type TaskContract interface {
	Address() common.Address
	ProtocolFee(ctx context.Context) (*big.Int, error)
	PlatformFee(ctx context.Context) (*big.Int, error)
	Submit(ctx context.Context, input []byte, value *big.Int) (*types.Transaction, error)
	Output(ctx context.Context, input []byte) ([]byte, error)
}

type Token interface {
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	Approve(ctx context.Context, spender common.Address, amount *big.Int) (*types.Transaction, error)
}

type Confirmer interface {
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

type Deps struct {
	Task      TaskContract
	Token     Token
	Confirmer Confirmer
	// Account pays the fees.
	Account common.Address
}

type Request struct {
	Input []byte
	// PollInterval defaults to DefaultPollInterval.
	PollInterval time.Duration
	// Timeout bounds the wait for the output. Zero waits until ctx is done.
	Timeout time.Duration
	// MaxPolls bounds the number of output queries. Zero is unbounded.
	MaxPolls int
	// ReuseAllowance skips the approval when the current allowance already
	// covers the protocol fee.
	ReuseAllowance bool
	// OnPoll is called before every output query.
	OnPoll func(attempt int)
}

type Result struct {
	Contract    common.Address
	Balance     *big.Int
	ProtocolFee *big.Int
	PlatformFee *big.Int
	ApproveTx   common.Hash
	SubmitTx    common.Hash
	Polls       int
	Output      []byte
}

// Text is the output decoded as UTF-8. Malformed UTF-8 is an
// ErrMalformedOutput error, not a lossy decode.
func (r *Result) Text() (string, error) {
	if !utf8.Valid(r.Output) {
		return "", errors.Wrapf(ErrMalformedOutput, "output 0x%x", r.Output)
	}
	return string(r.Output), nil
}

// Submit pays the fees for a task input, sends it to the task contract and
// waits for the output to be posted.
func Submit(ctx context.Context, deps Deps, req Request) (*Result, error) {
	if deps.Task == nil || deps.Token == nil || deps.Confirmer == nil {
		return nil, errors.New("submitter: missing task contract, token or confirmer")
	}
	if len(req.Input) == 0 {
		return nil, errors.New("submitter: input is empty")
	}
	logger := log.Ctx(ctx).With().Str("contract", deps.Task.Address().Hex()).Logger()
	res := &Result{Contract: deps.Task.Address()}

	var err error
	res.Balance, err = deps.Token.BalanceOf(ctx, deps.Account)
	if err != nil {
		return nil, errors.Wrap(err, "reading TRU balance")
	}
	logger.Info().Msgf("TRU balance %s", units.FormatToken(res.Balance))

	if res.ProtocolFee, err = deps.Task.ProtocolFee(ctx); err != nil {
		return nil, errors.Wrap(err, "reading protocol fee")
	}
	if res.PlatformFee, err = deps.Task.PlatformFee(ctx); err != nil {
		return nil, errors.Wrap(err, "reading platform fee")
	}
	logger.Info().Msgf("Protocol fee: %s TRU", units.FormatToken(res.ProtocolFee))
	logger.Info().Msgf("Platform fee: %s ETH", units.FormatToken(res.PlatformFee))

	if err := approve(ctx, deps, req, res); err != nil {
		return nil, err
	}

	logger.Info().Msgf("Submitting task with input %q", req.Input)
	tx, err := deps.Task.Submit(ctx, req.Input, res.PlatformFee)
	if err != nil {
		return nil, errors.Wrap(err, "submitting task")
	}
	res.SubmitTx = tx.Hash()
	if _, err := deps.Confirmer.WaitMined(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "submitting task")
	}
	logger.Info().Msg("Submitted")

	if res.Output, res.Polls, err = WaitForOutput(ctx, deps.Task, req); err != nil {
		return res, err
	}
	return res, nil
}

func approve(ctx context.Context, deps Deps, req Request, res *Result) error {
	spender := deps.Task.Address()
	if req.ReuseAllowance {
		allowance, err := deps.Token.Allowance(ctx, deps.Account, spender)
		if err != nil {
			return errors.Wrap(err, "reading TRU allowance")
		}
		if allowance.Cmp(res.ProtocolFee) >= 0 {
			log.Ctx(ctx).Info().Msgf("Existing allowance of %s TRU covers the protocol fee", units.FormatToken(allowance))
			return nil
		}
	}

	log.Ctx(ctx).Info().Msg("Allowing smart contract to spend our TRU tokens to pay protocol fees...")
	tx, err := deps.Token.Approve(ctx, spender, res.ProtocolFee)
	if err != nil {
		return errors.Wrap(err, "approving protocol fee")
	}
	res.ApproveTx = tx.Hash()
	if _, err := deps.Confirmer.WaitMined(ctx, tx); err != nil {
		return errors.Wrap(err, "approving protocol fee")
	}
	return nil
}

// WaitForOutput polls the task contract for the output of input. An empty
// output means the task has not been solved yet; any non-empty value ends
// the wait. It returns the output and the number of queries made.
//
// An empty output is also what a rejected or abandoned task looks like, so
// without a Timeout or MaxPolls this only returns once ctx is done.
func WaitForOutput(ctx context.Context, task TaskContract, req Request) ([]byte, int, error) {
	interval := req.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	waitCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var (
		output []byte
		polls  int
	)
	waiter := &system.FunctionWaiter{
		Name:        "task output",
		MaxAttempts: req.MaxPolls,
		Delay:       interval,
		Handler: func(ctx context.Context) (bool, error) {
			polls++
			if req.OnPoll != nil {
				req.OnPoll(polls)
			}
			out, err := task.Output(ctx, req.Input)
			if err != nil {
				return false, errors.Wrap(err, "reading task output")
			}
			output = out
			return len(out) > 0, nil
		},
	}

	err := waiter.Wait(waitCtx)
	switch {
	case err == nil:
		return output, polls, nil
	case ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded):
		return nil, polls, errors.Wrapf(ErrOutputTimeout, "no output after %s", req.Timeout)
	case errors.Is(err, system.ErrMaxAttempts):
		return nil, polls, errors.Wrapf(ErrOutputTimeout, "no output after %d polls", polls)
	default:
		return nil, polls, err
	}
}
