//go:build unit || !integration

package submitter

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"

	"github.com/truverse/taskctl/pkg/logger"
	"github.com/truverse/taskctl/pkg/units/unitstesting"
)

var (
	taskAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	account  = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

type fakeTask struct {
	mu          sync.Mutex
	outputs     [][]byte
	queries     []time.Time
	submitted   [][]byte
	value       *big.Int
	protocolFee *big.Int
	platformFee *big.Int
	outputErr   error
}

func (f *fakeTask) Address() common.Address { return taskAddr }

func (f *fakeTask) ProtocolFee(context.Context) (*big.Int, error) { return f.protocolFee, nil }

func (f *fakeTask) PlatformFee(context.Context) (*big.Int, error) { return f.platformFee, nil }

func (f *fakeTask) Submit(_ context.Context, input []byte, value *big.Int) (*types.Transaction, error) {
	f.submitted = append(f.submitted, input)
	f.value = value
	return types.NewTx(&types.LegacyTx{Nonce: 2}), nil
}

// Output replays outputs in order and then repeats the last one.
func (f *fakeTask) Output(_ context.Context, input []byte) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, time.Now())
	if f.outputErr != nil {
		return nil, f.outputErr
	}
	if len(f.outputs) == 0 {
		return []byte{}, nil
	}
	out := f.outputs[0]
	if len(f.outputs) > 1 {
		f.outputs = f.outputs[1:]
	}
	return out, nil
}

type fakeToken struct {
	balance   *big.Int
	allowance *big.Int
	approvals []*big.Int
	spender   common.Address
	err       error
}

func (f *fakeToken) BalanceOf(_ context.Context, owner common.Address) (*big.Int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.balance, nil
}

func (f *fakeToken) Allowance(context.Context, common.Address, common.Address) (*big.Int, error) {
	return f.allowance, nil
}

func (f *fakeToken) Approve(_ context.Context, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	f.spender = spender
	f.approvals = append(f.approvals, amount)
	return types.NewTx(&types.LegacyTx{Nonce: 1}), nil
}

type fakeConfirmer struct {
	order []uint64
	fail  bool
}

func (f *fakeConfirmer) WaitMined(_ context.Context, tx *types.Transaction) (*types.Receipt, error) {
	f.order = append(f.order, tx.Nonce())
	if f.fail {
		return nil, errors.New("transaction reverted")
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil
}

type SubmitterSuite struct {
	suite.Suite
	task      *fakeTask
	token     *fakeToken
	confirmer *fakeConfirmer
}

func TestSubmitterSuite(t *testing.T) {
	suite.Run(t, new(SubmitterSuite))
}

func (s *SubmitterSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.task = &fakeTask{
		protocolFee: unitstesting.Token(s.T(), "10"),
		platformFee: unitstesting.Token(s.T(), "0.01"),
	}
	s.token = &fakeToken{balance: unitstesting.Token(s.T(), "1000"), allowance: big.NewInt(0)}
	s.confirmer = &fakeConfirmer{}
}

func (s *SubmitterSuite) deps() Deps {
	return Deps{Task: s.task, Token: s.token, Confirmer: s.confirmer, Account: account}
}

func (s *SubmitterSuite) TestSubmitReverse() {
	s.task.outputs = [][]byte{{}, {}, []byte("321cba")}
	polls := 0

	res, err := Submit(context.Background(), s.deps(), Request{
		Input:        []byte("abc123"),
		PollInterval: time.Millisecond,
		OnPoll:       func(int) { polls++ },
	})
	s.Require().NoError(err)
	text, err := res.Text()
	s.Require().NoError(err)
	s.Equal("321cba", text)
	s.Equal(3, res.Polls)
	s.Equal(3, polls)

	s.Require().Len(s.token.approvals, 1)
	s.Zero(s.token.approvals[0].Cmp(unitstesting.Token(s.T(), "10")))
	s.Equal(taskAddr, s.token.spender)

	s.Require().Len(s.task.submitted, 1)
	s.Equal([]byte("abc123"), s.task.submitted[0])
	s.Zero(s.task.value.Cmp(unitstesting.Token(s.T(), "0.01")))

	s.Equal([]uint64{1, 2}, s.confirmer.order, "approval must be confirmed before submission")
	s.Zero(res.Balance.Cmp(unitstesting.Token(s.T(), "1000")))
}

func (s *SubmitterSuite) TestEmptyOutputWaitsAtLeastOneInterval() {
	s.task.outputs = [][]byte{{}, []byte("x")}
	interval := 30 * time.Millisecond

	out, polls, err := WaitForOutput(context.Background(), s.task, Request{Input: []byte("abc123"), PollInterval: interval})
	s.Require().NoError(err)
	s.Equal([]byte("x"), out)
	s.Equal(2, polls)
	s.Require().Len(s.task.queries, 2)
	s.GreaterOrEqual(s.task.queries[1].Sub(s.task.queries[0]), interval)
}

func (s *SubmitterSuite) TestSingleByteOutputIsReady() {
	s.task.outputs = [][]byte{{0x00}}

	out, polls, err := WaitForOutput(context.Background(), s.task, Request{Input: []byte("abc123"), PollInterval: time.Hour})
	s.Require().NoError(err)
	s.Equal([]byte{0x00}, out)
	s.Equal(1, polls)
}

func (s *SubmitterSuite) TestZeroByteOutputIsNeverReady() {
	_, polls, err := WaitForOutput(context.Background(), s.task, Request{
		Input:        []byte("abc123"),
		PollInterval: time.Millisecond,
		MaxPolls:     5,
	})
	s.Require().ErrorIs(err, ErrOutputTimeout)
	s.Equal(5, polls)
}

func (s *SubmitterSuite) TestTimeout() {
	start := time.Now()
	_, _, err := WaitForOutput(context.Background(), s.task, Request{
		Input:        []byte("abc123"),
		PollInterval: time.Hour,
		Timeout:      20 * time.Millisecond,
	})
	s.Require().ErrorIs(err, ErrOutputTimeout)
	s.Less(time.Since(start), time.Second)
}

func (s *SubmitterSuite) TestCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, _, err := WaitForOutput(ctx, s.task, Request{Input: []byte("abc123"), PollInterval: time.Hour})
	s.Require().ErrorIs(err, context.Canceled)
	s.NotErrorIs(err, ErrOutputTimeout)
}

func (s *SubmitterSuite) TestOutputQueryError() {
	s.task.outputErr = errors.New("connection reset by peer")

	_, err := Submit(context.Background(), s.deps(), Request{Input: []byte("abc123"), PollInterval: time.Millisecond})
	s.Require().Error(err)
	s.Contains(err.Error(), "connection reset by peer")
}

func (s *SubmitterSuite) TestReuseAllowance() {
	s.token.allowance = unitstesting.Token(s.T(), "20")
	s.task.outputs = [][]byte{[]byte("321cba")}

	res, err := Submit(context.Background(), s.deps(), Request{Input: []byte("abc123"), ReuseAllowance: true})
	s.Require().NoError(err)
	s.Empty(s.token.approvals)
	s.Equal(common.Hash{}, res.ApproveTx)
	s.Equal([]uint64{2}, s.confirmer.order)
}

func (s *SubmitterSuite) TestReuseAllowanceTooSmall() {
	s.token.allowance = unitstesting.Token(s.T(), "1")
	s.task.outputs = [][]byte{[]byte("321cba")}

	_, err := Submit(context.Background(), s.deps(), Request{Input: []byte("abc123"), ReuseAllowance: true})
	s.Require().NoError(err)
	s.Len(s.token.approvals, 1)
}

func (s *SubmitterSuite) TestBalanceFailureStopsEverything() {
	s.token.err = errors.New("no contract code at given address")

	_, err := Submit(context.Background(), s.deps(), Request{Input: []byte("abc123")})
	s.Require().Error(err)
	s.Contains(err.Error(), "no contract code")
	s.Empty(s.token.approvals)
	s.Empty(s.task.submitted)
}

func (s *SubmitterSuite) TestFailedApprovalStopsSubmission() {
	s.confirmer.fail = true

	_, err := Submit(context.Background(), s.deps(), Request{Input: []byte("abc123")})
	s.Require().Error(err)
	s.Contains(err.Error(), "approving protocol fee")
	s.Empty(s.task.submitted)
}

func (s *SubmitterSuite) TestEmptyInput() {
	_, err := Submit(context.Background(), s.deps(), Request{})
	s.Require().Error(err)
}

func (s *SubmitterSuite) TestText() {
	text, err := (&Result{Output: []byte("abc")}).Text()
	s.Require().NoError(err)
	s.Equal("abc", text)

	text, err = (&Result{Output: []byte("héllo")}).Text()
	s.Require().NoError(err)
	s.Equal("héllo", text)

	_, err = (&Result{Output: []byte{'a', 0xff, 'b'}}).Text()
	s.Require().ErrorIs(err, ErrMalformedOutput)
	s.Contains(err.Error(), "0x61ff62")
}
