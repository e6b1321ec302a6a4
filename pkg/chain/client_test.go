//go:build unit || !integration

package chain

import (
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/truverse/taskctl/pkg/logger"
)

const (
	testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	// returns the uint256 42 for any call
	constantInitCode = "0x69602a60005260206000f3600052600a6016f3"
	feeABI           = `[
		{"type":"function","name":"protocolFee","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
		{"type":"function","name":"poke","inputs":[{"name":"input","type":"bytes"}],"outputs":[],"stateMutability":"payable"}
	]`
)

type ClientSuite struct {
	suite.Suite
	sim    *backends.SimulatedBackend
	client *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())

	chainID := big.NewInt(1337)
	auth, err := NewSigner(Config{PrivateKey: testKey}, chainID)
	s.Require().NoError(err)

	balance := new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))
	s.sim = backends.NewSimulatedBackend(core.GenesisAlloc{auth.From: {Balance: balance}}, 30_000_000)
	s.T().Cleanup(func() { _ = s.sim.Close() })

	s.client = NewClient(s.sim, auth, chainID)
}

func (s *ClientSuite) ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	s.T().Cleanup(cancel)
	return ctx
}

func (s *ClientSuite) deployConstant() *Contract {
	parsed, err := abi.JSON(strings.NewReader(feeABI))
	s.Require().NoError(err)
	artifact := &Artifact{ContractName: "Constant", ABI: parsed, Bytecode: hexutil.MustDecode(constantInitCode)}

	ctx := s.ctx()
	addr, tx, err := s.client.Deploy(ctx, artifact)
	s.Require().NoError(err)
	s.sim.Commit()

	deployed, err := s.client.WaitDeployed(ctx, tx)
	s.Require().NoError(err)
	s.Equal(addr, deployed)
	return s.client.Bind(addr, parsed)
}

func (s *ClientSuite) TestFrom() {
	key, err := crypto.HexToECDSA(testKey)
	s.Require().NoError(err)
	s.Equal(crypto.PubkeyToAddress(key.PublicKey), s.client.From())
	s.Equal(int64(1337), s.client.ChainID().Int64())
}

func (s *ClientSuite) TestDeployCallTransact() {
	contract := s.deployConstant()
	ctx := s.ctx()

	out, err := contract.Call(ctx, "protocolFee")
	s.Require().NoError(err)
	s.Require().Len(out, 1)
	s.Equal(int64(42), out[0].(*big.Int).Int64())

	tx, err := contract.Transact(ctx, big.NewInt(7), "poke", []byte("abc123"))
	s.Require().NoError(err)
	s.Equal(int64(7), tx.Value().Int64())
	s.sim.Commit()

	receipt, err := s.client.WaitMined(ctx, tx)
	s.Require().NoError(err)
	s.Equal(types.ReceiptStatusSuccessful, receipt.Status)
}

func (s *ClientSuite) TestUnknownMethod() {
	contract := s.deployConstant()
	_, err := contract.Call(s.ctx(), "platformFee")
	s.Require().Error(err)
	_, err = contract.Transact(s.ctx(), nil, "reverse", []byte("x"))
	s.Require().Error(err)
	s.False(contract.HasMethod("reverse"))
	s.True(contract.HasMethod("poke"))
}

func (s *ClientSuite) TestDeployWithoutBytecode() {
	_, _, err := s.client.Deploy(s.ctx(), &Artifact{ContractName: "Empty"})
	s.Require().Error(err)
}

func (s *ClientSuite) TestWaitMinedHonoursContext() {
	contract := s.deployConstant()
	tx, err := contract.Transact(s.ctx(), nil, "poke", []byte("x"))
	s.Require().NoError(err)

	// never committed, so the receipt never shows up
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = s.client.WaitMined(ctx, tx)
	s.Require().ErrorIs(err, context.DeadlineExceeded)
}

func (s *ClientSuite) TestCheckReceipt() {
	s.NoError(checkReceipt(&types.Receipt{Status: types.ReceiptStatusSuccessful}))
	err := checkReceipt(&types.Receipt{Status: types.ReceiptStatusFailed, TxHash: common.HexToHash("0x01"), BlockNumber: big.NewInt(3)})
	s.ErrorIs(err, ErrReverted)
}

func TestNewSignerNone(t *testing.T) {
	_, err := NewSigner(Config{}, big.NewInt(1))
	if err != ErrNoSigner {
		t.Fatalf("expected ErrNoSigner, got %v", err)
	}
}

func TestNewSignerBadKey(t *testing.T) {
	_, err := NewSigner(Config{PrivateKey: "0xnothex"}, big.NewInt(1))
	if err == nil {
		t.Fatal("expected an error for a malformed key")
	}
}

func TestNewSignerKeystore(t *testing.T) {
	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	account, err := ks.NewAccount("hunter2")
	if err != nil {
		t.Fatal(err)
	}

	auth, err := NewSigner(Config{KeystoreDir: dir, KeystorePassphrase: "hunter2"}, big.NewInt(1337))
	if err != nil {
		t.Fatal(err)
	}
	if auth.From != account.Address {
		t.Fatalf("expected %s, got %s", account.Address.Hex(), auth.From.Hex())
	}

	if _, err := NewSigner(Config{KeystoreDir: dir, KeystorePassphrase: "wrong"}, big.NewInt(1337)); err == nil {
		t.Fatal("expected unlock to fail with the wrong passphrase")
	}
	if _, err := NewSigner(Config{KeystoreDir: t.TempDir()}, big.NewInt(1337)); err == nil {
		t.Fatal("expected an error for an empty keystore")
	}
}
