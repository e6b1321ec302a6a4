package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	// ErrReverted is returned when a mined transaction has a failed status.
	ErrReverted = errors.New("transaction reverted")
	// ErrNoSigner is returned when neither a private key nor a keystore is configured.
	ErrNoSigner = errors.New("no signing account configured: set a private key or a keystore directory")
)

type Config struct {
	// RPCURL is the JSON-RPC endpoint of the node.
	RPCURL string
	// PrivateKey is a hex encoded secp256k1 key. Takes precedence over the keystore.
	PrivateKey string
	// KeystoreDir holds encrypted keys; the first account found signs.
	KeystoreDir        string
	KeystorePassphrase string
	// GasLimit forces the gas limit of every transaction. Zero estimates.
	GasLimit uint64
}

// Backend is what the client needs from a node. ethclient.Client and the
// simulated backend both satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Client is a signer bound to a node connection. It is built once per process
// and handed to the workflows explicitly.
type Client struct {
	backend  Backend
	auth     *bind.TransactOpts
	chainID  *big.Int
	gasLimit uint64
	closer   func()
}

// Dial connects to cfg.RPCURL and resolves the signing account.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", cfg.RPCURL)
	}
	chainID, err := ec.ChainID(ctx)
	if err != nil {
		ec.Close()
		return nil, errors.Wrapf(err, "querying chain id from %s", cfg.RPCURL)
	}
	auth, err := NewSigner(cfg, chainID)
	if err != nil {
		ec.Close()
		return nil, err
	}

	client := NewClient(ec, auth, chainID)
	client.gasLimit = cfg.GasLimit
	client.closer = ec.Close

	log.Ctx(ctx).Debug().
		Str("rpc", cfg.RPCURL).
		Stringer("chain_id", chainID).
		Str("from", auth.From.Hex()).
		Msg("connected to chain")
	return client, nil
}

func NewClient(backend Backend, auth *bind.TransactOpts, chainID *big.Int) *Client {
	return &Client{
		backend: backend,
		auth:    auth,
		chainID: chainID,
	}
}

// NewSigner picks the signing account: the configured private key, otherwise
// the first account in the keystore directory.
func NewSigner(cfg Config, chainID *big.Int) (*bind.TransactOpts, error) {
	switch {
	case cfg.PrivateKey != "":
		key, err := parsePrivateKey(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		return bind.NewKeyedTransactorWithChainID(key, chainID)
	case cfg.KeystoreDir != "":
		ks := keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
		accounts := ks.Accounts()
		if len(accounts) == 0 {
			return nil, errors.Errorf("keystore %s has no accounts", cfg.KeystoreDir)
		}
		if err := ks.Unlock(accounts[0], cfg.KeystorePassphrase); err != nil {
			return nil, errors.Wrapf(err, "unlocking %s", accounts[0].Address.Hex())
		}
		return bind.NewKeyStoreTransactorWithChainID(ks, accounts[0], chainID)
	default:
		return nil, ErrNoSigner
	}
}

func parsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return key, nil
}

// From is the signing account.
func (c *Client) From() common.Address {
	return c.auth.From
}

func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

func (c *Client) Backend() Backend {
	return c.backend
}

func (c *Client) Close() error {
	if c.closer != nil {
		c.closer()
	}
	return nil
}

func (c *Client) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: c.auth.From}
}

func (c *Client) transactOpts(ctx context.Context, value *big.Int) *bind.TransactOpts {
	opts := *c.auth
	opts.Context = ctx
	opts.Value = value
	if c.gasLimit != 0 {
		opts.GasLimit = c.gasLimit
	}
	return &opts
}

// WaitMined blocks until tx is mined and fails with ErrReverted if it did not
// succeed.
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	log.Ctx(ctx).Debug().Str("tx", tx.Hash().Hex()).Msg("waiting for transaction")
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, errors.Wrapf(err, "waiting for transaction %s", tx.Hash().Hex())
	}
	if err := checkReceipt(receipt); err != nil {
		return receipt, err
	}
	return receipt, nil
}

func checkReceipt(receipt *types.Receipt) error {
	if receipt.Status != types.ReceiptStatusSuccessful {
		return errors.Wrapf(ErrReverted, "transaction %s in block %v", receipt.TxHash.Hex(), receipt.BlockNumber)
	}
	return nil
}

// Deploy sends the creation transaction for artifact with the given
// constructor arguments.
func (c *Client) Deploy(ctx context.Context, artifact *Artifact, args ...interface{}) (common.Address, *types.Transaction, error) {
	if len(artifact.Bytecode) == 0 {
		return common.Address{}, nil, errors.Errorf("artifact %s has no bytecode", artifact.ContractName)
	}
	addr, tx, _, err := bind.DeployContract(c.transactOpts(ctx, nil), artifact.ABI, artifact.Bytecode, c.backend, args...)
	if err != nil {
		return common.Address{}, nil, errors.Wrapf(err, "deploying %s", artifact.ContractName)
	}
	return addr, tx, nil
}

// WaitDeployed waits for a creation transaction and checks that code landed at
// the new address.
func (c *Client) WaitDeployed(ctx context.Context, tx *types.Transaction) (common.Address, error) {
	addr, err := bind.WaitDeployed(ctx, c.backend, tx)
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "waiting for deployment %s", tx.Hash().Hex())
	}
	return addr, nil
}
