package types

import "time"

type Config struct {
	Chain     ChainConfig     `mapstructure:"chain" yaml:"chain"`
	IPFS      IPFSConfig      `mapstructure:"ipfs" yaml:"ipfs"`
	Contracts ContractsConfig `mapstructure:"contracts" yaml:"contracts"`
	Publish   PublishConfig   `mapstructure:"publish" yaml:"publish"`
	Submit    SubmitConfig    `mapstructure:"submit" yaml:"submit"`
}

type ChainConfig struct {
	RPCURL             string `mapstructure:"rpc-url" yaml:"rpc-url"`
	PrivateKey         string `mapstructure:"private-key" yaml:"private-key"`
	KeystoreDir        string `mapstructure:"keystore" yaml:"keystore"`
	KeystorePassphrase string `mapstructure:"keystore-passphrase" yaml:"keystore-passphrase"`
	GasLimit           uint64 `mapstructure:"gas-limit" yaml:"gas-limit"`
}

type IPFSConfig struct {
	// API is the multiaddr or URL of the daemon's HTTP API.
	API string `mapstructure:"api" yaml:"api"`
}

type ContractsConfig struct {
	// Manifest lists the protocol contracts (filesystem, incentive, tru).
	Manifest string `mapstructure:"manifest" yaml:"manifest"`
	// TaskArtifact is the compiled task contract, abi plus bytecode.
	TaskArtifact string `mapstructure:"task-artifact" yaml:"task-artifact"`
	AddressFile  string `mapstructure:"address-file" yaml:"address-file"`
}

type PublishConfig struct {
	ArtifactDir     string `mapstructure:"artifact-dir" yaml:"artifact-dir"`
	UploadName      string `mapstructure:"upload-name" yaml:"upload-name"`
	MinDeposit      string `mapstructure:"min-deposit" yaml:"min-deposit"`
	SolverReward    string `mapstructure:"solver-reward" yaml:"solver-reward"`
	VerifierTax     string `mapstructure:"verifier-tax" yaml:"verifier-tax"`
	OwnerFee        string `mapstructure:"owner-fee" yaml:"owner-fee"`
	ChallengeWindow uint64 `mapstructure:"challenge-window" yaml:"challenge-window"`
	CodeType        uint64 `mapstructure:"code-type" yaml:"code-type"`
	MemorySize      uint64 `mapstructure:"memory-size" yaml:"memory-size"`
	StackSize       uint64 `mapstructure:"stack-size" yaml:"stack-size"`
	GlobalsSize     uint64 `mapstructure:"globals-size" yaml:"globals-size"`
	TableSize       uint64 `mapstructure:"table-size" yaml:"table-size"`
	CallSize        uint64 `mapstructure:"call-size" yaml:"call-size"`
}

type SubmitConfig struct {
	Method         string        `mapstructure:"method" yaml:"method"`
	PollInterval   time.Duration `mapstructure:"poll-interval" yaml:"poll-interval"`
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxPolls       int           `mapstructure:"max-polls" yaml:"max-polls"`
	ReuseAllowance bool          `mapstructure:"reuse-allowance" yaml:"reuse-allowance"`
}
