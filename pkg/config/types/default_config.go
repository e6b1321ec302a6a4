package types

import "time"

// Default matches a local Hardhat node and IPFS daemon.
var Default = Config{
	Chain: ChainConfig{
		RPCURL: "http://localhost:8545",
	},
	IPFS: IPFSConfig{
		API: "/ip4/127.0.0.1/tcp/5001",
	},
	Contracts: ContractsConfig{
		Manifest:     "contracts.json",
		TaskArtifact: "artifacts/contracts/Reverse.sol/Reverse.json",
		AddressFile:  ".address",
	},
	Publish: PublishConfig{
		ArtifactDir:     "artifacts-task/truebit",
		UploadName:      "task.wasm",
		MinDeposit:      "100",
		SolverReward:    "100",
		VerifierTax:     "50",
		OwnerFee:        "0",
		ChallengeWindow: 3,
		CodeType:        1,
		MemorySize:      25,
		StackSize:       20,
		GlobalsSize:     8,
		TableSize:       20,
		CallSize:        10,
	},
	Submit: SubmitConfig{
		Method:       "reverse",
		PollInterval: 3 * time.Second,
	},
}

// Defaults flattens Default into viper keys.
func Defaults() map[string]interface{} {
	d := Default
	return map[string]interface{}{
		ChainRPCURL:             d.Chain.RPCURL,
		ChainPrivateKey:         d.Chain.PrivateKey,
		ChainKeystore:           d.Chain.KeystoreDir,
		ChainKeystorePassphrase: d.Chain.KeystorePassphrase,
		ChainGasLimit:           d.Chain.GasLimit,
		IPFSAPI:                 d.IPFS.API,
		ContractsManifest:       d.Contracts.Manifest,
		ContractsTaskArtifact:   d.Contracts.TaskArtifact,
		ContractsAddressFile:    d.Contracts.AddressFile,
		PublishArtifactDir:      d.Publish.ArtifactDir,
		PublishUploadName:       d.Publish.UploadName,
		PublishMinDeposit:       d.Publish.MinDeposit,
		PublishSolverReward:     d.Publish.SolverReward,
		PublishVerifierTax:      d.Publish.VerifierTax,
		PublishOwnerFee:         d.Publish.OwnerFee,
		PublishChallengeWindow:  d.Publish.ChallengeWindow,
		PublishCodeType:         d.Publish.CodeType,
		PublishMemorySize:       d.Publish.MemorySize,
		PublishStackSize:        d.Publish.StackSize,
		PublishGlobalsSize:      d.Publish.GlobalsSize,
		PublishTableSize:        d.Publish.TableSize,
		PublishCallSize:         d.Publish.CallSize,
		SubmitMethod:            d.Submit.Method,
		SubmitPollInterval:      d.Submit.PollInterval,
		SubmitTimeout:           d.Submit.Timeout,
		SubmitMaxPolls:          d.Submit.MaxPolls,
		SubmitReuseAllowance:    d.Submit.ReuseAllowance,
	}
}
