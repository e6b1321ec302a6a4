package configflags

import "github.com/truverse/taskctl/pkg/config/types"

var ChainFlags = []Definition{
	{
		FlagName:     "rpc-url",
		ConfigPath:   types.ChainRPCURL,
		DefaultValue: types.Default.Chain.RPCURL,
		Description:  "Ethereum JSON-RPC endpoint of the network the contracts live on.",
	},
	{
		FlagName:             "private-key",
		ConfigPath:           types.ChainPrivateKey,
		DefaultValue:         types.Default.Chain.PrivateKey,
		Description:          "Hex private key of the signing account. Prefer the TASKCTL_CHAIN_PRIVATE_KEY environment variable.",
		EnvironmentVariables: []string{"TASKCTL_PRIVATE_KEY"},
	},
	{
		FlagName:     "keystore",
		ConfigPath:   types.ChainKeystore,
		DefaultValue: types.Default.Chain.KeystoreDir,
		Description:  "Keystore directory. The first account is used when no private key is given.",
	},
	{
		FlagName:     "keystore-passphrase",
		ConfigPath:   types.ChainKeystorePassphrase,
		DefaultValue: types.Default.Chain.KeystorePassphrase,
		Description:  "Passphrase unlocking the keystore account.",
	},
	{
		FlagName:     "gas-limit",
		ConfigPath:   types.ChainGasLimit,
		DefaultValue: types.Default.Chain.GasLimit,
		Description:  "Gas limit for every transaction. 0 estimates it.",
	},
}

var ContractsFlags = []Definition{
	{
		FlagName:     "contracts",
		ConfigPath:   types.ContractsManifest,
		DefaultValue: types.Default.Contracts.Manifest,
		Description:  "JSON manifest with the address and abi of the filesystem, incentive and tru contracts.",
	},
	{
		FlagName:     "task-artifact",
		ConfigPath:   types.ContractsTaskArtifact,
		DefaultValue: types.Default.Contracts.TaskArtifact,
		Description:  "Compiled task contract artifact (abi and bytecode).",
	},
	{
		FlagName:     "address-file",
		ConfigPath:   types.ContractsAddressFile,
		DefaultValue: types.Default.Contracts.AddressFile,
		Description:  "File the deployed task contract address is written to and read from.",
	},
}
