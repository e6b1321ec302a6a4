package types

const (
	ChainRPCURL             = "chain.rpc-url"
	ChainPrivateKey         = "chain.private-key"
	ChainKeystore           = "chain.keystore"
	ChainKeystorePassphrase = "chain.keystore-passphrase"
	ChainGasLimit           = "chain.gas-limit"

	IPFSAPI = "ipfs.api"

	ContractsManifest     = "contracts.manifest"
	ContractsTaskArtifact = "contracts.task-artifact"
	ContractsAddressFile  = "contracts.address-file"

	PublishArtifactDir     = "publish.artifact-dir"
	PublishUploadName      = "publish.upload-name"
	PublishMinDeposit      = "publish.min-deposit"
	PublishSolverReward    = "publish.solver-reward"
	PublishVerifierTax     = "publish.verifier-tax"
	PublishOwnerFee        = "publish.owner-fee"
	PublishChallengeWindow = "publish.challenge-window"
	PublishCodeType        = "publish.code-type"
	PublishMemorySize      = "publish.memory-size"
	PublishStackSize       = "publish.stack-size"
	PublishGlobalsSize     = "publish.globals-size"
	PublishTableSize       = "publish.table-size"
	PublishCallSize        = "publish.call-size"

	SubmitMethod         = "submit.method"
	SubmitPollInterval   = "submit.poll-interval"
	SubmitTimeout        = "submit.timeout"
	SubmitMaxPolls       = "submit.max-polls"
	SubmitReuseAllowance = "submit.reuse-allowance"
)
