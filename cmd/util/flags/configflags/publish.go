package configflags

import "github.com/truverse/taskctl/pkg/config/types"

var PublishFlags = []Definition{
	{
		FlagName:     "artifact-dir",
		ConfigPath:   types.PublishArtifactDir,
		DefaultValue: types.Default.Publish.ArtifactDir,
		Description:  "Directory holding <task>.wasm and <task>.wasm.json.",
	},
	{
		FlagName:     "upload-name",
		ConfigPath:   types.PublishUploadName,
		DefaultValue: types.Default.Publish.UploadName,
		Description:  "Name the binary is stored under in IPFS and the filesystem registry.",
	},
	{
		FlagName:     "challenge-window",
		ConfigPath:   types.PublishChallengeWindow,
		DefaultValue: types.Default.Publish.ChallengeWindow,
		Description:  "Block limit of the verification game.",
	},
	{
		FlagName:     "code-type",
		ConfigPath:   types.PublishCodeType,
		DefaultValue: types.Default.Publish.CodeType,
		Description:  "Code type registered with the code root. 1 is wasm.",
	},
}

var EconomicsFlags = []Definition{
	{
		FlagName:     "min-deposit",
		ConfigPath:   types.PublishMinDeposit,
		DefaultValue: types.Default.Publish.MinDeposit,
		Description:  "Minimum solver and verifier deposit in TRU.",
	},
	{
		FlagName:     "solver-reward",
		ConfigPath:   types.PublishSolverReward,
		DefaultValue: types.Default.Publish.SolverReward,
		Description:  "Solver reward in TRU.",
	},
	{
		FlagName:     "verifier-tax",
		ConfigPath:   types.PublishVerifierTax,
		DefaultValue: types.Default.Publish.VerifierTax,
		Description:  "Verifier tax in TRU.",
	},
	{
		FlagName:     "owner-fee",
		ConfigPath:   types.PublishOwnerFee,
		DefaultValue: types.Default.Publish.OwnerFee,
		Description:  "Fee paid to the task owner in TRU.",
	},
}

var VMFlags = []Definition{
	{
		FlagName:     "memory-size",
		ConfigPath:   types.PublishMemorySize,
		DefaultValue: types.Default.Publish.MemorySize,
		Description:  "VM memory size.",
	},
	{
		FlagName:     "stack-size",
		ConfigPath:   types.PublishStackSize,
		DefaultValue: types.Default.Publish.StackSize,
		Description:  "VM stack size.",
	},
	{
		FlagName:     "globals-size",
		ConfigPath:   types.PublishGlobalsSize,
		DefaultValue: types.Default.Publish.GlobalsSize,
		Description:  "VM globals size.",
	},
	{
		FlagName:     "table-size",
		ConfigPath:   types.PublishTableSize,
		DefaultValue: types.Default.Publish.TableSize,
		Description:  "VM table size.",
	},
	{
		FlagName:     "call-size",
		ConfigPath:   types.PublishCallSize,
		DefaultValue: types.Default.Publish.CallSize,
		Description:  "VM call stack size.",
	},
}
