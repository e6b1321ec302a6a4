package configflags

import "github.com/truverse/taskctl/pkg/config/types"

var SubmitFlags = []Definition{
	{
		FlagName:     "method",
		ConfigPath:   types.SubmitMethod,
		DefaultValue: types.Default.Submit.Method,
		Description:  "Task contract method the input is submitted to.",
	},
	{
		FlagName:     "poll-interval",
		ConfigPath:   types.SubmitPollInterval,
		DefaultValue: types.Default.Submit.PollInterval,
		Description:  "Delay between two output queries.",
	},
	{
		FlagName:     "timeout",
		ConfigPath:   types.SubmitTimeout,
		DefaultValue: types.Default.Submit.Timeout,
		Description:  "Give up waiting for the output after this long. 0 waits until interrupted.",
	},
	{
		FlagName:     "max-polls",
		ConfigPath:   types.SubmitMaxPolls,
		DefaultValue: types.Default.Submit.MaxPolls,
		Description:  "Give up after this many output queries. 0 is unbounded.",
	},
	{
		FlagName:     "reuse-allowance",
		ConfigPath:   types.SubmitReuseAllowance,
		DefaultValue: types.Default.Submit.ReuseAllowance,
		Description:  "Skip the approval when the TRU allowance already covers the protocol fee.",
	},
}
