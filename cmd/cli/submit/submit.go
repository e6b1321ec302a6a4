package submit

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/truverse/taskctl/cmd/util"
	"github.com/truverse/taskctl/cmd/util/flags"
	"github.com/truverse/taskctl/cmd/util/flags/configflags"
	"github.com/truverse/taskctl/cmd/util/output"
	"github.com/truverse/taskctl/cmd/util/printer"
	"github.com/truverse/taskctl/pkg/chain"
	"github.com/truverse/taskctl/pkg/config/types"
	"github.com/truverse/taskctl/pkg/submitter"
	"github.com/truverse/taskctl/pkg/units"
)

// DefaultInput is submitted when no input is given.
const DefaultInput = "abc123"

var (
	submitLong = `Submit an input to the task contract deployed by publish, pay the
protocol and platform fees and wait for the solved output.

The contract address is read from the address file. The output is polled
every poll interval until it is non-empty, the timeout expires or the
command is interrupted.`

	submitExample = `# Reverse "abc123"
taskctl submit

# Reverse a custom string, giving up after two minutes
taskctl submit "hello world" --timeout 2m`
)

func flagDefinitions() map[string][]configflags.Definition {
	return map[string][]configflags.Definition{
		"chain":     configflags.ChainFlags,
		"contracts": configflags.ContractsFlags,
		"submit":    configflags.SubmitFlags,
	}
}

func NewCmd() *cobra.Command {
	defs := flagDefinitions()
	format := output.TableFormat
	submitCmd := &cobra.Command{
		Use:     "submit [input]",
		Short:   "Submit an input to the deployed task contract and wait for the output",
		Long:    submitLong,
		Example: submitExample,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return configflags.BindFlags(util.GetViper(cmd.Context()), cmd, defs)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, format)
		},
	}
	if err := configflags.RegisterFlags(submitCmd, defs); err != nil {
		util.Fatal(submitCmd, err, 1)
	}
	submitCmd.Flags().VarP(flags.OutputFormatFlag(&format), "output", "o",
		fmt.Sprintf("The output format for the result (%v).", output.AllFormats))
	return submitCmd
}

func run(cmd *cobra.Command, args []string, format output.OutputFormat) error {
	ctx := cmd.Context()
	cfg, err := util.LoadConfig(cmd)
	if err != nil {
		return err
	}

	input := DefaultInput
	if len(args) > 0 {
		input = args[0]
	}

	manifest, err := chain.LoadManifest(cfg.Contracts.Manifest)
	if err != nil {
		return err
	}
	taskContract, err := chain.LoadArtifact(cfg.Contracts.TaskArtifact)
	if err != nil {
		return err
	}

	client, err := chain.Dial(ctx, util.ChainConfig(cfg))
	if err != nil {
		return err
	}
	util.GetCleanupManager(ctx).RegisterCallback(client.Close)

	deps, err := submitter.NewDeps(client, manifest, taskContract, cfg.Contracts.AddressFile, cfg.Submit.Method)
	if err != nil {
		return err
	}

	// Progress goes to stderr so stdout only carries the result.
	progress := printer.NewProgress(cmd.ErrOrStderr(), "Task "+input)
	res, err := submitter.Submit(ctx, deps, buildRequest(cfg, input, progress))
	progress.Done(err == nil)
	if err != nil {
		return err
	}

	return printResult(cmd, format, res, input)
}

func buildRequest(cfg types.Config, input string, progress printer.Progress) submitter.Request {
	return submitter.Request{
		Input:          []byte(input),
		PollInterval:   cfg.Submit.PollInterval,
		Timeout:        cfg.Submit.Timeout,
		MaxPolls:       cfg.Submit.MaxPolls,
		ReuseAllowance: cfg.Submit.ReuseAllowance,
		OnPoll:         progress.Poll,
	}
}

type result struct {
	Contract    string `json:"contract" yaml:"contract"`
	Input       string `json:"input" yaml:"input"`
	Balance     string `json:"truBalance" yaml:"truBalance"`
	ProtocolFee string `json:"protocolFee" yaml:"protocolFee"`
	PlatformFee string `json:"platformFee" yaml:"platformFee"`
	ApproveTx   string `json:"approveTx,omitempty" yaml:"approveTx,omitempty"`
	SubmitTx    string `json:"submitTx,omitempty" yaml:"submitTx,omitempty"`
	Queries     int    `json:"queries" yaml:"queries"`
	Output      string `json:"output" yaml:"output"`
}

func printResult(cmd *cobra.Command, format output.OutputFormat, res *submitter.Result, input string) error {
	text, err := res.Text()
	if err != nil {
		return err
	}
	r := result{
		Contract:    res.Contract.Hex(),
		Input:       input,
		Balance:     units.FormatToken(res.Balance),
		ProtocolFee: units.FormatToken(res.ProtocolFee),
		PlatformFee: units.FormatToken(res.PlatformFee),
		ApproveTx:   hashOrEmpty(res.ApproveTx),
		SubmitTx:    hashOrEmpty(res.SubmitTx),
		Queries:     res.Polls,
		Output:      text,
	}
	if format != output.TableFormat {
		return output.OutputOne(cmd, format, "", nil, r)
	}
	output.KeyValue(cmd, "Task output", []output.Row{
		output.NewRow("Contract", r.Contract),
		output.NewRow("TRU balance", r.Balance+" TRU"),
		output.NewRow("Protocol fee", r.ProtocolFee+" TRU"),
		output.NewRow("Platform fee", r.PlatformFee+" ETH"),
		output.NewRow("Queries", r.Queries),
	}, false)
	cmd.Println("Got output:", r.Output)
	return nil
}

func hashOrEmpty(h common.Hash) string {
	if h == (common.Hash{}) {
		return ""
	}
	return h.Hex()
}
