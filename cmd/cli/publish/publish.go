package publish

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/truverse/taskctl/cmd/util"
	"github.com/truverse/taskctl/cmd/util/flags"
	"github.com/truverse/taskctl/cmd/util/flags/configflags"
	"github.com/truverse/taskctl/cmd/util/output"
	"github.com/truverse/taskctl/pkg/chain"
	"github.com/truverse/taskctl/pkg/config/types"
	ipfs_http "github.com/truverse/taskctl/pkg/ipfs/http"
	"github.com/truverse/taskctl/pkg/publisher"
	"github.com/truverse/taskctl/pkg/truebit"
)

// DefaultTaskName is the task published when no name is given.
const DefaultTaskName = "reverse"

var (
	publishLong = `Upload a compiled wasm task to IPFS, register it with the filesystem
contract and deploy a task contract for it.

The task is read from <artifact-dir>/<task-name>.wasm and its metadata from
<artifact-dir>/<task-name>.wasm.json. The deployed contract address is written
to the address file for the submit command.`

	publishExample = `# Publish the reverse task from artifacts-task/truebit
taskctl publish

# Publish another task with a longer challenge window
taskctl publish sha256 --challenge-window 10`
)

func flagDefinitions() map[string][]configflags.Definition {
	return map[string][]configflags.Definition{
		"chain":     configflags.ChainFlags,
		"contracts": configflags.ContractsFlags,
		"ipfs":      configflags.IPFSFlags,
		"publish":   configflags.PublishFlags,
		"economics": configflags.EconomicsFlags,
		"vm":        configflags.VMFlags,
	}
}

func NewCmd() *cobra.Command {
	defs := flagDefinitions()
	format := output.TableFormat
	publishCmd := &cobra.Command{
		Use:     "publish [task-name]",
		Short:   "Publish a wasm task and deploy its task contract",
		Long:    publishLong,
		Example: publishExample,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return configflags.BindFlags(util.GetViper(cmd.Context()), cmd, defs)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, format)
		},
	}
	if err := configflags.RegisterFlags(publishCmd, defs); err != nil {
		util.Fatal(publishCmd, err, 1)
	}
	publishCmd.Flags().VarP(flags.OutputFormatFlag(&format), "output", "o",
		fmt.Sprintf("The output format for the summary (%v).", output.AllFormats))
	return publishCmd
}

func run(cmd *cobra.Command, args []string, format output.OutputFormat) error {
	ctx := cmd.Context()
	cfg, err := util.LoadConfig(cmd)
	if err != nil {
		return err
	}

	taskName := DefaultTaskName
	if len(args) > 0 {
		taskName = args[0]
	}

	manifest, err := chain.LoadManifest(cfg.Contracts.Manifest)
	if err != nil {
		return err
	}
	contract, err := chain.LoadArtifact(cfg.Contracts.TaskArtifact)
	if err != nil {
		return err
	}
	req, err := buildRequest(cfg, taskName, manifest, contract)
	if err != nil {
		return err
	}

	store, err := ipfs_http.NewIPFSHttpClient(cfg.IPFS.API, nil)
	if err != nil {
		return err
	}
	client, err := chain.Dial(ctx, util.ChainConfig(cfg))
	if err != nil {
		return err
	}
	util.GetCleanupManager(ctx).RegisterCallback(client.Close)

	deps, err := publisher.NewDeps(client, store, manifest)
	if err != nil {
		return err
	}
	res, err := publisher.Publish(ctx, deps, req)
	if err != nil {
		return fmt.Errorf("publishing %s: %w", taskName, err)
	}

	return printResult(cmd, format, res)
}

func buildRequest(cfg types.Config, taskName string, manifest chain.Manifest, contract *chain.Artifact) (publisher.Request, error) {
	incentive, err := manifest.Get(chain.Incentive)
	if err != nil {
		return publisher.Request{}, err
	}
	token, err := manifest.Get(chain.Token)
	if err != nil {
		return publisher.Request{}, err
	}
	p := cfg.Publish
	return publisher.Request{
		TaskName:    taskName,
		ArtifactDir: p.ArtifactDir,
		UploadName:  p.UploadName,
		AddressFile: cfg.Contracts.AddressFile,
		Contract:    contract,
		Incentive:   incentive.Address,
		Token:       token.Address,
		Economics: publisher.Economics{
			MinDeposit:   p.MinDeposit,
			SolverReward: p.SolverReward,
			VerifierTax:  p.VerifierTax,
			OwnerFee:     p.OwnerFee,
		},
		ChallengeWindow: p.ChallengeWindow,
		VM: truebit.VMParameters{
			Stack:   p.StackSize,
			Memory:  p.MemorySize,
			Globals: p.GlobalsSize,
			Table:   p.TableSize,
			Call:    p.CallSize,
		},
		CodeType: p.CodeType,
	}, nil
}

type summary struct {
	Task         string `json:"task" yaml:"task"`
	Contract     string `json:"contract" yaml:"contract"`
	CID          string `json:"cid" yaml:"cid"`
	Size         uint64 `json:"size" yaml:"size"`
	Root         string `json:"root" yaml:"root"`
	CodeRoot     string `json:"codeRoot" yaml:"codeRoot"`
	Nonce        uint64 `json:"nonce" yaml:"nonce"`
	FileID       string `json:"fileId" yaml:"fileId"`
	RootVerified bool   `json:"rootVerified" yaml:"rootVerified"`
	RegisterTx   string `json:"registerTx,omitempty" yaml:"registerTx,omitempty"`
	CodeTx       string `json:"codeTx,omitempty" yaml:"codeTx,omitempty"`
	DeployTx     string `json:"deployTx,omitempty" yaml:"deployTx,omitempty"`
}

func newSummary(res *publisher.Result) summary {
	var cidStr string
	if res.Upload.CID.Defined() {
		cidStr = res.Upload.CID.String()
	}
	return summary{
		Task:         res.Task,
		Contract:     res.Contract.Hex(),
		CID:          cidStr,
		Size:         res.Size,
		Root:         res.Root.Hex(),
		CodeRoot:     res.CodeRoot.Hex(),
		Nonce:        res.Nonce,
		FileID:       res.FileID.Hex(),
		RootVerified: res.Verified,
		RegisterTx:   hashOrEmpty(res.RegisterTx),
		CodeTx:       hashOrEmpty(res.CodeTx),
		DeployTx:     hashOrEmpty(res.DeployTx),
	}
}

func printResult(cmd *cobra.Command, format output.OutputFormat, res *publisher.Result) error {
	s := newSummary(res)
	verified := "skipped (registry has no getRoot)"
	if s.RootVerified {
		verified = "yes"
	}
	return output.OutputOne(cmd, format, "Published "+s.Task, []output.Row{
		output.NewRow("Contract", s.Contract),
		output.NewRow("CID", s.CID),
		output.NewRow("Size", s.Size),
		output.NewRow("Merkle root", s.Root),
		output.NewRow("Code root", s.CodeRoot),
		output.NewRow("Nonce", s.Nonce),
		output.NewRow("File ID", s.FileID),
		output.NewRow("Root verified", verified),
		output.NewRow("Register tx", s.RegisterTx),
		output.NewRow("Code root tx", s.CodeTx),
		output.NewRow("Deploy tx", s.DeployTx),
	}, s)
}

func hashOrEmpty(h common.Hash) string {
	if h == (common.Hash{}) {
		return ""
	}
	return h.Hex()
}
