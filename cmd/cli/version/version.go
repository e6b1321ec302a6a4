package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/truverse/taskctl/cmd/util/output"
	"github.com/truverse/taskctl/pkg/version"
)

func NewCmd() *cobra.Command {
	var plain bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the taskctl build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd, plain)
		},
	}
	versionCmd.Flags().BoolVar(&plain, "no-style", false, "Remove all styling from table output.")
	return versionCmd
}

func runVersion(cmd *cobra.Command, plain bool) error {
	info, err := version.Get()
	if err != nil {
		return fmt.Errorf("error running version: %w", err)
	}
	var built string
	if !info.BuildDate.IsZero() {
		built = info.BuildDate.Format("2006-01-02T15:04:05Z")
	}
	output.KeyValue(cmd, "taskctl", []output.Row{
		output.NewRow("Version", info.GitVersion),
		output.NewRow("Commit", info.GitCommit),
		output.NewRow("Built", built),
		output.NewRow("Platform", info.GOOS+"/"+info.GOARCH),
	}, plain)
	return nil
}
