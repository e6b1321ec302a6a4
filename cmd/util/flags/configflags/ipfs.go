package configflags

import "github.com/truverse/taskctl/pkg/config/types"

var IPFSFlags = []Definition{
	{
		FlagName:             "ipfs",
		ConfigPath:           types.IPFSAPI,
		DefaultValue:         types.Default.IPFS.API,
		Description:          "Multiaddr or URL of the IPFS HTTP API.",
		EnvironmentVariables: []string{"IPFS_API"},
	},
}
