package util

import (
	"github.com/spf13/cobra"

	"github.com/truverse/taskctl/pkg/chain"
	"github.com/truverse/taskctl/pkg/config"
	"github.com/truverse/taskctl/pkg/config/types"
)

// ConfigFlag names the persistent flag holding an optional config file.
const ConfigFlag = "config"

// LoadConfig resolves the command's configuration from its bound flags, the
// environment, the optional --config file and the defaults.
func LoadConfig(cmd *cobra.Command) (types.Config, error) {
	var file string
	if f := cmd.Flags().Lookup(ConfigFlag); f != nil {
		file = f.Value.String()
	}
	return config.Load(GetViper(cmd.Context()), file)
}

func ChainConfig(cfg types.Config) chain.Config {
	return chain.Config{
		RPCURL:             cfg.Chain.RPCURL,
		PrivateKey:         cfg.Chain.PrivateKey,
		KeystoreDir:        cfg.Chain.KeystoreDir,
		KeystorePassphrase: cfg.Chain.KeystorePassphrase,
		GasLimit:           cfg.Chain.GasLimit,
	}
}
