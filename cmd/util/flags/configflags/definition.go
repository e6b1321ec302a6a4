package configflags

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Definition ties a command line flag to a config key. The flag's type is
// taken from DefaultValue.
type Definition struct {
	FlagName     string
	ConfigPath   string
	DefaultValue interface{}
	Description  string

	// EnvironmentVariables are bound to ConfigPath in addition to the
	// TASKCTL_ prefixed name derived from it.
	EnvironmentVariables []string
}

// RegisterFlags adds each group of definitions to cmd as a named flag set.
func RegisterFlags(cmd *cobra.Command, register map[string][]Definition) error {
	for name, defs := range register {
		fset := pflag.NewFlagSet(name, pflag.ContinueOnError)
		for _, def := range defs {
			switch v := def.DefaultValue.(type) {
			case string:
				fset.String(def.FlagName, v, def.Description)
			case bool:
				fset.Bool(def.FlagName, v, def.Description)
			case int:
				fset.Int(def.FlagName, v, def.Description)
			case uint64:
				fset.Uint64(def.FlagName, v, def.Description)
			case time.Duration:
				fset.Duration(def.FlagName, v, def.Description)
			default:
				return fmt.Errorf("unhandled type: %T for flag %s", v, def.FlagName)
			}
		}
		cmd.PersistentFlags().AddFlagSet(fset)
	}
	return nil
}

// BindFlags binds every registered flag of cmd to its config key on v. Call
// it from a pre-run hook so flags of the running command take precedence.
func BindFlags(v *viper.Viper, cmd *cobra.Command, register map[string][]Definition) error {
	for _, defs := range register {
		for _, def := range defs {
			flag := cmd.Flags().Lookup(def.FlagName)
			if flag == nil {
				return fmt.Errorf("flag %s is not registered on %s", def.FlagName, cmd.Name())
			}
			if err := v.BindPFlag(def.ConfigPath, flag); err != nil {
				return err
			}
			if len(def.EnvironmentVariables) > 0 {
				if err := v.BindEnv(append([]string{def.ConfigPath}, def.EnvironmentVariables...)...); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
