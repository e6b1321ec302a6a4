package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/truverse/taskctl/pkg/config/types"
)

const environmentVariablePrefix = "TASKCTL"

var (
	environmentVariableReplace = strings.NewReplacer(".", "_", "-", "_")
	configDecoderHook          = viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	))
)

// New returns a viper instance with defaults and environment binding set.
// Commands bind their flags to it.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(environmentVariablePrefix)
	v.SetEnvKeyReplacer(environmentVariableReplace)
	v.SetTypeByDefaultValue(true)
	for key, value := range types.Defaults() {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes the resolved settings.
// Precedence is flag, environment, file, default.
func Load(v *viper.Viper, file string) (types.Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return types.Config{}, errors.Wrapf(err, "reading config file %s", file)
		}
	}
	var out types.Config
	if err := v.Unmarshal(&out, configDecoderHook); err != nil {
		return types.Config{}, errors.Wrap(err, "decoding config")
	}
	return out, nil
}

// KeyAsEnvVar returns the environment variable corresponding to a config key
func KeyAsEnvVar(key string) string {
	return strings.ToUpper(
		fmt.Sprintf("%s_%s", environmentVariablePrefix, environmentVariableReplace.Replace(key)),
	)
}

// Getenv reads the environment variable backing a config key.
func Getenv(key string) string {
	return os.Getenv(KeyAsEnvVar(key))
}
