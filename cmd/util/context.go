package util

import (
	"context"

	"github.com/spf13/viper"

	"github.com/truverse/taskctl/pkg/config"
	"github.com/truverse/taskctl/pkg/system"
)

type contextKey struct {
	name string
}

var (
	SystemManagerKey = contextKey{name: "context key for storing the system manager"}
	ViperKey         = contextKey{name: "context key for storing the command's viper instance"}
)

func GetCleanupManager(ctx context.Context) *system.CleanupManager {
	return ctx.Value(SystemManagerKey).(*system.CleanupManager)
}

// GetCleanupManagerOK is GetCleanupManager for callers that may run before
// the root command set one up.
func GetCleanupManagerOK(ctx context.Context) (*system.CleanupManager, bool) {
	if ctx == nil {
		return nil, false
	}
	cm, ok := ctx.Value(SystemManagerKey).(*system.CleanupManager)
	return cm, ok
}

// GetViper returns the viper instance set up by the root command, or a fresh
// one when the command runs outside of it (tests).
func GetViper(ctx context.Context) *viper.Viper {
	if v, ok := ctx.Value(ViperKey).(*viper.Viper); ok {
		return v
	}
	return config.New()
}
