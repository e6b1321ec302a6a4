//go:build unit || !integration

package system

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/truverse/taskctl/pkg/logger"
)

type SystemCleanupSuite struct {
	suite.Suite
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestSystemCleanupSuite(t *testing.T) {
	suite.Run(t, new(SystemCleanupSuite))
}

// Before each test
func (s *SystemCleanupSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
}

func (s *SystemCleanupSuite) TestCleanupManager() {
	clean := false

	cm := NewCleanupManager()
	cm.RegisterCallback(func() error {
		clean = true
		return nil
	})

	require.NoError(s.T(), cm.Cleanup(context.Background()))
	require.True(s.T(), clean, "cleanup handler failed to run registered functions")
}

func (s *SystemCleanupSuite) TestCleanupManagerCollectsErrors() {
	cm := NewCleanupManager()
	cm.RegisterCallback(func() error { return errors.New("rpc close failed") })
	cm.RegisterCallback(func() error { return context.Canceled })
	cm.RegisterCallback(func() error { return nil })

	err := cm.Cleanup(context.Background())
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "rpc close failed")
	require.NotContains(s.T(), err.Error(), "context canceled")
}

func (s *SystemCleanupSuite) TestCleanupTwiceIsNoop() {
	calls := 0
	cm := NewCleanupManager()
	cm.RegisterCallback(func() error {
		calls++
		return nil
	})

	require.NoError(s.T(), cm.Cleanup(context.Background()))
	require.NoError(s.T(), cm.Cleanup(context.Background()))
	cm.RegisterCallback(func() error {
		calls++
		return nil
	})
	require.Equal(s.T(), 1, calls)
}
