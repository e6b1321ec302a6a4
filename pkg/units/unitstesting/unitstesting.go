// Package unitstesting has helpers for tests that need token amounts.
package unitstesting

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truverse/taskctl/pkg/units"
)

// Token parses a decimal TRU amount into atomic units and fails the test if
// it is not valid.
func Token(t testing.TB, s string) *big.Int {
	t.Helper()
	v, err := units.ParseToken(s)
	require.NoError(t, err, s)
	return v
}
