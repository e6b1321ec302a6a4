//go:build unit || !integration

package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	var out bytes.Buffer
	p := NewProgress(&out, "reverse")
	_, ok := p.(*Lines)
	require.True(t, ok, "a buffer is not a terminal")

	p.Poll(1)
	p.Poll(2)
	p.Done(true)
	assert.Equal(t, "Waiting...\nWaiting....\n", out.String())
}

func TestSpinnerNotStarted(t *testing.T) {
	var out bytes.Buffer
	s, err := NewSpinner(&out, "reverse")
	require.NoError(t, err)

	s.Done(false)
	assert.Empty(t, out.String(), "a spinner that never polled prints nothing")
}
