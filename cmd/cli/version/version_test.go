//go:build unit || !integration

package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truverse/taskctl/pkg/version"
)

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--no-style"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version.GITVERSION)
	assert.Contains(t, out.String(), version.GOOS+"/"+version.GOARCH)
}
