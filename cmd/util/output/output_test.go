//go:build unit || !integration

package output

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestKeyValue(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	KeyValue(cmd, "Published", []Row{
		NewRow("Task", "reverse"),
		NewRow("Empty", ""),
		NewRow("Size", 1024),
	}, true)

	rendered := out.String()
	assert.Contains(t, rendered, "Published")
	assert.Contains(t, rendered, "reverse")
	assert.Contains(t, rendered, "1024")
	assert.NotContains(t, rendered, "Empty")
}

func TestOutputOne(t *testing.T) {
	type item struct {
		Task string `json:"task" yaml:"task"`
		Size int    `json:"size" yaml:"size"`
	}
	rows := []Row{NewRow("Task", "reverse")}

	for _, tc := range []struct {
		format OutputFormat
		want   string
	}{
		{JSONFormat, "\"task\": \"reverse\""},
		{YAMLFormat, "task: reverse\nsize: 3\n"},
		{TableFormat, "reverse"},
	} {
		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)
		assert.NoError(t, OutputOne(cmd, tc.format, "Published", rows, item{Task: "reverse", Size: 3}), tc.format)
		assert.Contains(t, out.String(), tc.want, tc.format)
	}
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat(" YAML ")
	assert.NoError(t, err)
	assert.Equal(t, YAMLFormat, f)

	_, err = ParseOutputFormat("csv")
	assert.Error(t, err)
}
