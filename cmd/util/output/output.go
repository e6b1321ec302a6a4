package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Row is one labelled value of a summary table.
type Row struct {
	Key   string
	Value any
}

func NewRow(key string, value any) Row {
	return Row{Key: key, Value: value}
}

var noStyle = table.Style{
	Name:   "StyleDefault",
	Box:    table.StyleBoxDefault,
	Color:  table.ColorOptionsDefault,
	Format: table.FormatOptionsDefault,
	HTML:   table.DefaultHTMLOptions,
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
	Title: table.TitleOptionsDefault,
}

// KeyValue renders rows as a two column table on the command's stdout.
// Rows with an empty value are skipped.
func KeyValue(cmd *cobra.Command, title string, rows []Row, plain bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetTitle(title)
	tw.SetStyle(table.StyleRounded)
	if plain {
		tw.SetStyle(noStyle)
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: text.Colors{text.Bold}},
	})

	rows = lo.Filter(rows, func(r Row, _ int) bool {
		return fmt.Sprintf("%v", r.Value) != ""
	})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Key, r.Value})
	}
	tw.Render()
}
