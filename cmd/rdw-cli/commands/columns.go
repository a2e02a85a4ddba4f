package commands

import (
	"os"
	"sort"

	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(columnsCmd)
}

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Lists the dataset's fields with their canonical and localized names.",
	Run: func(cmd *cobra.Command, args []string) {
		translations := rdw.ColumnTranslations()
		dutch := make([]string, 0, len(translations))
		for source := range translations {
			dutch = append(dutch, source)
		}
		sort.Strings(dutch)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Source (Dutch)", "Canonical (English)", "Label (Turkish)"})
		for _, source := range dutch {
			english := translations[source]
			t.AppendRow(table.Row{source, english, rdw.TurkishColumnLabels[english]})
		}
		t.Render()
	},
}
