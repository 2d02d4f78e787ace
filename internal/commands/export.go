package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prodviz/prodviz/internal/export"
	"github.com/prodviz/prodviz/internal/parser"
	"github.com/prodviz/prodviz/internal/tracker"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export daily summaries to JSON or CSV",
	Long: `Export a date range of daily summaries to a file.

Examples:
  prodviz export
  prodviz export --format csv --out march.csv --from 2025-03-01 --to 2025-03-31`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		fromArg, _ := cmd.Flags().GetString("from")
		toArg, _ := cmd.Flags().GetString("to")

		if format != "json" && format != "csv" {
			return fmt.Errorf("unsupported format '%s'. Use: json or csv", format)
		}
		if out == "" {
			out = "prodviz-export." + format
		}

		to, err := parser.ParseDate(toArg)
		if err != nil {
			return err
		}
		from := to.AddDate(0, 0, -29)
		if fromArg != "" {
			if from, err = parser.ParseDate(fromArg); err != nil {
				return err
			}
		}
		if from.After(to) {
			return fmt.Errorf("--from must not be after --to")
		}

		return withTracker(func(tr *tracker.Tracker) error {
			return runExport(tr, format, out, from, to)
		})
	},
}

func runExport(tr *tracker.Tracker, format, out string, from, to time.Time) error {
	summaries, err := tr.SummariesBetween(from, to)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("Nothing to export for that range.")
		return nil
	}

	switch format {
	case "csv":
		err = export.ToCSV(summaries, out)
	default:
		err = export.ToJSON(summaries, out)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d day%s to %s\n", len(summaries), plural(len(summaries)), out)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "json", "Export format: json or csv")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default prodviz-export.<format>)")
	exportCmd.Flags().String("from", "", "Start date (default 29 days before --to)")
	exportCmd.Flags().String("to", "", "End date (default today)")
}
