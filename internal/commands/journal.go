package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prodviz/prodviz/internal/models"
	"github.com/prodviz/prodviz/internal/parser"
	"github.com/prodviz/prodviz/internal/tracker"
)

var journalCmd = &cobra.Command{
	Use:   "journal [date] [text...]",
	Short: "Read or write the journal entry for a date",
	Long: `Attach a free-text journal entry to a day's summary, or read it
back. The journal survives summary recomputes.

Examples:
  prodviz journal reflected on a busy but productive day
  prodviz journal yesterday slept badly, it showed
  prodviz journal 2025-03-10`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A leading date argument is optional; everything else is text
		dateArg := ""
		text := args
		if len(args) > 0 {
			if _, err := parser.ParseDate(args[0]); err == nil {
				dateArg = args[0]
				text = args[1:]
			}
		}
		date, err := parser.ParseDate(dateArg)
		if err != nil {
			return err
		}

		return withTracker(func(tr *tracker.Tracker) error {
			if len(text) == 0 {
				summary, err := tr.Summary(date)
				if err != nil {
					return err
				}
				if summary == nil || summary.JournalEntry == "" {
					fmt.Printf("No journal entry for %s\n", models.DateKey(date))
					return nil
				}
				fmt.Printf("%s — %s\n", summary.Date, summary.JournalEntry)
				return nil
			}

			entry := strings.Join(text, " ")
			if err := tr.SaveJournalEntry(date, entry); err != nil {
				return err
			}
			fmt.Printf("📝 Journal saved for %s\n", models.DateKey(date))
			return nil
		})
	},
}
