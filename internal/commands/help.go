package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for prodviz",
	Long:  `Display detailed help for all prodviz commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██████╗ ██████╗  ██████╗ ██████╗ ██╗   ██╗██╗███████╗
██╔══██╗██╔══██╗██╔═══██╗██╔══██╗██║   ██║██║╚══███╔╝
██████╔╝██████╔╝██║   ██║██║  ██║██║   ██║██║  ███╔╝
██╔═══╝ ██╔══██╗██║   ██║██║  ██║╚██╗ ██╔╝██║ ███╔╝
██║     ██║  ██║╚██████╔╝██████╔╝ ╚████╔╝ ██║███████╗
╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚═════╝   ╚═══╝  ╚═╝╚══════╝

prodviz - Hourly Productivity Tracker

COMMANDS:

  rate [hour] <stars>     Rate an hour of today (1-5 stars)
    -t, --tags            Comma-separated tags
    -n, --note            Note for the hour

    Smart syntax:
      #hashtags     Tag the hour
      free text     Becomes the note

    Examples:
      prodviz rate 4                      Rate the current hour
      prodviz rate 9 5 #work deep focus   Rate 9AM with tags and a note

  day [date]              Show the daily summary
    --hours               Include the hour-by-hour breakdown

  week                    Achievement chart for the last 7 days
                          with the trend against the week before

  journal [date] [text]   Read or write the day's journal entry

  export                  Export daily summaries to a file
    --format              json (default) or csv
    -o, --out             Output file
    --from, --to          Date range (default last 30 days)

  help                    Show this help
  version                 Show version information

Dates accept: today, yesterday, yyyy-mm-dd, dd/mm/yyyy.
Run prodviz with no arguments for the interactive tracker.

`)
}
