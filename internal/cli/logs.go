package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/signdeck/internal/journal"
)

var (
	logsList   bool
	logsRecent int
)

var logsCmd = &cobra.Command{
	Use:   "logs [list-name]",
	Short: "Show practice journals",
	Long: `Show practice journals.

Every practice run writes a journal to the logs directory. Without flags the
most recent journal is printed; a list name narrows the search.

Examples:
  signdeck logs              # Latest journal
  signdeck logs animaux      # Latest journal for lists matching "animaux"
  signdeck logs -l           # List recent journals`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(0)
		if err != nil {
			return err
		}
		filter := ""
		if len(args) == 1 {
			filter = args[0]
		}
		if logsList {
			return listLogs(cmd.OutOrStdout(), cfg.ResolvedLogsDir(), filter, logsRecent)
		}
		return showLatestLog(cmd.OutOrStdout(), cfg.ResolvedLogsDir(), filter)
	},
}

func init() {
	logsCmd.Flags().BoolVarP(&logsList, "list", "l", false, "List recent journals")
	logsCmd.Flags().IntVar(&logsRecent, "recent", 10, "Number of recent journals to list")
}

// listLogs lists recent journals.
func listLogs(out io.Writer, logsDir, filter string, recent int) error {
	logs, err := journal.FindLogs(logsDir, filter)
	if err != nil {
		return fmt.Errorf("failed to find journals: %w", err)
	}

	if len(logs) == 0 {
		fmt.Fprintln(out, "No journals found.")
		fmt.Fprintf(out, "Journal directory: %s\n", logsDir)
		return nil
	}

	fmt.Fprintf(out, "Recent journals (showing %d):\n", min(recent, len(logs)))
	fmt.Fprintln(out, strings.Repeat("-", 60))

	for i, lf := range logs {
		if i >= recent {
			break
		}
		fmt.Fprintf(out, "  %s  %s\n", lf.Timestamp.Format("2006-01-02 15:04:05"), lf.ListName)
		fmt.Fprintf(out, "    %s\n", lf.Path)
	}
	return nil
}

// showLatestLog prints the newest journal matching filter.
func showLatestLog(out io.Writer, logsDir, filter string) error {
	lf, err := journal.FindLatestLog(logsDir, filter)
	if err != nil {
		return fmt.Errorf("failed to find journal: %w", err)
	}
	if lf == nil {
		if filter != "" {
			fmt.Fprintf(out, "No journals found for: %s\n", filter)
		} else {
			fmt.Fprintln(out, "No journals found.")
		}
		fmt.Fprintln(out, "Tip: Use 'signdeck logs -l' to list all journals")
		return nil
	}

	data, err := os.ReadFile(lf.Path)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	_, err = out.Write(data)
	return err
}
