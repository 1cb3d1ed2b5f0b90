package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/signdeck/internal/domain"
	"github.com/alexander-akhmetov/signdeck/internal/wordlist"
)

// previewWords is how many words a list preview shows before "+N more".
const previewWords = 6

// minShortID is the fewest id characters the lists table shows.
const minShortID = 8

var (
	createWords     []string
	createWordsFile string
	exportPretty    bool
)

var listsCmd = &cobra.Command{
	Use:     "lists",
	Aliases: []string{"ls"},
	Short:   "List word lists",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, 0, func(_ context.Context, a *app) error {
			return printLists(cmd.OutOrStdout(), a.store.List())
		})
	},
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a word list",
	Long: `Create a word list from one word per line.

Words come from --word flags, a --words-file, or standard input when it is
not a terminal. Lines are trimmed and blank lines are dropped.

Examples:
  signdeck create Animaux --word chat --word chien
  signdeck create Couleurs --words-file couleurs.txt
  printf 'un\ndeux\ntrois\n' | signdeck create Nombres`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := collectWords(cmd.InOrStdin(), createWords, createWordsFile, !stdinIsTTY())
		if err != nil {
			return err
		}
		return withApp(cmd, 0, func(ctx context.Context, a *app) error {
			return runCreate(ctx, a, cmd.OutOrStdout(), args[0], raw)
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete [id|name]",
	Aliases: []string{"rm"},
	Short:   "Delete a word list",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, 0, func(ctx context.Context, a *app) error {
			l, err := resolveList(ctx, a, args)
			if err != nil {
				return err
			}
			_, err = a.store.Delete(ctx, l.ID)
			return err
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show [id|name]",
	Short: "Show the words of a list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, 0, func(ctx context.Context, a *app) error {
			l, err := resolveList(ctx, a, args)
			if err != nil {
				return err
			}
			w := NewWriter(cmd.OutOrStdout(), stdoutIsTTY(), terminalWidth())
			_, err = fmt.Fprint(cmd.OutOrStdout(), w.Markdown(listMarkdown(l)))
			return err
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [id|name]",
	Short: "Print a list as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, 0, func(ctx context.Context, a *app) error {
			l, err := resolveList(ctx, a, args)
			if err != nil {
				return err
			}
			return runExport(cmd.OutOrStdout(), l, exportPretty)
		})
	},
}

func init() {
	createCmd.Flags().StringArrayVarP(&createWords, "word", "w", nil, "Add a word (repeatable)")
	createCmd.Flags().StringVarP(&createWordsFile, "words-file", "f", "", "Read words from a file, one per line")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "Indent the JSON output")
}

// withApp loads config, opens the store and runs fn.
func withApp(cmd *cobra.Command, duration int, fn func(context.Context, *app) error) error {
	cfg, err := loadConfig(duration)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// resolveList looks up args[0], or asks the user to pick a list when no
// argument was given.
func resolveList(ctx context.Context, a *app, args []string) (domain.WordList, error) {
	if len(args) == 0 {
		return pickList(ctx, NewTerminalCollector(), a.store.List())
	}
	return a.store.Resolve(args[0])
}

// collectWords joins words from flags, a file and stdin into raw text.
func collectWords(stdin io.Reader, words []string, file string, readStdin bool) (string, error) {
	var parts []string
	if len(words) > 0 {
		parts = append(parts, strings.Join(words, "\n"))
	}
	if file != "" {
		data, err := os.ReadFile(file) //nolint:gosec // user-supplied word file
		if err != nil {
			return "", fmt.Errorf("read words file: %w", err)
		}
		parts = append(parts, string(data))
	}
	if len(parts) == 0 && readStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n"), nil
}

func runCreate(ctx context.Context, a *app, out io.Writer, name, raw string) error {
	l, err := a.store.Create(ctx, name, raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, l.ID)
	return err
}

func runExport(out io.Writer, l domain.WordList, pretty bool) error {
	data, err := wordlist.Export(l, pretty)
	if err != nil {
		return err
	}
	if !pretty {
		data = append(data, '\n')
	}
	_, err = out.Write(data)
	return err
}

func printLists(out io.Writer, lists []domain.WordList) error {
	if len(lists) == 0 {
		_, err := fmt.Fprintln(out, "No word lists yet. Create one with 'signdeck create <name>'.")
		return err
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("", "NAME", "WORDS", "CREATED", "ID", "PREVIEW")
	ids := wordlist.ShortIDs(lists, minShortID)
	for _, l := range lists {
		t.Row(swatch(l.Color), l.Name, fmt.Sprint(l.Len()), formatCreated(l), ids[l.ID], preview(l))
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}

// preview renders the first words of l, then "+N more".
func preview(l domain.WordList) string {
	shown, more := l.Preview(previewWords)
	s := strings.Join(shown, ", ")
	if more > 0 {
		s += fmt.Sprintf(" +%d more", more)
	}
	return s
}

func formatCreated(l domain.WordList) string {
	if l.CreatedAt.IsZero() {
		return "-"
	}
	return l.CreatedAt.Local().Format("2006-01-02")
}

// listMarkdown renders l as a markdown document for show.
func listMarkdown(l domain.WordList) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", l.Name)
	fmt.Fprintf(&b, "- **Words:** %d\n", l.Len())
	fmt.Fprintf(&b, "- **Color:** %s\n", l.Color)
	fmt.Fprintf(&b, "- **Created:** %s\n", formatCreated(l))
	fmt.Fprintf(&b, "- **ID:** `%s`\n\n", l.ID)
	for i, w := range l.Words {
		fmt.Fprintf(&b, "%d. %s\n", i+1, w)
	}
	return b.String()
}
