package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/signdeck/internal/config"
)

var configShowYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage signdeck configuration",
	Long:  `View and manage signdeck configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration with source annotations",
	Long: `Show the fully resolved configuration and the sources it came from.

Configuration is loaded from multiple sources with the following precedence:
  1. Embedded defaults (built into binary)
  2. Global config (~/.config/signdeck/config.yaml)
  3. Environment variables (SIGNDECK_*)
  4. Local config (.signdeck/config.yaml)
  5. CLI flags (highest precedence)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(0)
		if err != nil {
			return err
		}
		if configShowYAML {
			out, err := cfg.Dump()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		}
		printConfig(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowYAML, "yaml", false, "Print the effective configuration as YAML")
	configCmd.AddCommand(configShowCmd)
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "# signdeck configuration")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "## Sources (in order of precedence)")
	for _, src := range cfg.Sources() {
		fmt.Fprintf(out, "  - %s\n", src)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Directories")
	fmt.Fprintf(out, "  Global config: %s\n", cfg.ConfigDir())
	if cfg.LocalDir() != "" {
		fmt.Fprintf(out, "  Local config:  %s\n", cfg.LocalDir())
	} else {
		fmt.Fprintf(out, "  Local config:  (none detected)\n")
	}
	fmt.Fprintf(out, "  Journals:      %s\n", cfg.ResolvedLogsDir())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Practice")
	fmt.Fprintf(out, "  duration: %ds\n", cfg.Practice.Duration)
	fmt.Fprintf(out, "  random:   %t\n", cfg.Practice.Random)
	if cfg.Seed != 0 {
		fmt.Fprintf(out, "  seed:     %d\n", cfg.Seed)
	} else {
		fmt.Fprintf(out, "  seed:     (time-based)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Storage")
	fmt.Fprintf(out, "  backend: %s\n", cfg.Storage.Backend)
	fmt.Fprintf(out, "  key:     %s\n", cfg.Storage.Key)
	if cfg.Storage.Path != "" {
		fmt.Fprintf(out, "  path:    %s\n", cfg.Storage.Path)
	} else {
		fmt.Fprintf(out, "  path:    (default)\n")
	}
	if cfg.Storage.Backend == config.BackendRedis {
		fmt.Fprintf(out, "  redis:   %s db=%d\n", cfg.Storage.Redis.Addr, cfg.Storage.Redis.DB)
		if cfg.Storage.Redis.Password != "" {
			fmt.Fprintf(out, "  password: ****\n")
		}
	}
}
