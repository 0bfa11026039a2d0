// Command tagwriter renders script files with the tagwriter package, either
// once to stdout or a directory, or on demand over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sternenseemann/tagwriter/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "tagwriter",
	Short: "Render tag scripts to XML and HTML",
	Long: `tagwriter renders scripts of writer commands to XML and HTML documents,
reporting misnested or unclosed tags as warnings.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a TOML configuration file")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("closing-slash", true, "write empty elements as <name/> unless a script says otherwise")
	flags.String("warnings", "", "how diagnostics are shown (text|log|off)")
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, if any, and applies the flags
// which were given explicitly on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()

	cfg := config.Default()
	path, err := flags.GetString("config")
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if flags.Changed("closing-slash") {
		if cfg.ClosingSlash, err = flags.GetBool("closing-slash"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("warnings") {
		if cfg.Warnings, err = flags.GetString("warnings"); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func applyColor(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid color mode %q, expected auto, on or off", mode)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
