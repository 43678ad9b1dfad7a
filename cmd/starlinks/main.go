// starlinks is a small space shooter whose targets are links: shoot one and
// its URL opens.
//
// Usage:
//
//	starlinks play           - Play in the terminal (or --window for a desktop window)
//	starlinks serve          - Start SSH server for remote play
//	starlinks visits         - Browse the log of opened links
//	starlinks schemes        - List touch control schemes
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible target layouts
//	--db <path>         - Set visit log path (default: ~/.starlinks/visits.db)
//	--config <path>     - Load settings from a YAML file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starlinks/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starlinks",
	Short: "Starlinks - shoot links in a wrapping starfield",
	Long: `Starlinks is a tiny arcade shooter. Fly a ship around a wrapping
field and shoot the drifting targets: each one is a link, and hitting it
opens the link in your browser.

Available commands:
  play     - Play in the terminal or a desktop window
  serve    - Start SSH server for remote play
  visits   - Browse the log of opened links
  schemes  - List touch control schemes

Examples:
  starlinks play
  starlinks play --window --icons ./icons
  starlinks play --controls joystick
  starlinks serve --ssh :2222
  starlinks visits --by-tag`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starlinks/visits.db", "Path to visit log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(visitsCmd)
	rootCmd.AddCommand(schemesCmd)
}

// loadConfig loads --config, or the search path when it is empty.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger at --log-level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// fileLogger logs to ~/.starlinks/starlinks.log so output does not tear the
// terminal UI. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	dir := config.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "starlinks.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "starlinks"), func() { f.Close() }
}
