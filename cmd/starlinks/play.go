package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starlinks/internal/core"
	"github.com/vovakirdan/starlinks/internal/input"
	"github.com/vovakirdan/starlinks/internal/platform/links"
	"github.com/vovakirdan/starlinks/internal/platform/tui"
	"github.com/vovakirdan/starlinks/internal/platform/window"
	"github.com/vovakirdan/starlinks/internal/storage"
)

var (
	flagWindow   bool
	flagControls string
	flagIcons    string
	flagNoOpen   bool
	flagWidth    int
	flagHeight   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play starlinks",
	Long: `Start a game in the terminal, or in a desktop window with --window.

Controls:
  Left/Right, A/D  - Turn
  Up/W             - Thrust
  Space            - Shoot
  Mouse/Touch      - On-screen controls (see 'starlinks schemes')
  Ctrl+S           - Save a screenshot (terminal)
  Q/Ctrl+C         - Quit (Esc also closes the window)

Every target that is hit opens its link and is written to the visit log.

Examples:
  starlinks play
  starlinks play --controls dpad
  starlinks play --window --width 1280 --height 720
  starlinks play --window --icons ./icons
  starlinks play --no-open --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of playing in the terminal")
	playCmd.Flags().StringVar(&flagControls, "controls", "", "Touch control scheme (overrides config)")
	playCmd.Flags().StringVar(&flagIcons, "icons", "", "Directory with target icons (window only)")
	playCmd.Flags().BoolVar(&flagNoOpen, "no-open", false, "Record hits without opening a browser")
	playCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in pixels")
	playCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height in pixels")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagControls != "" {
		if !input.Exists(flagControls) {
			return fmt.Errorf("unknown control scheme %q, run 'starlinks schemes' to see available schemes", flagControls)
		}
		cfg.Controls.Scheme = flagControls
	}

	var logger *log.Logger
	host := "terminal"
	if flagWindow {
		host = "window"
		logger = newLogger(os.Stderr, "starlinks")
	} else {
		var closeLog func()
		logger, closeLog = fileLogger()
		defer closeLog()
	}

	// Open the visit log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open visit log: %v\n", err)
		// Continue without storage - links still open
		store = nil
	}

	sink := links.New(links.Options{
		Browser: !flagNoOpen,
		Store:   store,
		Host:    host,
		Logger:  logger,
	})

	var runErr error
	if flagWindow {
		runErr = window.Run(window.Options{
			Config: cfg,
			Runtime: core.RuntimeConfig{
				ScreenW:  flagWidth,
				ScreenH:  flagHeight,
				TickRate: flagFPS,
				Seed:     flagSeed,
			},
			Links:   sink,
			IconDir: flagIcons,
			Logger:  logger,
		})
	} else {
		// Get terminal size
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		runErr = tui.Run(tui.Options{
			Config: cfg,
			Runtime: core.RuntimeConfig{
				ScreenW:  width,
				ScreenH:  height,
				TickRate: flagFPS,
				Seed:     flagSeed,
			},
			Links:  sink,
			Logger: logger,
		})
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
