package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/amazer/internal/codec"
	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/platform/tui"
	"github.com/vovakirdan/amazer/internal/storage"
)

var (
	interactiveFlags      areaFlags
	flagInteractiveFormat string
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive [directory]",
	Short: "Browse generated areas interactively",
	Long: `Open a terminal session that shows one area at a time.

Saved areas and configs go to the given directory (default: current
directory) and saved areas are also archived in the database.

Controls:
  n/Space    - Next area with a new seed
  s          - Save the area
  c          - Toggle the config view
  :          - Command line
  ?          - More keys
  q/Ctrl+C   - Quit

Commands:
  size WxH, generator SPEC, modifiers SPEC;SPEC (or none), seed N,
  save [name], save-config [name], quit

Without -s or -c the area is sized to fit the terminal.

Examples:
  amazer interactive
  amazer interactive ./mazes -g rooms -m emmure
  amazer interactive -s 41x21 --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInteractive,
}

func init() {
	interactiveFlags.bind(interactiveCmd)
	interactiveCmd.Flags().StringVarP(&flagInteractiveFormat, "format", "f", "binary", "Saved area format: binary, base64, plain")
}

func runInteractive(cmd *cobra.Command, args []string) {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	format, err := codec.ParseFormat(flagInteractiveFormat)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := interactiveFlags.resolve()
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size for fitting the area
	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open area archive", "error", err)
		// Continue without storage
	} else {
		defer store.Close()
	}

	opts := tui.SessionOptions{
		Config:      cfg,
		Runtime:     runtime,
		Store:       store,
		Dir:         dir,
		Format:      format,
		Logger:      logger,
		FitToScreen: !interactiveFlags.explicitSize(),
	}

	if err := tui.Run(opts); err != nil {
		fail("%v", err)
	}
}
