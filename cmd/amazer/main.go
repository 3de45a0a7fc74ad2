// amazer generates procedural maze areas in the terminal.
//
// Usage:
//
//	amazer generate [file]      - Generate an area and print or save it
//	amazer display <file>       - Print a saved area
//	amazer interactive [dir]    - Browse areas interactively
//	amazer serve                - Serve the interactive browser over SSH
//	amazer list                 - List generators and modifiers
//	amazer history              - List archived areas
//	amazer show <id>            - Print an archived area
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible areas
//	--db <path>          - Set archive path (default: ~/.amazer/amazer.db)
//	--log-level <level>  - Set log level (default: warn)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazer/internal/telemetry"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger            = log.NewWithOptions(os.Stderr, log.Options{Prefix: "amazer"})
	shutdownTelemetry = func(context.Context) error { return nil }
)

func main() {
	// Load .env file for local development.
	// Not fatal: env vars might be set directly.
	envErr := godotenv.Load()

	cobra.OnInitialize(func() {
		setupLogger()
		if envErr != nil {
			logger.Debug(".env file not loaded", "error", envErr)
		}
		setupTelemetry()
	})

	if err := rootCmd.Execute(); err != nil {
		exit(1)
	}
	exit(0)
}

var rootCmd = &cobra.Command{
	Use:   "amazer",
	Short: "amazer - procedural maze areas for your terminal",
	Long: `amazer generates grid areas with maze algorithms and reshapes them
with modifiers.

Available commands:
  generate     - Generate an area and print or save it
  display      - Print a saved area
  interactive  - Browse areas interactively
  serve        - Start SSH server for remote browsing
  list         - Show generators and modifiers
  history      - List archived areas
  show         - Print an archived area
  delete       - Remove an archived area

Examples:
  amazer generate -s 41x31 -g rooms -m remove-deadends -m emmure
  amazer generate maze.b64 -f base64 --silent
  amazer display maze.b64 -f base64
  amazer interactive ./mazes
  amazer serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.amazer/amazer.db", "Path to area archive database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
}

func setupLogger() {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", flagLogLevel)
		os.Exit(1)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "amazer",
		Level:           level,
	})
}

func setupTelemetry() {
	shutdown, err := telemetry.Setup(context.Background())
	if err != nil {
		// Continue without telemetry
		logger.Warn("telemetry setup failed", "error", err)
		return
	}
	shutdownTelemetry = shutdown
}

// exit flushes telemetry and terminates the process.
func exit(code int) {
	if err := shutdownTelemetry(context.Background()); err != nil {
		logger.Warn("telemetry shutdown failed", "error", err)
	}
	os.Exit(code)
}

// fail reports an error to stderr and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	exit(1)
}
