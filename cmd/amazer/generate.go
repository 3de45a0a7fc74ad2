package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazer/internal/amazer"
	"github.com/vovakirdan/amazer/internal/codec"
	"github.com/vovakirdan/amazer/internal/config"
	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/storage"
)

var (
	generateFlags  areaFlags
	flagFormat     string
	flagSilent     bool
	flagSaveConfig string
	flagStore      bool
	flagRecordName string
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate an area",
	Long: `Generate an area with one generator followed by the given modifiers.

The area is printed to stdout unless --silent is set. When a file is given
the area is also written to it in the chosen format.

Config lookup (when -c is not given):
  ~/.amazer/configs/amazer.yaml, then ./configs/amazer.yaml, then the
  built-in default. Flags override the loaded values.

Examples:
  amazer generate
  amazer generate -s 61x41 -g kruskal
  amazer generate -g rooms:room_placement_attempts=80 -m remove-deadends -m emmure
  amazer generate -m "break-passages:amount=10;emmure" --seed 42
  amazer generate maze.b64 -f base64 --silent --save-config maze.yaml
  amazer generate --store --name "first floor"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerate,
}

func init() {
	generateFlags.bind(generateCmd)
	generateCmd.Flags().StringVarP(&flagFormat, "format", "f", "binary", "Output file format: binary, base64, plain")
	generateCmd.Flags().BoolVar(&flagSilent, "silent", false, "Do not print the area")
	generateCmd.Flags().StringVar(&flagSaveConfig, "save-config", "", "Write the resolved config (with seed) to this path")
	generateCmd.Flags().BoolVar(&flagStore, "store", false, "Archive the area in the database")
	generateCmd.Flags().StringVar(&flagRecordName, "name", "", "Name of the archived area")
}

func runGenerate(cmd *cobra.Command, args []string) {
	format, err := codec.ParseFormat(flagFormat)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := generateFlags.resolve()
	if err != nil {
		fail("%v", err)
	}

	result, err := amazer.New(cfg, amazer.WithLogger(logger)).Generate(context.Background())
	if err != nil {
		fail("%v", err)
	}
	logger.Info("area generated",
		"generator", result.Config.Generator,
		"size", result.Area.Size(),
		"seed", result.Config.Seed,
		"elapsed", result.Elapsed,
	)

	if !flagSilent {
		fmt.Println(core.RenderASCII(result.Area))
	}

	if len(args) == 1 {
		if err := codec.WriteFile(args[0], result.Area, format); err != nil {
			fail("%v", err)
		}
		logger.Info("area saved", "path", args[0], "format", format)
	}

	if flagSaveConfig != "" {
		if err := config.Save(flagSaveConfig, result.Config); err != nil {
			fail("%v", err)
		}
		logger.Info("config saved", "path", flagSaveConfig)
	}

	if flagStore {
		id, err := archive(result)
		if err != nil {
			fail("%v", err)
		}
		fmt.Fprintf(os.Stderr, "Archived as #%d\n", id)
	}
}

func archive(result *amazer.Result) (int64, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	rec, err := storage.NewAreaRecord(flagRecordName, result.Config, result.Area)
	if err != nil {
		return 0, err
	}
	return store.SaveArea(rec)
}
