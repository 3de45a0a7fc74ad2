package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazer/internal/codec"
	"github.com/vovakirdan/amazer/internal/core"
)

var flagDisplayFormat string

var displayCmd = &cobra.Command{
	Use:   "display <file>",
	Short: "Print a saved area",
	Long: `Read an area written by 'amazer generate' and print it.

Without --format the format is taken from the extension: .b64 is base64,
anything else binary.

Examples:
  amazer display maze.maze
  amazer display maze.txt -f base64`,
	Args: cobra.ExactArgs(1),
	Run:  runDisplay,
}

func init() {
	displayCmd.Flags().StringVarP(&flagDisplayFormat, "format", "f", "", "Input file format: binary, base64")
}

func runDisplay(cmd *cobra.Command, args []string) {
	path := args[0]

	format := codec.Binary
	if flagDisplayFormat != "" {
		var err error
		format, err = codec.ParseFormat(flagDisplayFormat)
		if err != nil {
			fail("%v", err)
		}
	} else if strings.EqualFold(filepath.Ext(path), codec.Base64.Extension()) {
		format = codec.Base64
	}

	area, err := codec.ReadFile(path, format)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println(core.RenderASCII(area))
	fmt.Printf("%s, %d floor cells\n", area.Size(), area.Count(core.IsPassable))
}
