package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazer/internal/codec"
	"github.com/vovakirdan/amazer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generators and modifiers",
	Long:  `Shows every registered generator and modifier with its aliases and settings.`,
	Run:   runList,
}

// listRow is one registered entry, independent of its variant type.
type listRow struct {
	id      string
	title   string
	aliases []string
	fields  []registry.Field
}

func rowsOf[T any](t *registry.Table[T]) []listRow {
	entries := t.List()
	rows := make([]listRow, len(entries))
	for i, e := range entries {
		rows[i] = listRow{id: e.ID, title: e.Title, aliases: e.Aliases, fields: e.Fields}
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) {
	printRows("Generators", rowsOf(registry.Generators))
	fmt.Println()
	printRows("Modifiers", rowsOf(registry.Modifiers))
	fmt.Println()

	formats := make([]string, 0, len(codec.Formats()))
	for _, f := range codec.Formats() {
		formats = append(formats, string(f))
	}
	fmt.Printf("Output formats: %s\n", strings.Join(formats, ", "))
	fmt.Println()
	fmt.Println("Settings are given as name:key=value,key=value, e.g.")
	fmt.Println("  amazer generate -g rooms:room_placement_attempts=40 -m remove-deadends:deadends_to_remove=0.5")
}

func printRows(heading string, rows []listRow) {
	fmt.Printf("%s:\n", heading)
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, r := range rows {
		if len(r.id) > maxIDLen {
			maxIDLen = len(r.id)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, r := range rows {
		title := r.title
		if len(r.aliases) > 0 {
			title += " (" + strings.Join(r.aliases, ", ") + ")"
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, r.id, title)
		for _, f := range r.fields {
			fmt.Printf("  %-*s    %s (%s): %s\n", maxIDLen, "", f.Name, f.Type, f.Description)
		}
	}
}
