package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived areas",
	Long: `Display the most recently archived areas and per-generator totals.

Areas are archived by 'amazer generate --store' and by saving in an
interactive or SSH session.

Examples:
  amazer history
  amazer history --limit 5`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an archived area",
	Long: `Print an archived area together with the config that produced it.

Examples:
  amazer show 12`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an archived area",
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of areas to show")
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening area archive: %v", err)
	}
	return store
}

func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fail("invalid area id %q", arg)
	}
	return id
}

func runHistory(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	records, err := store.RecentAreas(flagHistoryLimit)
	if err != nil {
		fail("retrieving areas: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("No areas archived yet.")
		fmt.Println()
		fmt.Println("Run 'amazer generate --store' to archive the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-24s  %-12s  %-9s  %-20s  %-7s  %s\n", "ID", "Name", "Generator", "Size", "Seed", "Floors", "Date")
	fmt.Printf("  %-5s  %-24s  %-12s  %-9s  %-20s  %-7s  %s\n", "--", "----", "---------", "----", "----", "------", "----")

	for _, r := range records {
		size := core.S(r.Width, r.Height)
		fmt.Printf("  %-5d  %-24s  %-12s  %-9s  %-20d  %-7d  %s\n",
			r.ID, truncate(r.Label(), 24), r.Generator, size, r.Seed, r.FloorCount,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GeneratorStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	fmt.Println("Totals:")
	for _, name := range names {
		s := stats[name]
		fmt.Printf("  %-12s  %4d areas  %5.1f%% floor  last %s\n",
			name, s.AreasCount, s.AvgFloorRatio*100, s.LastCreated.Format("2006-01-02 15:04"))
	}
}

func runShow(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	store := openStore()
	defer store.Close()

	rec, err := store.AreaByID(id)
	if err != nil {
		fail("retrieving area: %v", err)
	}
	if rec == nil {
		fail("no archived area #%d", id)
	}

	area, err := rec.Area()
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("#%d %s (%s)\n", rec.ID, rec.Label(), rec.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Print(rec.Config)
	fmt.Println()
	fmt.Println(core.RenderASCII(area))
}

func runDelete(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	store := openStore()
	defer store.Close()

	deleted, err := store.DeleteArea(id)
	if err != nil {
		fail("deleting area: %v", err)
	}
	if !deleted {
		fail("no archived area #%d", id)
	}
	fmt.Printf("Deleted area #%d\n", id)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}
