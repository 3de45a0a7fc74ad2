package registry

import (
	"github.com/vovakirdan/amazer/internal/generator"
	"github.com/vovakirdan/amazer/internal/modifier"
)

// Generators holds every area generator.
var Generators = newTable("generator",
	variant[generator.Generator, generator.Backtracker](
		"backtracker", "Recursive Backtracker",
		[]string{"RecursiveBacktracker", "depth-first"},
	),
	variant[generator.Generator, generator.Kruskal](
		"kruskal", "Randomized Kruskal", nil,
	),
	variant[generator.Generator, generator.Prim](
		"prim", "Randomized Prim", nil,
	),
	variant[generator.Generator, generator.RoomsAndMazes](
		"rooms", "Rooms and Mazes",
		[]string{"Nystrom", "rooms-and-mazes"},
		Field{Name: "min_room_size", Type: "size", Description: "smallest room, e.g. 3x3"},
		Field{Name: "max_room_size", Type: "size", Description: "largest room, e.g. 9x7"},
		Field{Name: "room_placement_attempts", Type: "int", Description: "number of rooms to try placing"},
	),
	variant[generator.Generator, generator.Random](
		"random", "Random Noise", nil,
	),
)

// Modifiers holds every area modifier.
var Modifiers = newTable("modifier",
	variant[modifier.Modifier, modifier.Emmure](
		"emmure", "Emmure", nil,
	),
	variant[modifier.Modifier, modifier.RemoveDeadends](
		"remove-deadends", "Remove Dead Ends",
		[]string{"RemoveDeadends"},
		Field{Name: "deadends_to_remove", Type: "float", Description: "fraction (<= 1) or count of dead-end cells to wall up"},
	),
	variant[modifier.Modifier, modifier.BreakPassages](
		"break-passages", "Break Passages",
		[]string{"BreakPassages"},
		Field{Name: "amount", Type: "float", Description: "maximum number of walls to break"},
		Field{Name: "minimum_shortcut_distance", Type: "float", Description: "detour length a new passage must shorten"},
	),
)
