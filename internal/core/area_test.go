package core

import "testing"

func TestNewAreaIsEmpty(t *testing.T) {
	a := NewArea(S(4, 3))
	if a.Width() != 4 || a.Height() != 3 {
		t.Fatalf("size = %v, expected 4x3", a.Size())
	}
	if n := a.Count(func(t Tile) bool { return t == Empty }); n != 12 {
		t.Errorf("Empty count = %d, expected 12", n)
	}
}

func TestAreaGetSet(t *testing.T) {
	a := NewFilledArea(S(3, 3), Wall)
	a.Set(P(2, 1), Floor)

	if a.Get(P(2, 1)) != Floor {
		t.Errorf("Get(2,1) = %v, expected Floor", a.Get(P(2, 1)))
	}
	if a.Get(P(1, 2)) != Wall {
		t.Errorf("Get(1,2) = %v, expected Wall (x and y must not be swapped)", a.Get(P(1, 2)))
	}
}

func TestAreaGetOutOfBoundsPanics(t *testing.T) {
	a := NewArea(S(2, 2))
	defer func() {
		if recover() == nil {
			t.Error("Get() outside the area should panic")
		}
	}()
	a.Get(P(2, 0))
}

func TestAreaNeighbours(t *testing.T) {
	a := NewFilledArea(S(3, 3), Floor)
	a.Set(P(1, 0), Wall)

	tests := []struct {
		name         string
		p            Point
		dirs         []Direction
		wantCount    int
		wantPassable int
	}{
		{"corner all directions", P(0, 0), nil, 3, 2},
		{"centre all directions", P(1, 1), nil, 8, 7},
		{"centre straights", P(1, 1), Straights(), 4, 3},
		{"edge straights", P(2, 1), Straights(), 3, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := a.Neighbours(tc.p, tc.dirs...)
			if len(n) != tc.wantCount {
				t.Errorf("len(Neighbours) = %d, expected %d", len(n), tc.wantCount)
			}
			if n.Passable() != tc.wantPassable {
				t.Errorf("Passable() = %d, expected %d", n.Passable(), tc.wantPassable)
			}
		})
	}
}

func TestAreaPointsOrder(t *testing.T) {
	a := NewArea(S(2, 3))
	want := []Point{P(0, 0), P(0, 1), P(0, 2), P(1, 0), P(1, 1), P(1, 2)}
	got := a.Points()
	if len(got) != len(want) {
		t.Fatalf("Points() returned %d points, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Points()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestAreaFillOnlyReplacesEmpty(t *testing.T) {
	a := NewArea(S(3, 1))
	a.Set(P(1, 0), Floor)
	a.Fill(Wall)

	if a.Get(P(0, 0)) != Wall || a.Get(P(2, 0)) != Wall {
		t.Error("Fill() should replace Empty cells")
	}
	if a.Get(P(1, 0)) != Floor {
		t.Error("Fill() should leave written cells alone")
	}
}

func TestAreaCloneIsIndependent(t *testing.T) {
	a := NewFilledArea(S(2, 2), Wall)
	b := a.Clone()
	b.Set(P(0, 0), Floor)

	if a.Get(P(0, 0)) != Wall {
		t.Error("mutating the clone changed the original")
	}
	if a.Equal(b) {
		t.Error("Equal() should report the difference")
	}
}

func TestSamePassabilityIgnoresNames(t *testing.T) {
	a := NewFilledArea(S(2, 2), Floor)
	b := NewFilledArea(S(2, 2), Passable("Grass"))
	if !a.SamePassability(b) {
		t.Error("SamePassability() should ignore tile names")
	}
	if a.Equal(b) {
		t.Error("Equal() should compare tile names")
	}
}

func TestRenderAndParseASCII(t *testing.T) {
	rows := []string{
		"###",
		"# #",
		"#?#",
	}
	a := MustParseASCII(rows...)
	if a.Get(P(1, 1)) != Floor {
		t.Errorf("Get(1,1) = %v, expected Floor", a.Get(P(1, 1)))
	}
	if a.Get(P(1, 2)) != Empty {
		t.Errorf("Get(1,2) = %v, expected Empty", a.Get(P(1, 2)))
	}

	want := "###\n# #\n#?#"
	if got := RenderASCII(a); got != want {
		t.Errorf("RenderASCII() = %q, expected %q", got, want)
	}

	if _, err := ParseASCII("##", "#"); err == nil {
		t.Error("ParseASCII() with ragged rows expected error")
	}
	if _, err := ParseASCII("#x"); err == nil {
		t.Error("ParseASCII() with unknown glyph expected error")
	}
}

func TestOpposingPassage(t *testing.T) {
	straight := MustParseASCII(
		"...",
		"###",
		"...",
	)
	first, second, ok := straight.OpposingPassage(P(1, 1))
	if !ok {
		t.Fatal("OpposingPassage() should detect the vertical pair")
	}
	if first != P(1, 0) || second != P(1, 2) {
		t.Errorf("OpposingPassage() = %v, %v", first, second)
	}

	bent := MustParseASCII(
		"#.#",
		"#.#",
		"..#",
	)
	if _, _, ok := bent.OpposingPassage(P(0, 1)); ok {
		t.Error("OpposingPassage() should reject cells whose passable neighbours form a corner")
	}
	if _, _, ok := bent.OpposingPassage(P(2, 2)); ok {
		t.Error("OpposingPassage() should reject cells with a single passable neighbour")
	}
}
