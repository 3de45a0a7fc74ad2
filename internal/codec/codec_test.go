package codec_test

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/amazer/internal/codec"
	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/generator"
)

func smallArea() *core.Area {
	area := core.NewFilledArea(core.S(2, 2), core.Wall)
	area.Set(core.P(0, 0), core.Floor)
	area.Set(core.P(0, 1), core.Floor)
	return area
}

func oddArea() *core.Area {
	area := core.NewFilledArea(core.S(3, 3), core.Floor)
	area.Set(core.P(2, 0), core.Wall)
	area.Set(core.P(0, 1), core.Wall)
	area.Set(core.P(0, 2), core.Wall)
	return area
}

func TestToBase64(t *testing.T) {
	tests := []struct {
		name string
		area *core.Area
		want string
	}{
		{"small area", smallArea(), "AAIAAqA="},
		{"odd size", oddArea(), "AAMAA82A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codec.ToBase64(tc.area)
			if err != nil {
				t.Fatalf("ToBase64() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ToBase64() = %q, expected %q", got, tc.want)
			}

			decoded, err := codec.FromBase64(tc.want)
			if err != nil {
				t.Fatalf("FromBase64() error: %v", err)
			}
			if !decoded.Equal(tc.area) {
				t.Errorf("FromBase64(%q) =\n%s\nexpected\n%s", tc.want, core.RenderASCII(decoded), core.RenderASCII(tc.area))
			}
		})
	}
}

func TestLargeAreaHeader(t *testing.T) {
	area := core.NewFilledArea(core.S(300, 300), core.Floor)
	got, err := codec.ToBase64(area)
	if err != nil {
		t.Fatalf("ToBase64() error: %v", err)
	}
	if !strings.HasPrefix(got, "ASwBLP/") {
		t.Errorf("ToBase64() starts with %q, expected %q", got[:7], "ASwBLP/")
	}
}

func TestRandomAreaSurvivesEncoding(t *testing.T) {
	for _, size := range []core.Size{core.S(50, 50), core.S(7, 3), core.S(1, 9)} {
		area, err := generator.Random{}.Generate(size, rand.New(rand.NewSource(21)))
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		data, err := codec.ToBytes(area)
		if err != nil {
			t.Fatalf("ToBytes() error: %v", err)
		}
		if len(data) != codec.EncodedLen(size) {
			t.Errorf("len(ToBytes()) = %d, expected %d", len(data), codec.EncodedLen(size))
		}
		decoded, err := codec.FromBytes(data)
		if err != nil {
			t.Fatalf("FromBytes() error: %v", err)
		}
		if !decoded.Equal(area) {
			t.Errorf("decoded %v area differs from the original", size)
		}
	}
}

func TestDecodeCanonicalisesTiles(t *testing.T) {
	area := core.NewFilledArea(core.S(2, 1), core.Passable("Grass"))
	data, err := codec.ToBytes(area)
	if err != nil {
		t.Fatalf("ToBytes() error: %v", err)
	}
	decoded, err := codec.FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes() error: %v", err)
	}
	if decoded.Get(core.P(0, 0)) != core.Floor {
		t.Errorf("decoded tile = %v, expected Floor", decoded.Get(core.P(0, 0)))
	}
	if !decoded.SamePassability(area) {
		t.Error("passability changed")
	}
}

func TestFromBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", []byte{0, 2, 0}},
		{"missing cells", []byte{0, 4, 0, 4, 0xff}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := codec.FromBytes(tc.data); !errors.Is(err, codec.ErrTruncated) {
				t.Errorf("FromBytes() error = %v, expected ErrTruncated", err)
			}
		})
	}
}

func TestFromBytesIgnoresTrailingBytes(t *testing.T) {
	data := []byte{0, 2, 0, 2, 0xa0, 0xff, 0xff}
	area, err := codec.FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes() error: %v", err)
	}
	if !area.Equal(smallArea()) {
		t.Errorf("FromBytes() =\n%s", core.RenderASCII(area))
	}
}

func TestToBytesTooLarge(t *testing.T) {
	area := core.NewArea(core.S(65536, 1))
	if _, err := codec.ToBytes(area); !errors.Is(err, codec.ErrTooLarge) {
		t.Errorf("ToBytes() error = %v, expected ErrTooLarge", err)
	}
}

func TestFromBase64Invalid(t *testing.T) {
	if _, err := codec.FromBase64("not base64!"); err == nil {
		t.Error("FromBase64() expected error for invalid input")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    codec.Format
		wantErr bool
	}{
		{"", codec.Binary, false},
		{"binary", codec.Binary, false},
		{"BASE64", codec.Base64, false},
		{"plain", codec.Plain, false},
		{"png", "", true},
	}

	for _, tc := range tests {
		got, err := codec.ParseFormat(tc.input)
		if tc.wantErr {
			if !errors.Is(err, codec.ErrUnsupportedFormat) {
				t.Errorf("ParseFormat(%q) error = %v, expected ErrUnsupportedFormat", tc.input, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, %v; expected %q", tc.input, got, err, tc.want)
		}
	}
}

func TestWriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	area := oddArea()

	for _, format := range []codec.Format{codec.Binary, codec.Base64} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(dir, "nested", "maze."+string(format))
			if err := codec.WriteFile(path, area, format); err != nil {
				t.Fatalf("WriteFile() error: %v", err)
			}
			loaded, err := codec.ReadFile(path, format)
			if err != nil {
				t.Fatalf("ReadFile() error: %v", err)
			}
			if !loaded.Equal(area) {
				t.Error("loaded area differs from the written one")
			}
		})
	}
}

func TestPlainFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := codec.WriteFile(path, oddArea(), codec.Plain); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if want := "  #\n#  \n#  \n"; string(data) != want {
		t.Errorf("plain output = %q, expected %q", data, want)
	}

	if _, err := codec.ReadFile(path, codec.Plain); !errors.Is(err, codec.ErrUnsupportedFormat) {
		t.Errorf("ReadFile(plain) error = %v, expected ErrUnsupportedFormat", err)
	}
}
