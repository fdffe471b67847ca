package level

import (
	"path/filepath"
	"testing"

	"github.com/lixenwraith/automap/coords"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := GenerateConfig{Width: 21, Height: 15, Braiding: 0.3, Seed: 7}

	a := Generate(cfg)
	b := Generate(cfg)

	if len(a.Lines) == 0 {
		t.Fatal("Generated level has no lines")
	}
	if len(a.Lines) != len(b.Lines) {
		t.Fatalf("Same seed produced %d vs %d lines", len(a.Lines), len(b.Lines))
	}
	for i := range a.Lines {
		if a.Lines[i] != b.Lines[i] {
			t.Fatalf("Same seed diverged at line %d", i)
		}
	}
	if a.Spawn != b.Spawn {
		t.Errorf("Same seed produced spawns %+v vs %+v", a.Spawn, b.Spawn)
	}
}

func TestGenerateSpawnInsideBounds(t *testing.T) {
	l := Generate(GenerateConfig{Width: 11, Height: 11, Seed: 3})
	if !l.Bounds().Contains(l.Spawn) {
		t.Errorf("Spawn %+v outside bounds %+v", l.Spawn, l.Bounds())
	}
}

func TestGenerateOddDimensions(t *testing.T) {
	// Even and tiny dimensions are normalized, not rejected.
	l := Generate(GenerateConfig{Width: 2, Height: 40, Seed: 1})
	b := l.Bounds()
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y {
		t.Errorf("Degenerate bounds %+v", b)
	}
}

func TestBounds(t *testing.T) {
	l := &Level{Lines: []Line{
		{V1: coords.LevelPoint{X: -5, Y: 2}, V2: coords.LevelPoint{X: 10, Y: 4}},
		{V1: coords.LevelPoint{X: 0, Y: -9}, V2: coords.LevelPoint{X: 3, Y: 20}},
	}}

	want := coords.LevelBox{
		Min: coords.LevelPoint{X: -5, Y: -9},
		Max: coords.LevelPoint{X: 10, Y: 20},
	}
	if got := l.Bounds(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestBoundsEmpty(t *testing.T) {
	var l Level
	if got := l.Bounds(); got != (coords.LevelBox{}) {
		t.Errorf("Empty level should bound to zero box, got %+v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	l := Generate(GenerateConfig{Width: 9, Height: 9, Seed: 42})
	path := filepath.Join(t.TempDir(), "level.json")

	if err := Save(path, l); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.Name != l.Name || got.Spawn != l.Spawn {
		t.Errorf("Header mismatch: %q %+v vs %q %+v", got.Name, got.Spawn, l.Name, l.Spawn)
	}
	if len(got.Lines) != len(l.Lines) {
		t.Fatalf("Expected %d lines, got %d", len(l.Lines), len(got.Lines))
	}
	for i := range l.Lines {
		if got.Lines[i] != l.Lines[i] {
			t.Fatalf("Line %d mismatch: %+v vs %+v", i, got.Lines[i], l.Lines[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error loading a missing file")
	}
}
