package coords

import "testing"

func TestLevelVectorAdd(t *testing.T) {
	v := LevelVector{X: 3, Y: -4}.Add(LevelVector{X: -1, Y: 10})
	if v != (LevelVector{X: 2, Y: 6}) {
		t.Errorf("Expected {2 6}, got %+v", v)
	}
}

func TestLevelVectorIsZero(t *testing.T) {
	if !(LevelVector{}).IsZero() {
		t.Error("Zero vector should report zero")
	}
	if (LevelVector{X: 1}).IsZero() {
		t.Error("Nonzero vector should not report zero")
	}
}

func TestLevelRectCenter(t *testing.T) {
	r := LevelRect{
		Origin: LevelPoint{X: 10, Y: 20},
		Size:   LevelSize{Width: 100, Height: 60},
	}
	if c := r.Center(); c != (LevelPoint{X: 60, Y: 50}) {
		t.Errorf("Expected {60 50}, got %+v", c)
	}
}

func TestLevelBoxContains(t *testing.T) {
	b := LevelBox{Min: LevelPoint{X: 0, Y: 0}, Max: LevelPoint{X: 10, Y: 10}}

	tests := []struct {
		name string
		p    LevelPoint
		want bool
	}{
		{"Inside", LevelPoint{X: 5, Y: 5}, true},
		{"Min edge", LevelPoint{X: 0, Y: 0}, true},
		{"Max edge", LevelPoint{X: 10, Y: 10}, true},
		{"Outside X", LevelPoint{X: 11, Y: 5}, false},
		{"Outside Y", LevelPoint{X: 5, Y: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v): expected %v, got %v", tt.p, tt.want, got)
			}
		})
	}
}
