package level

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/lixenwraith/automap/coords"
)

// fileLevel is the on-disk JSON layout. Coordinates are raw 16.16 level
// units.
type fileLevel struct {
	Name  string     `json:"name"`
	Spawn [2]int64   `json:"spawn"`
	Lines [][4]int64 `json:"lines"` // x1, y1, x2, y2
}

// Load reads a level JSON file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	var f fileLevel
	if err := sonic.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("level: decode %s: %w", path, err)
	}

	l := &Level{
		Name:  f.Name,
		Spawn: coords.LevelPoint{X: f.Spawn[0], Y: f.Spawn[1]},
		Lines: make([]Line, len(f.Lines)),
	}
	for i, ln := range f.Lines {
		l.Lines[i] = Line{
			V1: coords.LevelPoint{X: ln[0], Y: ln[1]},
			V2: coords.LevelPoint{X: ln[2], Y: ln[3]},
		}
	}
	return l, nil
}

// Save writes a level JSON file.
func Save(path string, l *Level) error {
	f := fileLevel{
		Name:  l.Name,
		Spawn: [2]int64{l.Spawn.X, l.Spawn.Y},
		Lines: make([][4]int64, len(l.Lines)),
	}
	for i, ln := range l.Lines {
		f.Lines[i] = [4]int64{ln.V1.X, ln.V1.Y, ln.V2.X, ln.V2.Y}
	}
	data, err := sonic.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("level: encode %s: %w", l.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("level: write %s: %w", path, err)
	}
	return nil
}
