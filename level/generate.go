package level

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/automap/coords"
)

// CellUnits is the level-space width of one maze cell: 64 map units in
// 16.16 fixed.
const CellUnits = 64 << 16

// GenerateConfig controls procedural level generation.
type GenerateConfig struct {
	// Width and Height are maze dimensions in cells; rounded down to odd.
	Width, Height int

	// Braiding: 0.0 (perfect maze) to 1.0 (no dead ends). Higher values
	// knock extra openings into walls.
	Braiding float64

	// Seed for reproducible layouts (0 = time-based).
	Seed int64
}

// Generate carves a maze with a recursive backtracker and converts the
// wall faces bordering passages into level line segments. The spawn is
// the carve start cell.
func Generate(cfg GenerateConfig) *Level {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	grid := make([][]bool, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
		for x := range grid[y] {
			grid[y][x] = true // wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := cell{x: 1, y: 1}
	backtrack(grid, start, rng)

	if cfg.Braiding > 0 {
		braid(grid, cfg.Braiding, rng)
	}

	return &Level{
		Name:  "generated",
		Spawn: cellCenter(start),
		Lines: wallFaces(grid),
	}
}

type cell struct {
	x, y int
}

// backtrack carves a uniform spanning tree of passages on the odd lattice.
func backtrack(grid [][]bool, start cell, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	stack := []cell{start}
	grid[start.y][start.x] = false

	dirs := [4]cell{{x: 0, y: -2}, {x: 0, y: 2}, {x: -2, y: 0}, {x: 2, y: 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		order := rng.Perm(4)
		carved := false
		for _, i := range order {
			next := cell{x: cur.x + dirs[i].x, y: cur.y + dirs[i].y}
			if next.x <= 0 || next.x >= cols-1 || next.y <= 0 || next.y >= rows-1 {
				continue
			}
			if !grid[next.y][next.x] {
				continue
			}
			// Knock out the wall between cur and next.
			grid[cur.y+dirs[i].y/2][cur.x+dirs[i].x/2] = false
			grid[next.y][next.x] = false
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// braid removes dead ends with the given probability by opening one extra
// neighboring wall, adding cycles to the layout.
func braid(grid [][]bool, braiding float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	dirs := [4]cell{{x: 0, y: -1}, {x: 0, y: 1}, {x: -1, y: 0}, {x: 1, y: 0}}

	for y := 1; y < rows-1; y++ {
		for x := 1; x < cols-1; x++ {
			if grid[y][x] {
				continue
			}
			open := 0
			var walls []cell
			for _, d := range dirs {
				nx, ny := x+d.x, y+d.y
				if !grid[ny][nx] {
					open++
				} else if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 {
					walls = append(walls, cell{x: nx, y: ny})
				}
			}
			if open != 1 || len(walls) == 0 {
				continue
			}
			if rng.Float64() < braiding {
				w := walls[rng.Intn(len(walls))]
				grid[w.y][w.x] = false
			}
		}
	}
}

// wallFaces emits one segment per wall face that borders a passage or the
// grid exterior, so the minimap draws outlines rather than filled blocks.
func wallFaces(grid [][]bool) []Line {
	rows, cols := len(grid), len(grid[0])
	var lines []Line

	exposed := func(x, y int) bool {
		if x < 0 || x >= cols || y < 0 || y >= rows {
			return true
		}
		return !grid[y][x]
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !grid[y][x] {
				continue
			}
			x0 := int64(x) * CellUnits
			y0 := int64(y) * CellUnits
			x1 := x0 + CellUnits
			y1 := y0 + CellUnits

			if exposed(x, y-1) {
				lines = append(lines, Line{
					V1: coords.LevelPoint{X: x0, Y: y0},
					V2: coords.LevelPoint{X: x1, Y: y0},
				})
			}
			if exposed(x, y+1) {
				lines = append(lines, Line{
					V1: coords.LevelPoint{X: x0, Y: y1},
					V2: coords.LevelPoint{X: x1, Y: y1},
				})
			}
			if exposed(x-1, y) {
				lines = append(lines, Line{
					V1: coords.LevelPoint{X: x0, Y: y0},
					V2: coords.LevelPoint{X: x0, Y: y1},
				})
			}
			if exposed(x+1, y) {
				lines = append(lines, Line{
					V1: coords.LevelPoint{X: x1, Y: y0},
					V2: coords.LevelPoint{X: x1, Y: y1},
				})
			}
		}
	}
	return lines
}

func cellCenter(c cell) coords.LevelPoint {
	return coords.LevelPoint{
		X: int64(c.x)*CellUnits + CellUnits/2,
		Y: int64(c.y)*CellUnits + CellUnits/2,
	}
}

func ensureOdd(v int) int {
	if v < 5 {
		v = 5
	}
	if v%2 == 0 {
		v--
	}
	return v
}
