// mapshot renders one automap viewport of a level to a PNG. Lines are
// rasterized at a supersampled resolution and scaled down for cheap
// antialiasing.
//
//	go run ./cmd/mapshot -level level.json -out shot.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/automap/automap"
	"github.com/lixenwraith/automap/coords"
	"github.com/lixenwraith/automap/fixed"
	"github.com/lixenwraith/automap/level"
)

const supersample = 4

var (
	colBackground = color.RGBA{A: 255}
	colWall       = color.RGBA{R: 252, G: 80, B: 40, A: 255}
	colSpawn      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func main() {
	levelPath := flag.String("level", "", "level JSON (empty = generated)")
	out := flag.String("out", "shot.png", "output PNG")
	width := flag.Int("width", 800, "image width in pixels")
	height := flag.Int("height", 600, "image height in pixels")
	scaleRaw := flag.Int("scale", 4<<16, "frame-to-level scale, raw 16.16")
	seed := flag.Int64("seed", 1, "seed for generated levels")
	flag.Parse()

	if err := run(*levelPath, *out, *width, *height, int32(*scaleRaw), *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(levelPath, out string, width, height int, scaleRaw int32, seed int64) error {
	var lvl *level.Level
	if levelPath != "" {
		loaded, err := level.Load(levelPath)
		if err != nil {
			return err
		}
		lvl = loaded
	} else {
		lvl = level.Generate(level.GenerateConfig{Width: 41, Height: 31, Braiding: 0.3, Seed: seed})
	}

	scale := fixed.FromRaw[coords.ScreenUnit](scaleRaw)
	player := coords.ScreenPoint{X: int32(lvl.Spawn.X), Y: int32(lvl.Spawn.Y)}
	window := coords.ScreenSize{
		Width:  int32(width * supersample),
		Height: int32(height * supersample),
	}

	// Drive the real automap so the shot matches the interactive view.
	am := automap.New(player, window, scale)
	rect := am.Rect()
	invScale := fixed.InvertScale(scale)

	big := image.NewRGBA(image.Rect(0, 0, width*supersample, height*supersample))
	xdraw.Draw(big, big.Bounds(), image.NewUniform(colBackground), image.Point{}, xdraw.Src)

	for _, ln := range lvl.Lines {
		drawLevelLine(big, rect, invScale, ln.V1, ln.V2, colWall)
	}
	drawMarker(big, rect, invScale, lvl.Spawn)

	final := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(final, final.Bounds(), big, big.Bounds(), xdraw.Src, nil)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("mapshot: create %s: %w", out, err)
	}
	defer f.Close()
	if err := png.Encode(f, final); err != nil {
		return fmt.Errorf("mapshot: encode: %w", err)
	}
	return nil
}

// drawLevelLine projects a level segment into the supersampled image.
func drawLevelLine(img *image.RGBA, rect coords.LevelRect, invScale fixed.LevelFixed, a, b coords.LevelPoint, c color.RGBA) {
	x1, err := fixed.LevelToScreen(invScale, a.X-rect.Origin.X)
	if err != nil {
		return
	}
	y1, err := fixed.LevelToScreen(invScale, a.Y-rect.Origin.Y)
	if err != nil {
		return
	}
	x2, err := fixed.LevelToScreen(invScale, b.X-rect.Origin.X)
	if err != nil {
		return
	}
	y2, err := fixed.LevelToScreen(invScale, b.Y-rect.Origin.Y)
	if err != nil {
		return
	}
	drawLine(img, int(x1), int(y1), int(x2), int(y2), c)
}

// drawLine is integer Bresenham clipped to the image bounds.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	b := img.Bounds()
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		if image.Pt(x1, y1).In(b) {
			img.SetRGBA(x1, y1, c)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// drawMarker paints a small cross at the spawn.
func drawMarker(img *image.RGBA, rect coords.LevelRect, invScale fixed.LevelFixed, p coords.LevelPoint) {
	const arm = 16 << 16
	drawLevelLine(img, rect, invScale,
		coords.LevelPoint{X: p.X - arm, Y: p.Y},
		coords.LevelPoint{X: p.X + arm, Y: p.Y}, colSpawn)
	drawLevelLine(img, rect, invScale,
		coords.LevelPoint{X: p.X, Y: p.Y - arm},
		coords.LevelPoint{X: p.X, Y: p.Y + arm}, colSpawn)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
