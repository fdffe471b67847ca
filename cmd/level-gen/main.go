// level-gen writes a generated demo level to a JSON file.
//
//	go run ./cmd/level-gen -out level.json -width 41 -height 31 -seed 7
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/automap/level"
)

func main() {
	out := flag.String("out", "level.json", "output file")
	width := flag.Int("width", 41, "maze width in cells")
	height := flag.Int("height", 31, "maze height in cells")
	braiding := flag.Float64("braiding", 0.3, "dead-end removal 0..1")
	seed := flag.Int64("seed", 0, "layout seed (0 = random)")
	flag.Parse()

	l := level.Generate(level.GenerateConfig{
		Width:    *width,
		Height:   *height,
		Braiding: *braiding,
		Seed:     *seed,
	})
	l.Name = *out

	if err := level.Save(*out, l); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d wall segments\n", *out, len(l.Lines))
}
