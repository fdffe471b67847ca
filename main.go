// automap demo: wander a generated level and drive the minimap with the
// keyboard and mouse. See cmd/ for the offline and SSH frontends.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/engine"
)

func main() {
	cfgPath := flag.String("config", "automap.json", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := zerolog.Nop()
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = newLogger(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	game, err := engine.New(screen, cfg, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := game.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.TraceLevel)
}
