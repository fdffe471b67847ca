// Package engine runs the host tick loop: it polls input, drives the
// automap once per tick in the fixed order (pan update, window move,
// follow), and hands the viewport to the renderer.
package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/automap/audio"
	"github.com/lixenwraith/automap/automap"
	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/coords"
	"github.com/lixenwraith/automap/fixed"
	"github.com/lixenwraith/automap/input"
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/render"
	"github.com/lixenwraith/automap/tables"
)

// Scale bounds in raw 16.16: between 1 and 64 level units per cell.
const (
	minScaleRaw = 1 << 16
	maxScaleRaw = 64 << 16
)

// playerStep is the per-tick player move distance: 8 level units.
const playerStep = 8 << 16

// Game owns the session state around the automap.
type Game struct {
	screen tcell.Screen
	cfg    config.Config
	log    zerolog.Logger

	lvl    *level.Level
	bounds coords.LevelBox
	am     *automap.Automap
	mm     *render.Minimap
	dec    input.Decoder
	sound  audio.Player

	player      coords.ScreenPoint // raw level fixed
	playerAngle tables.Angle

	scale   fixed.ScreenFixed // frame-to-level
	rotate  bool
	mapOpen bool

	// Pan input accumulated since the last tick. Keyboard pans are summed;
	// the automap consumes the mouse pan one-shot.
	panKeyboard coords.LevelVector
	panMouse    coords.LevelVector

	atEdge bool
	quit   bool
}

// New builds a game over an initialized screen.
func New(screen tcell.Screen, cfg config.Config, log zerolog.Logger) (*Game, error) {
	var lvl *level.Level
	if cfg.Level.Path != "" {
		loaded, err := level.Load(cfg.Level.Path)
		if err != nil {
			return nil, err
		}
		lvl = loaded
	} else {
		lvl = level.Generate(level.GenerateConfig{
			Width:    cfg.Level.Width,
			Height:   cfg.Level.Height,
			Braiding: cfg.Level.Braiding,
			Seed:     cfg.Level.Seed,
		})
	}

	g := &Game{
		screen:      screen,
		cfg:         cfg,
		log:         log.With().Str("module", "engine").Logger(),
		lvl:         lvl,
		bounds:      lvl.Bounds(),
		mm:          render.NewMinimap(screen),
		player:      coords.ScreenPoint{X: int32(lvl.Spawn.X), Y: int32(lvl.Spawn.Y)},
		playerAngle: tables.Ang90,
		scale:       fixed.FromRaw[coords.ScreenUnit](cfg.ScaleRaw),
		rotate:      cfg.Rotate,
		mapOpen:     true,
	}

	g.am = automap.New(g.player, g.window(), g.scale)
	g.am.SetLogger(log.With().Str("module", "automap").Logger())

	if cfg.Sound {
		if err := g.sound.Init(); err != nil {
			g.log.Warn().Err(err).Msg("speaker init failed, running silent")
		}
	}
	return g, nil
}

// window returns the viewport size in cells, reserving the HUD row.
func (g *Game) window() coords.ScreenSize {
	w, h := g.screen.Size()
	if h > 1 {
		h--
	}
	return coords.ScreenSize{Width: int32(w), Height: int32(h)}
}

// Run blocks until quit. Events are polled on their own goroutine; the
// automap is touched only from the tick loop.
func (g *Game) Run() error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Duration(g.cfg.TickMs) * time.Millisecond)
	defer ticker.Stop()

	for !g.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.handle(g.dec.Decode(ev))
		case <-ticker.C:
			if err := g.tick(); err != nil {
				return err
			}
			g.draw()
		}
	}
	return nil
}

// handle folds one intent into the pending tick state.
func (g *Game) handle(it input.Intent) {
	switch it.Type {
	case input.IntentQuit:
		g.quit = true
	case input.IntentResize:
		g.screen.Sync()
		g.am.ActivateNewScale(g.window(), g.scale)
	case input.IntentPan:
		step := int32(it.DX * g.cfg.PanCells)
		g.panKeyboard.X += fixed.ScreenToLevel(g.scale, step)
		step = int32(it.DY * g.cfg.PanCells)
		g.panKeyboard.Y += fixed.ScreenToLevel(g.scale, step)
	case input.IntentMousePan:
		g.panMouse.X += fixed.ScreenToLevel(g.scale, int32(it.DX))
		g.panMouse.Y += fixed.ScreenToLevel(g.scale, int32(it.DY))
	case input.IntentMove:
		g.movePlayer(it.DX, it.DY)
	case input.IntentFollowToggle:
		g.am.SetFollow(!g.am.FollowsPlayer())
	case input.IntentRotateToggle:
		g.rotate = !g.rotate
	case input.IntentZoomIn:
		g.rescale(g.scale.Raw() / 2)
	case input.IntentZoomOut:
		g.rescale(g.scale.Raw() * 2)
	case input.IntentMapToggle:
		g.toggleMap()
	}
}

// movePlayer shifts the player inside the level bounds and turns the
// arrow toward the move direction.
func (g *Game) movePlayer(dx, dy int) {
	x := int64(g.player.X) + int64(dx)*playerStep
	y := int64(g.player.Y) + int64(dy)*playerStep
	x = clamp64(x, g.bounds.Min.X, g.bounds.Max.X)
	y = clamp64(y, g.bounds.Min.Y, g.bounds.Max.Y)
	g.player = coords.ScreenPoint{X: int32(x), Y: int32(y)}

	// Screen Y grows downward; angles grow counterclockwise.
	switch {
	case dx > 0:
		g.playerAngle = 0
	case dx < 0:
		g.playerAngle = tables.Ang180
	case dy > 0:
		g.playerAngle = tables.Ang90
	case dy < 0:
		g.playerAngle = tables.Ang270
	}
}

// rescale applies a bounded zoom step around the viewport center.
func (g *Game) rescale(raw int32) {
	if raw < minScaleRaw || raw > maxScaleRaw {
		return
	}
	g.scale = fixed.FromRaw[coords.ScreenUnit](raw)
	g.am.ActivateNewScale(g.window(), g.scale)
	g.sound.Play(audio.SoundZoom)
	g.log.Debug().Int32("raw", raw).Msg("rescaled")
}

// toggleMap saves the viewport when closing and restores it (or recenters
// in follow mode) when reopening.
func (g *Game) toggleMap() {
	if g.mapOpen {
		g.am.SaveRect()
		g.sound.Play(audio.SoundMapClose)
	} else {
		g.am.RestoreRect(g.player)
		g.sound.Play(audio.SoundMapOpen)
	}
	g.mapOpen = !g.mapOpen
}

// tick runs the per-tick automap update in the contract order.
func (g *Game) tick() error {
	var keyboard, mouse *coords.LevelVector
	if !g.panKeyboard.IsZero() {
		k := g.panKeyboard
		keyboard = &k
	}
	if !g.panMouse.IsZero() {
		m := g.panMouse
		mouse = &m
	}
	g.am.UpdatePanning(keyboard, mouse)

	if err := g.am.ChangeWindowLocation(g.rotate, g.bounds, g.playerAngle); err != nil {
		return err
	}
	g.panKeyboard = coords.LevelVector{}
	g.panMouse = coords.LevelVector{}

	if g.am.FollowsPlayer() {
		g.am.FollowPlayer(g.player)
	}

	g.bumpCheck(keyboard != nil || mouse != nil)
	return nil
}

// bumpCheck plays the edge blip once when a pan runs into the clamp.
func (g *Game) bumpCheck(panned bool) {
	c := g.am.Rect().Center()
	hit := c.X >= g.bounds.Max.X || c.X <= g.bounds.Min.X ||
		c.Y >= g.bounds.Max.Y || c.Y <= g.bounds.Min.Y
	if panned && hit && !g.atEdge {
		g.sound.Play(audio.SoundEdge)
	}
	g.atEdge = hit
}

// draw renders the frame.
func (g *Game) draw() {
	g.screen.Clear()
	win := g.window()
	frame := render.Frame{
		Rect:        g.am.Rect(),
		Scale:       fixed.InvertScale(g.scale),
		Level:       g.lvl,
		Player:      g.player,
		PlayerAngle: g.playerAngle,
		ViewWidth:   int(win.Width),
		ViewHeight:  int(win.Height),
	}
	if g.mapOpen {
		g.mm.Draw(frame)
	}
	g.mm.DrawHUD(frame, g.am.FollowsPlayer(), g.rotate)
	g.screen.Show()
}

func clamp64(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
