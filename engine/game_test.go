package engine

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/automap/config"
	"github.com/lixenwraith/automap/input"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Sound = false
	cfg.Level.Seed = 5

	g, err := New(screen, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func TestNewStartsFollowingAtSpawn(t *testing.T) {
	g := newTestGame(t)

	if !g.am.FollowsPlayer() {
		t.Error("Game should start in follow mode")
	}
	if int64(g.player.X) != g.lvl.Spawn.X || int64(g.player.Y) != g.lvl.Spawn.Y {
		t.Errorf("Player %+v not at spawn %+v", g.player, g.lvl.Spawn)
	}
	if c := g.am.Rect().Center(); c.X != int64(g.player.X) || c.Y != int64(g.player.Y) {
		t.Errorf("Viewport center %+v not on player %+v", c, g.player)
	}
}

func TestWindowReservesHUDRow(t *testing.T) {
	g := newTestGame(t)
	if win := g.window(); win.Width != 80 || win.Height != 23 {
		t.Errorf("Expected 80x23 viewport, got %dx%d", win.Width, win.Height)
	}
}

func TestPanIntentExitsFollow(t *testing.T) {
	g := newTestGame(t)
	before := g.am.Rect().Origin

	g.handle(input.Intent{Type: input.IntentPan, DX: 1})
	if err := g.tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	if g.am.FollowsPlayer() {
		t.Error("Keyboard pan should exit follow mode")
	}
	if g.am.Rect().Origin == before {
		t.Error("Pan should move the viewport")
	}
	if !g.panKeyboard.IsZero() || !g.panMouse.IsZero() {
		t.Error("Tick should clear the pan accumulators")
	}
}

func TestIdleTickKeepsViewport(t *testing.T) {
	g := newTestGame(t)
	before := g.am.Rect()

	for i := 0; i < 3; i++ {
		if err := g.tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
	}
	if g.am.Rect() != before {
		t.Error("Idle ticks should not move the viewport")
	}
	if !g.am.FollowsPlayer() {
		t.Error("Idle ticks should not exit follow mode")
	}
}

func TestMoveFollowTracksPlayer(t *testing.T) {
	g := newTestGame(t)

	g.handle(input.Intent{Type: input.IntentMove, DX: 1})
	if err := g.tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	if c := g.am.Rect().Center(); c.X != int64(g.player.X) {
		t.Errorf("Viewport center %d not tracking player %d", c.X, g.player.X)
	}
	if g.playerAngle != 0 {
		t.Errorf("Moving right should face angle 0, got %d", g.playerAngle)
	}
}

func TestZoomBounds(t *testing.T) {
	g := newTestGame(t)

	// Zoom out until pinned at the max scale.
	for i := 0; i < 10; i++ {
		g.handle(input.Intent{Type: input.IntentZoomOut})
	}
	if g.scale.Raw() != maxScaleRaw {
		t.Errorf("Expected scale pinned at %d, got %d", maxScaleRaw, g.scale.Raw())
	}

	for i := 0; i < 10; i++ {
		g.handle(input.Intent{Type: input.IntentZoomIn})
	}
	if g.scale.Raw() != minScaleRaw {
		t.Errorf("Expected scale pinned at %d, got %d", minScaleRaw, g.scale.Raw())
	}
}

func TestZoomKeepsCenter(t *testing.T) {
	g := newTestGame(t)
	center := g.am.Rect().Center()

	g.handle(input.Intent{Type: input.IntentZoomOut})
	if got := g.am.Rect().Center(); got != center {
		t.Errorf("Zoom moved the center: %+v vs %+v", got, center)
	}
}

func TestMapToggleRoundTrip(t *testing.T) {
	g := newTestGame(t)
	g.am.SetFollow(false)
	before := g.am.Rect()

	g.handle(input.Intent{Type: input.IntentMapToggle})
	if g.mapOpen {
		t.Fatal("Toggle should close the map")
	}
	g.handle(input.Intent{Type: input.IntentMapToggle})
	if !g.mapOpen {
		t.Fatal("Toggle should reopen the map")
	}
	if g.am.Rect() != before {
		t.Errorf("Reopen should restore the viewport, got %+v", g.am.Rect())
	}
}

func TestMovePlayerClampedToBounds(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 10000; i++ {
		g.movePlayer(1, 0)
	}
	if int64(g.player.X) != g.bounds.Max.X {
		t.Errorf("Expected player pinned at %d, got %d", g.bounds.Max.X, g.player.X)
	}
}

func TestFollowToggle(t *testing.T) {
	g := newTestGame(t)

	g.handle(input.Intent{Type: input.IntentFollowToggle})
	if g.am.FollowsPlayer() {
		t.Error("Toggle should disable follow mode")
	}
	g.handle(input.Intent{Type: input.IntentFollowToggle})
	if !g.am.FollowsPlayer() {
		t.Error("Toggle should re-enable follow mode")
	}
}

func TestDrawRenders(t *testing.T) {
	g := newTestGame(t)
	// Smoke the render path against the simulation screen.
	g.draw()
	g.handle(input.Intent{Type: input.IntentMapToggle})
	g.draw()
}
