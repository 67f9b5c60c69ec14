//go:build ebiten

package app

import (
	"time"

	"golife/internal/config"
	"golife/internal/input"
	"golife/internal/life"
	"golife/internal/render"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation controller to the ebiten.Game interface. All
// state lives on ebiten's single update thread.
type Game struct {
	ctrl    *life.Controller
	painter *render.BoardPainter
	hud     *ui.HUD
	cfg     config.Config
	geo     input.Geometry

	lastFrame time.Time

	lastMouseX    int
	lastMouseY    int
	lastMouseMove time.Time
	hoverRow      int
	hoverCol      int
	hoverVisible  bool
}

// New constructs a Game for the provided controller and settings.
func New(ctrl *life.Controller, cfg config.Config) *Game {
	w, h := ctrl.Grid().Size()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewBoardPainter(w, h, cfg.CellSize, cfg.AliveColor.Color(), cfg.DeadColor.Color()),
		hud:     ui.NewHUD(),
		cfg:     cfg,
		geo: input.Geometry{
			CellSize: cfg.CellSize,
			Rows:     h,
			Cols:     w,
		},
	}
}

// Update drains this frame's input, applies the resulting commands in order
// and advances the simulation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, ev := range g.pollEvents() {
		if cmd, ok := input.Map(ev, g.geo); ok {
			g.ctrl.Apply(cmd)
		}
	}

	now := time.Now()
	if g.lastFrame.IsZero() {
		g.lastFrame = now
	}
	elapsed := now.Sub(g.lastFrame)
	g.lastFrame = now
	g.ctrl.Advance(elapsed)

	g.trackHover(now)
	return nil
}

// pollEvents gathers the raw events of this frame in arrival order: key
// presses first, then the held paint buttons, then wheel movement.
func (g *Game) pollEvents() []input.Event {
	var events []input.Event
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		events = append(events, input.Event{Kind: input.KindKeyPress, Key: input.KeyReset})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		events = append(events, input.Event{Kind: input.KindKeyPress, Key: input.KeyPause})
	}

	// Left takes priority when both paint buttons are held.
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		events = append(events, input.Event{Kind: input.KindMouseDown, Button: input.ButtonLeft, X: mx, Y: my})
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		events = append(events, input.Event{Kind: input.KindMouseDown, Button: input.ButtonRight, X: mx, Y: my})
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		events = append(events, input.Event{Kind: input.KindWheel, WheelY: wy})
	}
	return events
}

// trackHover keeps the highlighted cell under the cursor and hides it once
// the mouse has been idle for the configured sleep.
func (g *Game) trackHover(now time.Time) {
	mx, my := ebiten.CursorPosition()
	if mx != g.lastMouseX || my != g.lastMouseY {
		g.lastMouseX, g.lastMouseY = mx, my
		g.lastMouseMove = now
	}
	row, col, ok := g.geo.CellAt(mx, my)
	g.hoverRow, g.hoverCol = row, col
	g.hoverVisible = ok && now.Sub(g.lastMouseMove) < g.cfg.HighlightSleep
}

// Draw renders the board, the hover highlight and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.Color())
	g.painter.Draw(screen, g.ctrl.Grid().Cells())
	if g.hoverVisible {
		g.painter.DrawHighlight(screen, g.hoverRow, g.hoverCol, g.cfg.HighlightColor.Color())
	}
	clock := g.ctrl.Clock()
	g.hud.Draw(screen, clock.Paused(), clock.Delay(), g.ctrl.Generation(), g.ctrl.Grid().Population())
}

// Layout returns the logical screen size: one cell_size_px square per cell.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.ctrl.Grid().Size()
	return w * g.cfg.CellSize, h * g.cfg.CellSize
}
