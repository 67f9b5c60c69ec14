package view

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"golife/internal/input"
	"golife/internal/life"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type binding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI renders the board in a terminal using gocui. One character cell
// per board cell; all simulation access runs inside the gocui update loop so
// the controller stays single-threaded.
type ConsoleUI struct {
	ctrl *life.Controller
	g    *gocui.Gui
	k    []binding
	geo  input.Geometry

	liveFiller string
	deadFiller string

	done chan struct{}
}

// NewConsoleUI builds the terminal frontend for the given controller.
func NewConsoleUI(ctrl *life.Controller) *ConsoleUI {
	w, h := ctrl.Grid().Size()
	t := &ConsoleUI{
		ctrl:       ctrl,
		geo:        input.Geometry{CellSize: 1, Rows: h, Cols: w},
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
		done:       make(chan struct{}),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []binding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause/resume", t.cmdKey(input.KeyPause), ""},
		{'r', "R", "Reset board", t.cmdKey(input.KeyReset), ""},
		{'n', "N", "Single step", t.cmdStepOnce, ""},
		{'+', "+", "Slower", t.cmdWheel(1), ""},
		{'-', "-", "Faster", t.cmdWheel(-1), ""},
		{gocui.MouseLeft, "LMB", "Settle cell", t.cmdMouse(input.ButtonLeft), "board"},
		{gocui.MouseRight, "RMB", "Kill cell", t.cmdMouse(input.ButtonRight), "board"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initBindings()
	return t
}

func (t *ConsoleUI) initBindings() {
	for _, kb := range t.k {
		h := kb.handler
		err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(gui *gocui.Gui, view *gocui.View) error { return h(view) })
		if err != nil {
			log.Panicln(err)
		}
	}
}

// Run drives the simulation under the gocui main loop until the user quits.
func (t *ConsoleUI) Run() error {
	go t.tickLoop()
	err := t.g.MainLoop()
	close(t.done)
	t.g.Close()
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

// tickLoop feeds elapsed wall time to the controller. The work itself runs
// inside g.Update, on the main loop goroutine.
func (t *ConsoleUI) tickLoop() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-t.done:
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			t.g.Update(func(*gocui.Gui) error {
				t.ctrl.Advance(elapsed)
				t.refresh()
				return nil
			})
		}
	}
}

func (t *ConsoleUI) refresh() {
	t.renderField()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {
	v, err := t.g.View("board")
	if err != nil {
		return
	}
	v.Clear()

	w, h := t.ctrl.Grid().Size()
	cells := t.ctrl.Grid().Cells()
	maxW, maxH := v.Size()

	var b bytes.Buffer
	for row := 0; row < h && row < maxH; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		if (h > maxH || w > maxW) && row == maxH-1 {
			b.WriteString(aurora.Red("The board is larger than the viewing area").String())
			break
		}
		for col := 0; col < w && col < maxW; col++ {
			if cells[row*w+col] != 0 {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus() {
	v, err := t.g.View("status")
	if err != nil {
		return
	}
	v.Clear()

	clock := t.ctrl.Clock()
	state := aurora.Colorize("running", aurora.CyanFg).String()
	if clock.Paused() {
		state = aurora.Colorize("paused", aurora.BlueFg).String()
	}
	w, h := t.ctrl.Grid().Size()
	fmt.Fprintln(v, t.prop("Board", "%v x %v", w, h))
	fmt.Fprintln(v, t.prop("Delay", "%v", clock.Delay()))
	fmt.Fprintln(v, t.prop("Generation", "%v", t.ctrl.Generation()))
	fmt.Fprintln(v, t.prop("Live cells", "%v", t.ctrl.Grid().Population()))
	fmt.Fprintln(v, t.prop("State", "%v", state))
}

func (t *ConsoleUI) prop(name, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("board", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
		t.renderField()
	} else {
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) apply(ev input.Event) {
	if cmd, ok := input.Map(ev, t.geo); ok {
		t.ctrl.Apply(cmd)
	}
	t.refresh()
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdKey(key input.Key) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		t.apply(input.Event{Kind: input.KindKeyPress, Key: key})
		return nil
	}
}

func (t *ConsoleUI) cmdWheel(dir float64) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		t.apply(input.Event{Kind: input.KindWheel, WheelY: dir})
		return nil
	}
}

func (t *ConsoleUI) cmdMouse(btn input.Button) func(*gocui.View) error {
	return func(v *gocui.View) error {
		cx, cy := v.Cursor()
		t.apply(input.Event{Kind: input.KindMouseDown, Button: btn, X: cx, Y: cy})
		return nil
	}
}

func (t *ConsoleUI) cmdStepOnce(_ *gocui.View) error {
	if t.ctrl.Clock().Paused() {
		t.ctrl.StepOnce()
	}
	t.refresh()
	return nil
}
