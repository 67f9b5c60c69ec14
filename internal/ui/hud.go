//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD paints a one-line status readout in the top-left corner of the board.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs the status readout.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.RGBA{A: 160})
	return h
}

// Draw renders the status line for the current frame.
func (h *HUD) Draw(screen *ebiten.Image, paused bool, delay time.Duration, generation, population int) {
	if h == nil {
		return
	}
	state := "running"
	if paused {
		state = "paused"
	}
	line := fmt.Sprintf("%s  delay %dms  gen %d  pop %d", state, delay.Milliseconds(), generation, population)

	face := basicfont.Face7x13
	w := font7x13Width(line)

	// Dark strip behind the text keeps it readable over live cells.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w+8), 16)
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, line, face, 4, 12, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

func font7x13Width(s string) int {
	return 7 * len(s)
}
