//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// BoardPainter draws the cell grid by uploading one pixel per cell into an
// RGBA image and blitting it scaled so each cell covers cellSize pixels.
type BoardPainter struct {
	w, h     int
	cellSize int
	img      *ebiten.Image
	buf      []byte
	alive    color.RGBA
	dead     color.RGBA

	pixel *ebiten.Image
}

// NewBoardPainter allocates a painter for a w*h board.
func NewBoardPainter(w, h, cellSize int, alive, dead color.RGBA) *BoardPainter {
	if cellSize < 1 {
		cellSize = 1
	}
	bp := &BoardPainter{
		w:        w,
		h:        h,
		cellSize: cellSize,
		buf:      make([]byte, 4*w*h),
		alive:    alive,
		dead:     dead,
	}
	bp.img = ebiten.NewImage(w, h)
	bp.pixel = ebiten.NewImage(1, 1)
	bp.pixel.Fill(color.White)
	return bp
}

// CellSize returns the on-screen size of one cell in pixels.
func (bp *BoardPainter) CellSize() int { return bp.cellSize }

// Draw uploads the cells into the painter image and blits it to dst.
func (bp *BoardPainter) Draw(dst *ebiten.Image, cells []uint8) {
	if len(cells) != bp.w*bp.h {
		return
	}
	fillCellsRGBA(bp.buf, cells, bp.alive, bp.dead)
	bp.img.ReplacePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bp.cellSize), float64(bp.cellSize))
	dst.DrawImage(bp.img, op)
}

// DrawHighlight outlines the cell at (row, col) with a 2px border in col.
func (bp *BoardPainter) DrawHighlight(dst *ebiten.Image, row, colIdx int, col color.RGBA) {
	if row < 0 || row >= bp.h || colIdx < 0 || colIdx >= bp.w {
		return
	}
	cs := float64(bp.cellSize)
	x := float64(colIdx) * cs
	y := float64(row) * cs
	const thickness = 2.0
	bp.drawRect(dst, x, y, cs, thickness, col)              // top
	bp.drawRect(dst, x, y+cs-thickness, cs, thickness, col) // bottom
	bp.drawRect(dst, x, y, thickness, cs, col)              // left
	bp.drawRect(dst, x+cs-thickness, y, thickness, cs, col) // right
}

func (bp *BoardPainter) drawRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(bp.pixel, op)
}
