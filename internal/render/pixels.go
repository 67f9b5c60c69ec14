package render

import "image/color"

// fillCellsRGBA writes one RGBA pixel per cell into buf, alive cells in
// alive and dead cells in dead. buf must hold 4*len(cells) bytes.
func fillCellsRGBA(buf []byte, cells []uint8, alive, dead color.RGBA) {
	for i, c := range cells {
		col := dead
		if c != 0 {
			col = alive
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
