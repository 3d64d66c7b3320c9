// Package render turns a symbol matrix into output formats a terminal or
// image viewer can show. Rasterization sits outside the core encoder's
// scope, so it leans on the standard image/png package rather than a
// dependency from the example pack.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
)

// Matrix is the minimal read-only view render needs; microqr.Matrix
// satisfies it.
type Matrix interface {
	Side() int
	At(row, col int) bool
}

const quietZone = 4

// ToPNG writes matrix to w as a PNG, scale pixels per module, surrounded by
// a quiet zone of quietZone modules.
func ToPNG(w io.Writer, matrix Matrix, scale int) error {
	if scale < 1 {
		scale = 1
	}

	side := matrix.Side()
	dim := (side + 2*quietZone) * scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if !matrix.At(r, c) {
				continue
			}
			startX := (c + quietZone) * scale
			startY := (r + quietZone) * scale
			for y := 0; y < scale; y++ {
				for x := 0; x < scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}

	return png.Encode(w, img)
}

// ToANSI renders matrix as two-row-per-line block characters suitable for a
// terminal, with a quiet zone border. Each output line packs two module rows
// using the half-height block glyphs so the symbol prints roughly square.
func ToANSI(matrix Matrix) string {
	side := matrix.Side()
	total := side + 2*quietZone

	at := func(row, col int) bool {
		r, c := row-quietZone, col-quietZone
		if r < 0 || r >= side || c < 0 || c >= side {
			return false
		}
		return matrix.At(r, c)
	}

	var b strings.Builder
	for row := 0; row < total; row += 2 {
		for col := 0; col < total; col++ {
			top := at(row, col)
			bottom := at(row+1, col)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top && !bottom:
				b.WriteRune('▀')
			case !top && bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
