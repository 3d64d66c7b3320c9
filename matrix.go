/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package microqr

// Matrix is a Micro QR Code symbol's module grid. True is a dark module,
// false is light. It carries no quiet zone; callers add one externally.
type Matrix struct {
	side  int
	cells [][]bool
}

// newMatrix allocates a fresh, all-light matrix of the given side length.
// Every pipeline stage allocates its own matrix rather than sharing one, a
// symbol is at most 17×17 = 289 cells.
func newMatrix(side int) Matrix {
	cells := make([][]bool, side)
	for i := range cells {
		cells[i] = make([]bool, side)
	}
	return Matrix{side: side, cells: cells}
}

// Side returns the number of modules per edge of the symbol.
func (m Matrix) Side() int {
	return m.side
}

// At reports whether the module at (row, col) is dark.
func (m Matrix) At(row, col int) bool {
	return m.cells[row][col]
}

func (m *Matrix) set(row, col int, dark bool) {
	m.cells[row][col] = dark
}

// finderDark evaluates the concentric 7×7 finder pattern at (r, c), valid
// only for r, c ∈ [0, 6]: a dark outer ring, a light ring inside it, and a
// dark 3×3 core.
func finderDark(r, c int) bool {
	if r == 0 || r == 6 || c == 0 || c == 6 {
		return true
	}
	return r >= 2 && r <= 4 && c >= 2 && c <= 4
}

// isReserved reports whether (row, col) belongs to the function pattern (the
// finder with its separator, or either timing strip) or the
// format-information block, and so is never part of the data region. This
// is the blanket top-left 9×9 exclusion plus row 0 and column 0.
func isReserved(row, col int) bool {
	if row == 0 || col == 0 {
		return true
	}
	return row <= 8 && col <= 8
}

// buildFunctionMatrix draws the finder pattern and the two timing strips for
// a symbol of the given version. Format-information cells are left light
// here; writeFormatInfo fills them in once the mask is chosen.
func buildFunctionMatrix(v Version) Matrix {
	side := v.side()
	m := newMatrix(side)

	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			m.set(r, c, finderDark(r, c))
		}
	}

	for c := 7; c < side; c++ {
		m.set(0, c, c%2 == 0)
	}
	for r := 7; r < side; r++ {
		m.set(r, 0, r%2 == 0)
	}

	return m
}

// placeCodewords walks the data region in the two-column zig-zag JIS X0510
// 7.6 prescribes, writing bits in order starting from the right edge. The
// column pair (j, j−1) skips rows 0..8 whenever j ≤ 8, since that span
// belongs to the finder and format-information block; otherwise it skips
// only row 0. Vertical direction alternates per stripe, starting upward.
// Returns the number of bits actually placed, which must equal len(bits).
func placeCodewords(m *Matrix, bits bitBuffer) int {
	side := m.side
	idx := 0
	up := true

	for j := side - 1; j >= 2; j -= 2 {
		rowMin, rowMax := 1, side-1
		if j <= 8 {
			rowMin = 9
		}

		place := func(r int) {
			for _, c := range [2]int{j, j - 1} {
				if idx < len(bits) {
					m.set(r, c, getBitAsBool(int(bits[idx]), 0))
					idx++
				}
			}
		}

		if up {
			for r := rowMax; r >= rowMin; r-- {
				place(r)
			}
		} else {
			for r := rowMin; r <= rowMax; r++ {
				place(r)
			}
		}
		up = !up
	}

	return idx
}
