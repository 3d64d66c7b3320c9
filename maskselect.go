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

// applyMask XORs mask's predicate into every data-region cell of placed,
// leaving the function pattern and format-information cells untouched.
func applyMask(placed Matrix, mask Mask) Matrix {
	out := newMatrix(placed.side)
	for r := 0; r < placed.side; r++ {
		for c := 0; c < placed.side; c++ {
			dark := placed.At(r, c)
			if !isReserved(r, c) && mask.invert(r, c) {
				dark = !dark
			}
			out.set(r, c, dark)
		}
	}
	return out
}

// maskScore computes the Micro QR score (higher is better): s1 counts dark
// modules in the bottom row, s2 in the rightmost column (excluding the
// corner shared with row/column 0), and the score weights the smaller count
// sixteen times over the larger.
func maskScore(m Matrix) int {
	side := m.side
	s1, s2 := 0, 0
	for c := 1; c < side; c++ {
		if m.At(side-1, c) {
			s1++
		}
	}
	for r := 1; r < side; r++ {
		if m.At(r, side-1) {
			s2++
		}
	}
	d := abs(s1 - s2)
	lo, hi := (s1+s2-d)/2, (s1+s2+d)/2
	return 16*lo + hi
}

// selectMask tries every mask against placed and returns the reference and
// masked matrix with the highest score, breaking ties by lowest mask value.
func selectMask(placed Matrix) (Mask, Matrix) {
	bestMask := masks[0]
	bestMatrix := applyMask(placed, bestMask)
	bestScore := maskScore(bestMatrix)

	for _, mask := range masks[1:] {
		candidate := applyMask(placed, mask)
		score := maskScore(candidate)
		if score > bestScore {
			bestScore = score
			bestMask = mask
			bestMatrix = candidate
		}
	}

	return bestMask, bestMatrix
}
