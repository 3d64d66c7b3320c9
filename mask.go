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

// Mask identifies one of the four Micro QR Code mask patterns (JIS X0510
// 7.8, table 10). autoMask signals "let Encode pick the highest-scoring
// mask", mirroring the teacher's -1 sentinel in segmentEncoder.mask.
type Mask int8

const (
	Mask00 Mask = iota
	Mask01
	Mask10
	Mask11

	autoMask Mask = -1
)

// invert reports whether this mask's predicate marks (row, col) for
// inversion, per JIS X0510 table 10.
func (m Mask) invert(row, col int) bool {
	switch m {
	case Mask00:
		return row%2 == 0
	case Mask01:
		return (row/2+col/3)%2 == 0
	case Mask10:
		return ((row*col)%2+(row*col)%3)%2 == 0
	case Mask11:
		return ((row+col)%2+(row*col)%3)%2 == 0
	default:
		panic("illegal mask value")
	}
}

// masks lists the four mask patterns in reference order, used to break
// score ties by lowest mask reference value.
var masks = []Mask{Mask00, Mask01, Mask10, Mask11}
