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

// bitBuffer is an ordered sequence of bits (spec's BitSequence), one byte
// (0 or 1) of storage per bit. It is built up by appendBits and eventually
// packed into 8-bit codewords by toBytes.
type bitBuffer []byte

// appendBits appends the low length bits of value, MSB-first.
func (bb *bitBuffer) appendBits(value int, length int8) {
	if length > 31 || value>>length != 0 {
		panic("value out of range")
	}

	for i := length - 1; i >= 0; i-- { // Append data bit by bit.
		*bb = append(*bb, byte(getBit(value, int(i))))
	}
}

// appendBuffer concatenates other onto bb.
func (bb *bitBuffer) appendBuffer(other bitBuffer) {
	*bb = append(*bb, other...)
}

// toBytes packs bb into bytes, MSB-first. Panics if bb's length is not a
// multiple of 8; callers are responsible for padding to a codeword boundary
// first (see padToCapacity).
func (bb bitBuffer) toBytes() []byte {
	if len(bb)%8 != 0 {
		panic("bit buffer length is not a multiple of 8")
	}
	out := make([]byte, len(bb)/8)
	for i, bit := range bb {
		out[i>>3] |= bit << (7 - uint(i&7))
	}
	return out
}

// toInt interprets bb as an unsigned integer, MSB-first (spec's arr2bin).
func (bb bitBuffer) toInt() int {
	n := 0
	for _, bit := range bb {
		n = n<<1 | int(bit)
	}
	return n
}
