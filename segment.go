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

import "golang.org/x/text/encoding"

// segment is one (mode, text-slice) run. Unlike the teacher's QRSegment, which stores pre-rendered bits at
// construction time, a segment here keeps the raw text and only renders its
// mode indicator, character-count indicator, and data bits once the target
// version is known, since the character-count indicator's length is
// version-dependent.
type segment struct {
	mode Mode
	text string
}

// runeCount is the character count used by both the character-count
// indicator and the bit-length formula: a byte count under Byte mode, a rune
// count otherwise.
func (s segment) runeCount(byteEnc encoding.Encoding) (int, error) {
	return s.mode.characterCount(s.text, byteEnc)
}

// totalBits returns this segment's total bit length (mode indicator +
// character-count indicator + data) at the given version, or an error if the
// character count overflows its indicator field.
func (s segment) totalBits(v Version, byteEnc encoding.Encoding) (int, error) {
	cc, err := s.runeCount(byteEnc)
	if err != nil {
		return 0, err
	}
	ccBits := s.mode.charCountBits(v)
	if cc >= 1<<uint(ccBits) {
		return 0, &OverCapacityError{}
	}
	return int(v.modeIndicatorLength()) + int(ccBits) + s.mode.bitLength(cc), nil
}

// bits renders this segment's mode indicator, character-count indicator, and
// data bits at the given version.
func (s segment) bits(v Version, byteEnc encoding.Encoding) (bitBuffer, error) {
	cc, err := s.runeCount(byteEnc)
	if err != nil {
		return nil, err
	}
	ccBits := s.mode.charCountBits(v)
	if cc >= 1<<uint(ccBits) {
		return nil, &OverCapacityError{}
	}

	data, err := s.mode.encode(s.text, byteEnc)
	if err != nil {
		return nil, err
	}

	bb := make(bitBuffer, 0, int(v.modeIndicatorLength())+int(ccBits)+len(data))
	if n := v.modeIndicatorLength(); n > 0 {
		bb.appendBits(s.mode.indicatorValue(), n)
	}
	bb.appendBits(cc, ccBits)
	bb.appendBuffer(data)
	return bb, nil
}

// segmentBits renders and concatenates every segment's bits at the given
// version, in order.
func segmentBits(segs []segment, v Version, byteEnc encoding.Encoding) (bitBuffer, error) {
	var bb bitBuffer
	for _, s := range segs {
		sb, err := s.bits(v, byteEnc)
		if err != nil {
			return nil, err
		}
		bb.appendBuffer(sb)
	}
	return bb, nil
}

// totalBitLength sums every segment's total bit length at the given version;
// returns -1 if any segment's character count overflows its field.
func totalBitLength(segs []segment, v Version, byteEnc encoding.Encoding) int {
	total := 0
	for _, s := range segs {
		n, err := s.totalBits(v, byteEnc)
		if err != nil {
			return -1
		}
		total += n
	}
	return total
}
