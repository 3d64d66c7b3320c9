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

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// Mode represents the encoding mode of a segment: Numeric, Alphanumeric,
// Byte, or Kanji. Unlike the full QR Code teacher's Mode, this is a bare
// tag with no attached closures; every mode-dependent operation (validity,
// encoding, bit length, character count) dispatches on this value through
// the switch statements in this file, per JIS X0510 7.3-7.4.
type Mode int8

// Mode values, carrying the mode_indicator_value JIS X0510 table 2 assigns.
const (
	ModeNumeric Mode = iota
	ModeAlphanumeric
	ModeByte
	ModeKanji
)

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "Numeric"
	case ModeAlphanumeric:
		return "Alphanumeric"
	case ModeByte:
		return "Byte"
	case ModeKanji:
		return "Kanji"
	default:
		return "unknown mode"
	}
}

// indicatorValue is the mode indicator's bit pattern value, interpreted
// within the version-dependent number of bits returned by
// Version.modeIndicatorLength.
func (m Mode) indicatorValue() int {
	switch m {
	case ModeNumeric:
		return 0
	case ModeAlphanumeric:
		return 1
	case ModeByte:
		return 2
	case ModeKanji:
		return 3
	default:
		panic("unknown mode")
	}
}

// charCountBits returns the character-count indicator length, in bits, for
// this mode at the given version, per JIS X0510 table 3.
func (m Mode) charCountBits(v Version) int8 {
	switch {
	case v == M1 && m == ModeNumeric:
		return 3
	case v == M2 && m == ModeNumeric:
		return 4
	case v == M2 && m == ModeAlphanumeric:
		return 3
	case v == M3 && m == ModeNumeric:
		return 5
	case v == M3 && m == ModeAlphanumeric:
		return 4
	case v == M3 && m == ModeByte:
		return 4
	case v == M3 && m == ModeKanji:
		return 3
	case v == M4 && m == ModeNumeric:
		return 6
	case v == M4 && m == ModeAlphanumeric:
		return 5
	case v == M4 && m == ModeByte:
		return 5
	case v == M4 && m == ModeKanji:
		return 4
	default:
		panic("illegal (version, mode) pair")
	}
}

// alphanumericCharset is the 45-character set of the Alphanumeric mode, in
// table-index order (JIS X0510 7.4.4).
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// kanjiCode returns the big-endian Shift-JIS code point of a single rune and
// whether it falls in one of the two Kanji mode ranges with low != 0x7F.
// Both canonical ranges from JIS X0510 7.4.6 are honored here and nowhere
// else, resolving the half-open boundary ambiguity the source carried.
func kanjiCode(c rune, enc *encoding.Encoder) (x int, ok bool) {
	b, err := enc.Bytes([]byte(string(c)))
	if err != nil || len(b) != 2 {
		return 0, false
	}
	x = int(b[0])<<8 | int(b[1])
	low := x & 0xFF
	inRange := (x >= 0x8140 && x <= 0x9FFC) || (x >= 0xE040 && x <= 0xEBBF)
	return x, inRange && low != 0x7F
}

func isNumericChar(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlphanumericChar(c rune) bool {
	return strings.ContainsRune(alphanumericCharset, c)
}

// isValid reports whether every character of text can be encoded by this
// mode, under the given byte-mode text encoding (Kanji mode always uses
// Shift-JIS regardless of byteEnc, per JIS X0510 7.4.6).
func (m Mode) isValid(text string, byteEnc encoding.Encoding) bool {
	switch m {
	case ModeNumeric:
		for _, c := range text {
			if !isNumericChar(c) {
				return false
			}
		}
		return true
	case ModeAlphanumeric:
		for _, c := range text {
			if !isAlphanumericChar(c) {
				return false
			}
		}
		return true
	case ModeByte:
		enc := byteEnc.NewEncoder()
		_, err := enc.String(text)
		return err == nil
	case ModeKanji:
		enc := japanese.ShiftJIS.NewEncoder()
		for _, c := range text {
			if _, ok := kanjiCode(c, enc); !ok {
				return false
			}
		}
		return true
	default:
		panic("unknown mode")
	}
}

// characterCount returns the JIS X0510 "character count" of text under this
// mode: a rune count for Numeric/Alphanumeric/Kanji, but a byte count for
// Byte mode since its character-count indicator counts encoded bytes.
func (m Mode) characterCount(text string, byteEnc encoding.Encoding) (int, error) {
	switch m {
	case ModeByte:
		b, err := byteEnc.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return 0, err
		}
		return len(b), nil
	default:
		return len([]rune(text)), nil
	}
}

// bitLength returns the number of data bits this mode encodes
// characterCount characters into, per the formulas of JIS X0510 7.4.
func (m Mode) bitLength(characterCount int) int {
	switch m {
	case ModeNumeric:
		d, r := characterCount/3, characterCount%3
		switch r {
		case 0:
			return 10 * d
		case 1:
			return 10*d + 4
		default: // 2
			return 10*d + 7
		}
	case ModeAlphanumeric:
		return 11*(characterCount/2) + 6*(characterCount%2)
	case ModeByte:
		return 8 * characterCount
	case ModeKanji:
		return 13 * characterCount
	default:
		panic("unknown mode")
	}
}

// encode converts text into this mode's data bits (mode indicator and
// character-count indicator are not included; see segment.bits).
func (m Mode) encode(text string, byteEnc encoding.Encoding) (bitBuffer, error) {
	switch m {
	case ModeNumeric:
		return encodeNumeric(text), nil
	case ModeAlphanumeric:
		return encodeAlphanumeric(text), nil
	case ModeByte:
		return encodeByte(text, byteEnc)
	case ModeKanji:
		return encodeKanji(text)
	default:
		panic("unknown mode")
	}
}

// encodeNumeric groups digits into chunks of up to three, emitting each
// chunk as 4, 7, or 10 bits (JIS X0510 7.4.3).
func encodeNumeric(text string) bitBuffer {
	bb := make(bitBuffer, 0, len(text)*4)
	runes := []rune(text)
	for i := 0; i < len(runes); i += 3 {
		end := i + 3
		if end > len(runes) {
			end = len(runes)
		}
		chunk := string(runes[i:end])
		n := 0
		for _, c := range chunk {
			n = n*10 + int(c-'0')
		}
		switch len(chunk) {
		case 1:
			bb.appendBits(n, 4)
		case 2:
			bb.appendBits(n, 7)
		case 3:
			bb.appendBits(n, 10)
		}
	}
	return bb
}

// encodeAlphanumeric groups characters into pairs, emitting a*45+b as 11
// bits, or a lone trailing character as 6 bits (JIS X0510 7.4.4).
func encodeAlphanumeric(text string) bitBuffer {
	bb := make(bitBuffer, 0, len(text)*6)
	runes := []rune(text)
	i := 0
	for ; i+1 < len(runes); i += 2 {
		a := strings.IndexRune(alphanumericCharset, runes[i])
		b := strings.IndexRune(alphanumericCharset, runes[i+1])
		bb.appendBits(a*45+b, 11)
	}
	if i < len(runes) {
		a := strings.IndexRune(alphanumericCharset, runes[i])
		bb.appendBits(a, 6)
	}
	return bb
}

// encodeByte encodes text using the configured byte encoding, 8 bits per
// output byte (JIS X0510 7.4.5).
func encodeByte(text string, byteEnc encoding.Encoding) (bitBuffer, error) {
	data, err := byteEnc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, err
	}
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}
	return bb, nil
}

// encodeKanji obtains each character's 2-byte Shift-JIS code, subtracts the
// block offset, and emits high*0xC0+low as 13 bits (JIS X0510 7.4.6).
func encodeKanji(text string) (bitBuffer, error) {
	enc := japanese.ShiftJIS.NewEncoder()
	bb := make(bitBuffer, 0, len(text)*13)
	for _, c := range text {
		x, ok := kanjiCode(c, enc)
		if !ok {
			return nil, &InvalidCharacterError{Char: c}
		}
		if x <= 0x9FFC {
			x -= 0x8140
		} else {
			x -= 0xC140
		}
		high, low := x>>8, x&0xFF
		bb.appendBits(high*0xC0+low, 13)
	}
	return bb, nil
}
