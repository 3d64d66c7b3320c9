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

// ECL represents the error correction level of a Micro QR Code symbol.
type ECL int8

// ECL values. NONE means error detection only, and is legal only with M1.
const (
	NONE ECL = iota // No error correction; detection only (M1 exclusively).
	L               // Recovers approximately 7% of the symbol.
	M               // Recovers approximately 15% of the symbol.
	Q               // Recovers approximately 25% of the symbol (M4 exclusively).
)

func (e ECL) String() string {
	switch e {
	case NONE:
		return "NONE"
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	default:
		return "unknown ECL"
	}
}

// ecls lists the four error correction levels in ascending data-capacity
// order (Q admits the least data, NONE the most), which is the order the analyzer
// searches when promoting error correction.
var ecls = []ECL{Q, M, L, NONE}

// legalPair reports whether (version, ecl) is one of the eight combinations
// JIS X0510 permits for Micro QR Code.
func legalPair(v Version, e ECL) bool {
	switch {
	case v == M1:
		return e == NONE
	case e == NONE:
		return false // NONE is legal only with M1.
	case e == Q:
		return v == M4 // Q is legal only with M4.
	default:
		return e == L || e == M
	}
}

// dataBitCapacity returns the data-bit capacity for a legal (version, ecl)
// pair, per JIS X0510 table 7.
func dataBitCapacity(v Version, e ECL) int {
	switch {
	case v == M1 && e == NONE:
		return 20
	case v == M2 && e == L:
		return 40
	case v == M2 && e == M:
		return 32
	case v == M3 && e == L:
		return 84
	case v == M3 && e == M:
		return 68
	case v == M4 && e == L:
		return 128
	case v == M4 && e == M:
		return 112
	case v == M4 && e == Q:
		return 80
	default:
		panic("illegal (version, ecl) pair")
	}
}

// ecCodewordCount returns the number of error-correction codewords for a
// legal (version, ecl) pair, per JIS X0510 table 9.
func ecCodewordCount(v Version, e ECL) int {
	switch {
	case v == M1 && e == NONE:
		return 2
	case v == M2 && e == L:
		return 5
	case v == M2 && e == M:
		return 6
	case v == M3 && e == L:
		return 6
	case v == M3 && e == M:
		return 8
	case v == M4 && e == L:
		return 8
	case v == M4 && e == M:
		return 10
	case v == M4 && e == Q:
		return 14
	default:
		panic("illegal (version, ecl) pair")
	}
}

// symbolNumber returns the index of (version, ecl) in the fixed ordering
// used by format information, per JIS X0510 table 13.
func symbolNumber(v Version, e ECL) int {
	for i, p := range symbolOrder {
		if p.version == v && p.ecl == e {
			return i
		}
	}
	panic("illegal (version, ecl) pair")
}

type versionECL struct {
	version Version
	ecl     ECL
}

var symbolOrder = []versionECL{
	{M1, NONE},
	{M2, L},
	{M2, M},
	{M3, L},
	{M3, M},
	{M4, L},
	{M4, M},
	{M4, Q},
}
