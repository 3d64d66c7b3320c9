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
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/japanese"
)

// TestEncodePipelineReferenceScenario drives every stage of the pipeline by
// hand - segment encoding, codeword building, function-pattern construction,
// placement, mask selection and format information - for JIS X0510 Annex
// I.3's "01234567" M2/L symbol, and checks the result against the worked
// matrix given there.
func TestEncodePipelineReferenceScenario(t *testing.T) {
	seg := segment{mode: ModeNumeric, text: "01234567"}
	segBits, err := seg.bits(M2, japanese.ShiftJIS)
	assert.NoError(t, err)

	final := buildFinalBitstream(segBits, M2, L)

	placed := buildFunctionMatrix(M2)
	placedCount := placeCodewords(&placed, final)
	assert.Equal(t, len(final), placedCount)

	mask, masked := selectMask(placed)
	assert.Equal(t, Mask01, mask)

	writeFormatInfo(&masked, formatInfoBits(M2, L, mask))

	expected := [13]string{
		"1111111010101",
		"1000001011101",
		"1011101001101",
		"1011101001111",
		"1011101011100",
		"1000001010001",
		"1111111001111",
		"0000000001100",
		"1101000010001",
		"0110101010101",
		"1110011111110",
		"0001010000110",
		"1110100110111",
	}
	for r := 0; r < 13; r++ {
		for c := 0; c < 13; c++ {
			want := expected[r][c] == '1'
			assert.Equal(t, want, masked.At(r, c), "(%d,%d)", r, c)
		}
	}
}

func TestEncodeProducesCorrectlySizedMatrix(t *testing.T) {
	m, err := Encode("01234567", NONE)
	assert.NoError(t, err)
	assert.Equal(t, M2.side(), m.Side())
}

func TestEncodeWithMinVersionForcesLargerSymbol(t *testing.T) {
	m, err := Encode("1", NONE, WithMinVersion(M4), WithMaxVersion(M4))
	assert.NoError(t, err)
	assert.Equal(t, M4.side(), m.Side())
}

func TestEncodeWithMaskPinsMaskChoice(t *testing.T) {
	m1, err := Encode("01234567", NONE, WithMask(Mask00))
	assert.NoError(t, err)
	m2, err := Encode("01234567", NONE, WithMask(Mask11))
	assert.NoError(t, err)
	assert.NotEqual(t, m1, m2)
}

func TestEncodeInvalidCharacterError(t *testing.T) {
	_, err := Encode("😀", NONE)
	assert.Error(t, err)
	var invalidChar *InvalidCharacterError
	assert.ErrorAs(t, err, &invalidChar)
}

func TestEncodeOverCapacityError(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = '1'
	}
	_, err := Encode(string(long), NONE, WithMaxVersion(M4))
	assert.Error(t, err)
	var overCapacity *OverCapacityError
	assert.ErrorAs(t, err, &overCapacity)
}

func TestEncodeWithByteEncodingOption(t *testing.T) {
	m, err := Encode("hello", NONE, WithByteEncoding("utf-8"))
	assert.NoError(t, err)
	assert.True(t, m.Side() > 0)
}
