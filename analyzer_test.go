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
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/japanese"
)

// TestAnalyzeReferenceScenario checks that "01234567" lands at version M2,
// the version JIS X0510 Annex I.3 works its encoding example through. The
// annex pins that example's error correction level at L; this implementation
// always promotes to the strongest ECL the chosen version's capacity still
// admits (see DESIGN.md), and 32 data bits exactly fill M2/M's 32-bit
// capacity, so M is what auto-selection actually returns here.
func TestAnalyzeReferenceScenario(t *testing.T) {
	v, e, segs, err := analyze("01234567", M1, M4, NONE, japanese.ShiftJIS)
	assert.NoError(t, err)
	assert.Equal(t, M2, v)
	assert.Equal(t, M, e)
	assert.Len(t, segs, 1)
	assert.Equal(t, ModeNumeric, segs[0].mode)
}

func TestAnalyzeShortNumericFitsM1(t *testing.T) {
	v, e, _, err := analyze("1111", M1, M4, NONE, japanese.ShiftJIS)
	assert.NoError(t, err)
	assert.Equal(t, M1, v)
	assert.Equal(t, NONE, e)
}

func TestAnalyzeCapacityBoundaryL(t *testing.T) {
	_, _, _, err := analyze(strings.Repeat("1", 35), M1, M4, L, japanese.ShiftJIS)
	assert.NoError(t, err)

	_, _, _, err = analyze(strings.Repeat("1", 36), M1, M4, L, japanese.ShiftJIS)
	assert.Error(t, err)
	var overCapacity *OverCapacityError
	assert.ErrorAs(t, err, &overCapacity)
}

func TestAnalyzeCapacityBoundaryQ(t *testing.T) {
	_, e, _, err := analyze(strings.Repeat("1", 21), M1, M4, Q, japanese.ShiftJIS)
	assert.NoError(t, err)
	assert.Equal(t, Q, e)

	_, _, _, err = analyze(strings.Repeat("1", 22), M1, M4, Q, japanese.ShiftJIS)
	assert.Error(t, err)
	var overCapacity *OverCapacityError
	assert.ErrorAs(t, err, &overCapacity)
}

func TestAnalyzeByteModeChoosesSmallestVersion(t *testing.T) {
	v, _, segs, err := analyze("aaaa", M1, M4, NONE, japanese.ShiftJIS)
	assert.NoError(t, err)
	assert.True(t, v >= M3) // M1 admits only Numeric; M2 admits only Numeric/Alphanumeric.
	assert.Equal(t, ModeByte, segs[0].mode)
}

func TestAnalyzeMixedModeUnderM4(t *testing.T) {
	v, e, segs, err := analyze("12月31日(火)", M4, M4, L, japanese.ShiftJIS)
	assert.NoError(t, err)
	assert.Equal(t, M4, v)

	total := totalBitLength(segs, v, japanese.ShiftJIS)
	assert.True(t, total <= dataBitCapacity(M4, e))
	assert.True(t, total <= 128)
}

func TestAnalyzeInvalidCharacter(t *testing.T) {
	_, _, _, err := analyze("😀", M1, M4, NONE, japanese.ShiftJIS)
	assert.Error(t, err)
	var invalidChar *InvalidCharacterError
	assert.ErrorAs(t, err, &invalidChar)
}
