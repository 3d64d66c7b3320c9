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

func TestJoinMode(t *testing.T) {
	assert.Equal(t, ModeNumeric, joinMode(ModeNumeric, ModeNumeric))
	assert.Equal(t, ModeKanji, joinMode(ModeKanji, ModeKanji))
	assert.Equal(t, ModeAlphanumeric, joinMode(ModeNumeric, ModeAlphanumeric))
	assert.Equal(t, ModeByte, joinMode(ModeKanji, ModeNumeric))
	assert.Equal(t, ModeByte, joinMode(ModeKanji, ModeAlphanumeric))
	assert.Equal(t, ModeByte, joinMode(ModeByte, ModeNumeric))
}

func TestClassifyRuns(t *testing.T) {
	runs, err := classifyRuns("12AB", japanese.ShiftJIS)
	assert.NoError(t, err)
	assert.Equal(t, []segment{
		{mode: ModeNumeric, text: "12"},
		{mode: ModeAlphanumeric, text: "AB"},
	}, runs)
}

func TestClassifyRunsInvalidCharacter(t *testing.T) {
	_, err := classifyRuns("😀", japanese.ShiftJIS)
	assert.Error(t, err)
}

// TestOptimizerEquivalence checks the universal invariant that hill climbing
// and exhaustive search always agree on total bit length, across a range of
// mixed-mode texts short enough for the 2^(n-1) search to be practical.
func TestOptimizerEquivalence(t *testing.T) {
	texts := []string{
		"1",
		"11",
		"1A",
		"A1A1",
		"111AAA",
		"1A1A1A1A",
		"12AB34CD",
		"AAAA1111BBBB2222",
	}

	for _, text := range texts {
		runs, err := classifyRuns(text, japanese.ShiftJIS)
		assert.NoError(t, err)

		_, bruteBits := optimizeSegmentsBruteForce(runs, M4, japanese.ShiftJIS)
		hillSegs := optimizeSegmentsHillClimbing(runs, M4, japanese.ShiftJIS)
		hillBits := totalBitLength(hillSegs, M4, japanese.ShiftJIS)

		assert.Equal(t, bruteBits, hillBits, "mismatch for text %q", text)
	}
}

func TestMergeRunsConcatenatesText(t *testing.T) {
	runs := []segment{
		{mode: ModeNumeric, text: "12"},
		{mode: ModeAlphanumeric, text: "AB"},
	}
	merged := mergeRuns(runs)
	assert.Equal(t, ModeAlphanumeric, merged.mode)
	assert.Equal(t, "12AB", merged.text)
}
