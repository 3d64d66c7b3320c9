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
)

func TestBuildFunctionMatrixFinderPattern(t *testing.T) {
	m := buildFunctionMatrix(M2)

	expected := [7]string{
		"1111111",
		"1000001",
		"1011101",
		"1011101",
		"1011101",
		"1000001",
		"1111111",
	}
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			want := expected[r][c] == '1'
			assert.Equal(t, want, m.At(r, c), "(%d,%d)", r, c)
		}
	}
}

func TestBuildFunctionMatrixTimingStrips(t *testing.T) {
	m := buildFunctionMatrix(M2)
	side := M2.side()
	for c := 7; c < side; c++ {
		assert.Equal(t, c%2 == 0, m.At(0, c))
	}
	for r := 7; r < side; r++ {
		assert.Equal(t, r%2 == 0, m.At(r, 0))
	}
}

func TestIsReserved(t *testing.T) {
	assert.True(t, isReserved(0, 5))
	assert.True(t, isReserved(5, 0))
	assert.True(t, isReserved(3, 3))
	assert.True(t, isReserved(8, 4))
	assert.True(t, isReserved(4, 8))
	assert.False(t, isReserved(9, 9))
	assert.True(t, isReserved(7, 7))
}

func TestPlaceCodewordsCoversExactBitCount(t *testing.T) {
	for _, v := range versions {
		side := v.side()
		want := (side-1)*(side-1) - 64
		bits := make(bitBuffer, want)
		for i := range bits {
			bits[i] = byte(i % 2)
		}

		m := buildFunctionMatrix(v)
		placed := placeCodewords(&m, bits)
		assert.Equal(t, want, placed, "version %s", v)
	}
}

func TestPlaceCodewordsNeverTouchesReservedCells(t *testing.T) {
	v := M3
	side := v.side()
	want := (side-1)*(side-1) - 64
	bits := make(bitBuffer, want)
	for i := range bits {
		bits[i] = 1
	}

	functionOnly := buildFunctionMatrix(v)
	m := buildFunctionMatrix(v)
	placeCodewords(&m, bits)

	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if isReserved(r, c) {
				assert.Equal(t, functionOnly.At(r, c), m.At(r, c), "(%d,%d)", r, c)
			}
		}
	}
}
