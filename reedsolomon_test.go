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

// TestReedSolomonReferenceScenario reproduces JIS X0510 Annex I.3: "01234567"
// encoded as M2/L produces these five data codewords, whose degree-5
// Reed-Solomon remainder is the given five EC codewords.
func TestReedSolomonReferenceScenario(t *testing.T) {
	data := []byte{0x40, 0x18, 0xAC, 0xC3, 0x00}
	gen := generatorPolynomial(5)
	ec := reedSolomonEncode(data, gen)
	assert.Equal(t, []byte{0x86, 0x0D, 0x22, 0xAE, 0x30}, ec)
}

func TestGeneratorPolynomialLength(t *testing.T) {
	for _, degree := range []int{2, 5, 6, 8, 10, 14} {
		assert.Len(t, generatorPolynomial(degree), degree)
	}
}

func TestGeneratorPolynomialPanicsOnUnsupportedDegree(t *testing.T) {
	assert.Panics(t, func() { generatorPolynomial(3) })
}

func TestReedSolomonEncodeLengthMatchesGenerator(t *testing.T) {
	gen := generatorPolynomial(8)
	ec := reedSolomonEncode([]byte{1, 2, 3, 4, 5, 6}, gen)
	assert.Len(t, ec, 8)
}
