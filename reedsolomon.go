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

// generatorExponents gives each Micro QR generator polynomial's
// coefficients as powers of α = 0x02, leading coefficient first, per
// JIS X0510's Reed-Solomon tables. Micro QR only ever needs the six
// degrees below (one per legal (version, ecl) pair's EC codeword count).
var generatorExponents = map[int][]int{
	2:  {0, 25, 1},
	5:  {0, 113, 164, 166, 119, 10},
	6:  {0, 166, 0, 134, 5, 176, 15},
	8:  {0, 175, 238, 208, 249, 215, 252, 196, 28},
	10: {0, 251, 67, 46, 61, 118, 70, 64, 94, 32, 45},
	14: {0, 199, 249, 155, 48, 190, 124, 218, 137, 216, 87, 207, 59, 22, 91},
}

// generatorPolynomial returns a degree-t generator polynomial's trailing t
// coefficients (the leading coefficient of a monic generator is always 1
// and is left implicit, matching the teacher's reedSolomonComputeDivisor
// convention), converting the exponent table to field elements via the α
// power table.
func generatorPolynomial(degree int) []byte {
	exps, ok := generatorExponents[degree]
	if !ok || len(exps) != degree+1 {
		panic("unsupported Reed-Solomon degree for Micro QR")
	}
	gen := make([]byte, degree)
	for i, e := range exps[1:] {
		gen[i] = gf256FromExp(e)
	}
	return gen
}

// reedSolomonEncode performs systematic Reed-Solomon encoding: data is
// treated as the high-order coefficients of a polynomial D(x); this
// computes D(x)*x^t mod g(x) via long division in GF(2^8), where t =
// len(generator), returning the remainder's t coefficients as the
// error-correction codewords. This is the teacher's
// reedSolomonComputeRemainder shift-register algorithm, generalized to use
// the precomputed GF(2^8) table lookups (gf256Mul) instead of recomputing a
// product on every multiply.
func reedSolomonEncode(data []byte, generator []byte) []byte {
	remainder := make([]byte, len(generator))
	for _, b := range data {
		factor := gf256Add(b, remainder[0])
		copy(remainder, remainder[1:])
		remainder[len(remainder)-1] = 0
		for i := range remainder {
			remainder[i] = gf256Add(remainder[i], gf256Mul(generator[i], factor))
		}
	}
	return remainder
}
