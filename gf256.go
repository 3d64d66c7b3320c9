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

// gf256 implements arithmetic in GF(2^8) reduced modulo the primitive
// polynomial 0x11D (x^8+x^4+x^3+x^2+1), the residue field JIS X0510's
// Reed-Solomon code is built over. The teacher's reedSolomonMultiply
// recomputes a Russian-peasant product on every call; per the source's own
// design notes this is re-expressed here as precomputed exponential and
// logarithm tables of size 256, so multiplication and inverse reduce to
// table lookups and addition modulo 255.
const gf256Primitive = 0x11D

var (
	gf256Exp [510]byte // α^i for i in [0, 510), doubled to avoid a modulo on multiply.
	gf256Log [256]int  // log_α(x) for x in [1, 255]; gf256Log[0] is unused.
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gf256Exp[i] = byte(x)
		gf256Log[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= gf256Primitive
		}
	}
	for i := 255; i < 510; i++ {
		gf256Exp[i] = gf256Exp[i-255]
	}
}

// gf256FromExp returns α^exp, the field element at the given power of the
// generator α = 0x02.
func gf256FromExp(exp int) byte {
	return gf256Exp[((exp%255)+255)%255]
}

// gf256Add returns the sum of two field elements (XOR, since the field has
// characteristic 2: a+a=0).
func gf256Add(a, b byte) byte {
	return a ^ b
}

// gf256Mul returns the product of two field elements.
func gf256Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gf256Exp[int(gf256Log[a])+int(gf256Log[b])]
}

// gf256Inv returns the multiplicative inverse of a nonzero field element.
// Division or inversion of zero is a ZeroDivision condition; per spec.md
// §7 it must never be reachable from valid inputs, so it panics rather than
// returning an error.
func gf256Inv(a byte) byte {
	if a == 0 {
		panic("gf256: division by zero")
	}
	return gf256Exp[255-int(gf256Log[a])]
}
