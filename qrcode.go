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

// Encode renders text into a Micro QR Code symbol. eclPreference is the
// error correction level the analyzer must meet or exceed (NONE accepts
// whatever the smallest admitting version offers). By default, the smallest
// legal version is chosen and the mask is auto-selected by score; use
// WithMinVersion, WithMaxVersion, and WithMask to override either.
//
// Encode fails with *InvalidCharacterError if text contains a character no
// mode can encode, *InvalidPairError if no (version, ecl) combination admits
// the text's modes, and *OverCapacityError if a legal combination exists but
// none has enough data-bit capacity.
func Encode(text string, eclPreference ECL, opts ...Option) (Matrix, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	byteEnc, err := resolveByteEncoding(o.byteEncodingName)
	if err != nil {
		return Matrix{}, err
	}

	v, ecl, segs, err := analyze(text, o.minVersion, o.maxVersion, eclPreference, byteEnc)
	if err != nil {
		o.logger.Error("analysis failed", "text_length", len(text), "error", err)
		return Matrix{}, err
	}
	o.logger.Debug("analysis selected version and ecl", "version", v, "ecl", ecl, "segments", len(segs))

	segBits, err := segmentBits(segs, v, byteEnc)
	if err != nil {
		return Matrix{}, err
	}

	finalBits := buildFinalBitstream(segBits, v, ecl)

	placed := buildFunctionMatrix(v)
	placedCount := placeCodewords(&placed, finalBits)
	if side := v.side(); placedCount != (side-1)*(side-1)-64 || placedCount != len(finalBits) {
		panic("internal: codeword placement bit count mismatch")
	}

	var mask Mask
	var masked Matrix
	if o.mask == autoMask {
		mask, masked = selectMask(placed)
	} else {
		mask = o.mask
		masked = applyMask(placed, mask)
	}
	o.logger.Debug("mask selected", "mask", mask)

	writeFormatInfo(&masked, formatInfoBits(v, ecl, mask))

	return masked, nil
}
