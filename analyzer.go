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

import "golang.org/x/text/encoding"

// usedModes collects the distinct modes appearing in a run partition.
func usedModes(runs []segment) map[Mode]bool {
	m := make(map[Mode]bool, 4)
	for _, r := range runs {
		m[r.mode] = true
	}
	return m
}

// optimizeSegments picks the segmentation for runs at the given version.
// Hill climbing is used in the production pipeline as an optimization over
// the exhaustive search; optimizeSegmentsBruteForce exists to verify the two
// always agree (see the equivalence property test).
func optimizeSegments(runs []segment, v Version, byteEnc encoding.Encoding) []segment {
	return optimizeSegmentsHillClimbing(runs, v, byteEnc)
}

// analyze selects the smallest version and weakest-then-promoted error
// correction level that admit text, and returns the optimized segmentation
// at that version.
func analyze(text string, minVersion, maxVersion Version, minECL ECL, byteEnc encoding.Encoding) (Version, ECL, []segment, error) {
	runs, err := classifyRuns(text, byteEnc)
	if err != nil {
		return 0, 0, nil, err
	}
	modes := usedModes(runs)

	if M1.allowsModes(modes) {
		segs := optimizeSegments(runs, M1, byteEnc)
		bits := totalBitLength(segs, M1, byteEnc)
		if bits >= 0 && bits <= dataBitCapacity(M1, NONE) && minVersion <= M1 && maxVersion >= M1 && minECL <= NONE {
			return M1, NONE, segs, nil
		}
	}

	var candidateVersions []Version
	for _, v := range versions {
		if v == M1 || v > maxVersion || v < minVersion {
			continue
		}
		candidateVersions = append(candidateVersions, v)
	}

	var candidateECLs []ECL
	for _, e := range ecls {
		if e == NONE || e < minECL {
			continue
		}
		candidateECLs = append(candidateECLs, e)
	}

	if len(candidateVersions) == 0 || len(candidateECLs) == 0 {
		return 0, 0, nil, &InvalidPairError{Reason: "no legal (version, ecl) combination admits the requested modes or constraints"}
	}

	eclLowest := candidateECLs[len(candidateECLs)-1]

	legalExists := false
	var chosenVersion Version = -1
	var chosenSegs []segment
	var lastBits, lastCapacity int

	for _, v := range candidateVersions {
		if !v.allowsModes(modes) || !legalPair(v, eclLowest) {
			continue
		}
		legalExists = true

		segs := optimizeSegments(runs, v, byteEnc)
		bits := totalBitLength(segs, v, byteEnc)
		capacity := dataBitCapacity(v, eclLowest)
		lastBits, lastCapacity = bits, capacity

		if bits >= 0 && bits <= capacity {
			chosenVersion = v
			chosenSegs = segs
			break
		}
	}

	if chosenVersion == -1 {
		if !legalExists {
			return 0, 0, nil, &InvalidPairError{Reason: "no legal (version, ecl) combination admits the requested modes"}
		}
		return 0, 0, nil, &OverCapacityError{Needed: lastBits, Capacity: lastCapacity}
	}

	chosenECL := eclLowest
	chosenBits := totalBitLength(chosenSegs, chosenVersion, byteEnc)
	for _, e := range candidateECLs {
		if !legalPair(chosenVersion, e) {
			continue
		}
		if chosenBits <= dataBitCapacity(chosenVersion, e) {
			chosenECL = e
			break
		}
	}

	return chosenVersion, chosenECL, chosenSegs, nil
}
