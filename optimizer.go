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
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// classifyChar assigns the lowest-indexed supporting mode to a single
// character, in priority order Numeric, Alphanumeric, Kanji, Byte.
func classifyChar(c rune, byteEnc encoding.Encoding) (Mode, error) {
	switch {
	case isNumericChar(c):
		return ModeNumeric, nil
	case isAlphanumericChar(c):
		return ModeAlphanumeric, nil
	}

	if _, ok := kanjiCode(c, japanese.ShiftJIS.NewEncoder()); ok {
		return ModeKanji, nil
	}

	if ModeByte.isValid(string(c), byteEnc) {
		return ModeByte, nil
	}

	return 0, &InvalidCharacterError{Char: c}
}

// classifyRuns partitions text into maximal runs of the same per-character
// mode, the starting point for segmentation optimization.
func classifyRuns(text string, byteEnc encoding.Encoding) ([]segment, error) {
	var runs []segment
	for _, c := range text {
		m, err := classifyChar(c, byteEnc)
		if err != nil {
			return nil, err
		}
		if n := len(runs); n > 0 && runs[n-1].mode == m {
			runs[n-1].text += string(c)
			continue
		}
		runs = append(runs, segment{mode: m, text: string(c)})
	}
	return runs, nil
}

// joinMode returns the least upper bound of two modes under the merge
// lattice: Kanji⊔Kanji=Kanji, any with Byte or (Kanji with non-Kanji)=Byte,
// any with Alphanumeric (no Byte/Kanji)=Alphanumeric, Numeric⊔Numeric=Numeric.
func joinMode(a, b Mode) Mode {
	if a == b {
		return a
	}
	if a == ModeByte || b == ModeByte {
		return ModeByte
	}
	if a == ModeKanji || b == ModeKanji {
		return ModeByte
	}
	return ModeAlphanumeric
}

// mergeRuns collapses a contiguous slice of runs into a single segment whose
// mode is the join of every run's mode and whose text is their concatenation.
func mergeRuns(runs []segment) segment {
	merged := runs[0]
	for _, r := range runs[1:] {
		merged.mode = joinMode(merged.mode, r.mode)
		merged.text += r.text
	}
	return merged
}

// groupBits sums the total bit length of runs as if merged into one segment.
func groupBits(runs []segment, v Version, byteEnc encoding.Encoding) int {
	if len(runs) == 0 {
		return 0
	}
	n, err := mergeRuns(runs).totalBits(v, byteEnc)
	if err != nil {
		return -1
	}
	return n
}

// optimizeSegmentsBruteForce implements the exhaustive 2^(n-1) boundary
// search: for each subset of the n-1 inter-run boundaries, the boundaries not
// in the subset are merged, and the resulting grouping's total bit length is
// compared against the running minimum.
func optimizeSegmentsBruteForce(runs []segment, v Version, byteEnc encoding.Encoding) ([]segment, int) {
	n := len(runs)
	if n == 0 {
		return nil, 0
	}
	if n == 1 {
		return runs, groupBits(runs, v, byteEnc)
	}

	bestBits := -1
	var best []segment

	subsets := 1 << uint(n-1)
	for mask := 0; mask < subsets; mask++ {
		var groups []segment
		start := 0
		valid := true
		for i := 0; i < n-1; i++ {
			if getBitAsBool(mask, i) { // bit set: cut between run i and i+1.
				groups = append(groups, mergeRuns(runs[start:i+1]))
				start = i + 1
			}
		}
		groups = append(groups, mergeRuns(runs[start:n]))

		total := 0
		for _, g := range groups {
			b, err := g.totalBits(v, byteEnc)
			if err != nil {
				valid = false
				break
			}
			total += b
		}
		if !valid {
			continue
		}
		if bestBits == -1 || total < bestBits {
			bestBits = total
			best = groups
		}
	}

	return best, bestBits
}

// optimizeSegmentsHillClimbing implements the recursive two-cut hill-climbing
// search: within a contiguous run of segments, it tries every pair of cut
// points and recurses into whichever split (including "no cut", i.e. merging
// the whole span into one segment) scores lowest. It must always find the
// same total bit length as optimizeSegmentsBruteForce (see the equivalence
// property test).
func optimizeSegmentsHillClimbing(runs []segment, v Version, byteEnc encoding.Encoding) []segment {
	if len(runs) <= 1 {
		return runs
	}

	n := len(runs)
	bestBits := -1
	var bestParts [][]segment

	for left := 0; left < n; left++ {
		for right := left + 1; right < n; right++ {
			parts := [][]segment{runs[:left], runs[left:right], runs[right:]}
			var nonEmpty [][]segment
			total := 0
			valid := true
			for _, p := range parts {
				if len(p) == 0 {
					continue
				}
				b := groupBits(p, v, byteEnc)
				if b < 0 {
					valid = false
					break
				}
				total += b
				nonEmpty = append(nonEmpty, p)
			}
			if !valid {
				continue
			}
			if bestBits == -1 || total < bestBits {
				bestBits = total
				bestParts = nonEmpty
			}
		}
	}

	noCutBits := groupBits(runs, v, byteEnc)
	if bestBits == -1 || (noCutBits >= 0 && noCutBits <= bestBits) {
		return []segment{mergeRuns(runs)}
	}

	var result []segment
	for _, part := range bestParts {
		result = append(result, optimizeSegmentsHillClimbing(part, v, byteEnc)...)
	}
	return result
}
