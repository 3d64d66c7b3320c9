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

import "fmt"

// InvalidCharacterError is returned when a character is encodable in no mode
// under the currently configured byte encoding.
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character : %c", e.Char)
}

// InvalidPairError is returned when a requested (version, ecl) or
// (version, mode) combination is illegal, or when the search space admits no
// legal triple at all.
type InvalidPairError struct {
	Reason string
}

func (e *InvalidPairError) Error() string {
	if e.Reason == "" {
		return "invalid pair"
	}
	return fmt.Sprintf("invalid pair: %s", e.Reason)
}

// OverCapacityError is returned when legal (version, ecl) combinations exist
// but none of them has enough data-bit capacity for the text.
type OverCapacityError struct {
	Needed   int
	Capacity int
}

func (e *OverCapacityError) Error() string {
	if e.Capacity == 0 && e.Needed == 0 {
		return "over capacity"
	}
	return fmt.Sprintf("over capacity: data length = %d bits, max capacity = %d bits", e.Needed, e.Capacity)
}
