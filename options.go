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
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// options collects Encode's tunables. byteEncodingName is resolved to a
// concrete encoding.Encoding inside Encode, so a bad name surfaces as an
// ordinary returned error rather than a panic from an option constructor.
type options struct {
	byteEncodingName string
	maxVersion       Version
	minVersion       Version
	mask             Mask
	logger           *slog.Logger
}

// Option configures a call to Encode.
type Option func(*options)

func defaultOptions() options {
	return options{
		byteEncodingName: "shift-jis",
		maxVersion:       M4,
		minVersion:       M1,
		mask:             autoMask,
		logger:           slog.Default(),
	}
}

// WithByteEncoding selects the text encoding Byte mode uses, by name (e.g.
// "shift-jis", "utf-8"). It has no effect on Kanji mode, which is always
// Shift-JIS.
func WithByteEncoding(name string) Option {
	return func(o *options) {
		o.byteEncodingName = name
	}
}

// WithMaxVersion caps the analyzer's version search.
func WithMaxVersion(v Version) Option {
	return func(o *options) {
		o.maxVersion = v
	}
}

// WithMinVersion raises the analyzer's version search floor.
func WithMinVersion(v Version) Option {
	return func(o *options) {
		o.minVersion = v
	}
}

// WithMask forces a specific mask instead of scoring and auto-selecting one.
func WithMask(m Mask) Option {
	return func(o *options) {
		o.mask = m
	}
}

// WithLogger routes Encode's diagnostic logging through logger instead of
// the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// resolveByteEncoding maps a configured encoding name to a concrete
// encoding.Encoding via the WHATWG encoding index, defaulting to Shift-JIS's
// canonical name so the zero value of options always resolves.
func resolveByteEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = "shift-jis"
	}
	return htmlindex.Get(name)
}
