/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"strings"
)

func isLowerASCII(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func toUpperASCII(b byte) byte {
	if isLowerASCII(b) {
		return b - 'a' + 'A'
	}
	return b
}

func toLowerASCII(b byte) byte {
	if isUpperASCII(b) {
		return b - 'A' + 'a'
	}
	return b
}

// CamelCase converts a string of the form "/[_A-Za-z][_0-9A-Za-z]*/" [0] into camel case. For
// example, it returns "CamelCase" for "camel_case".
//
// [0]: https://graphql.github.io/graphql-spec/June2018/#Name
func CamelCase(s string) string {
	return camelCase(s, true)
}

// LowerCamelCase is like CamelCase but keeps the first letter in lower case. It turns an attribute
// name like "home_planet" into the field name "homePlanet".
func LowerCamelCase(s string) string {
	return camelCase(s, false)
}

func camelCase(s string, upperFirst bool) string {
	if len(s) == 0 {
		return s
	}

	var buf StringBuilder
	buf.Grow(len(s))

	upperNext := upperFirst
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			// Uppercase the letter after the separator unless nothing has been written yet.
			upperNext = upperFirst || buf.Len() > 0
			continue
		}

		switch {
		case upperNext:
			c = toUpperASCII(c)
		case buf.Len() == 0:
			c = toLowerASCII(c)
		}
		buf.WriteByte(c)
		upperNext = false
	}

	if buf.Len() == 0 {
		return strings.Trim(s, "_")
	}
	return buf.String()
}
