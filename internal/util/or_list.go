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

// OrList transforms a string array like ["A", "B", "C"] into `A, B, or C`. If quoted is true, return
// `"A", "B", or "C"`. If a positive integer is provided in limit, only the first limit items are
// listed.
func OrList(items []string, limit int, quoted bool) string {
	var b StringBuilder
	WriteOrList(&b, items, limit, quoted)
	return b.String()
}

// WriteOrList is like OrList but writes the result to out.
func WriteOrList(out StringWriter, items []string, limit int, quoted bool) {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	numItems := len(items)
	for i, item := range items {
		if i > 0 {
			if numItems > 2 {
				out.WriteString(", ")
			} else {
				out.WriteString(" ")
			}
			if i == numItems-1 {
				out.WriteString("or ")
			}
		}

		if quoted {
			out.WriteString(`"`)
			out.WriteString(item)
			out.WriteString(`"`)
		} else {
			out.WriteString(item)
		}
	}
}
