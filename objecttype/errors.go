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

package objecttype

import (
	"github.com/botobag/graphene/graphql"
)

// IsArgumentCountError returns true if err was caused by passing more positional arguments than
// fields to New.
func IsArgumentCountError(err error) bool {
	return graphql.IsErrorKind(err, graphql.ErrKindArgumentCount)
}

// IsInvalidKeywordError returns true if err was caused by passing an unknown keyword argument to
// New.
func IsInvalidKeywordError(err error) bool {
	return graphql.IsErrorKind(err, graphql.ErrKindInvalidKeyword)
}
