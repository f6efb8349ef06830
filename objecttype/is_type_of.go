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
	"context"

	"github.com/botobag/graphene/graphql"
)

// defaultIsTypeOf returns a predicate that reports whether the GraphQL type that registry
// resolves for a value is named typeName. Values whose type cannot be resolved are not of the type.
func defaultIsTypeOf(registry *Registry, typeName string) graphql.IsTypeOfFunc {
	return func(ctx context.Context, value interface{}) bool {
		object, err := registry.TypeOf(value)
		if err != nil || object == nil {
			return false
		}
		return object.Name() == typeName
	}
}
