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

// attributeResolver reads the value of a field from the instance attribute named by its storage
// name.
type attributeResolver struct{}

var _ graphql.FieldResolver = attributeResolver{}

// Resolve implements graphql.FieldResolver.
func (attributeResolver) Resolve(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
	instance, ok := source.(*Instance)
	if !ok || instance == nil || info.Field == nil {
		return nil, nil
	}
	value, _ := instance.Get(info.Field.StorageName())
	return value, nil
}

// DefaultFieldResolver returns the resolver given to the fields declared without one.
func DefaultFieldResolver() graphql.FieldResolver {
	return attributeResolver{}
}
