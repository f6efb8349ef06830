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
	"fmt"

	"github.com/botobag/graphene/graphql"
)

// resolveInterface converts an entry of Meta.Interfaces into a graphql.Interface.
func resolveInterface(ref interface{}) (graphql.Interface, error) {
	switch ref := ref.(type) {
	case graphql.Interface:
		if ref != nil {
			return ref, nil
		}

	case InterfaceProvider:
		if iface := ref.GraphQLInterface(); iface != nil {
			return iface, nil
		}

	case graphql.InterfaceTypeDefinition:
		t, err := graphql.NewType(ref)
		if err != nil {
			return nil, err
		}
		if iface, ok := t.(graphql.Interface); ok && iface != nil {
			return iface, nil
		}
	}

	return nil, graphql.NewError(
		fmt.Sprintf("Expected an Interface but got %T.", ref),
		graphql.ErrKindDefinition)
}

func resolveInterfaces(refs []interface{}) ([]graphql.Interface, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	interfaces := make([]graphql.Interface, len(refs))
	for i, ref := range refs {
		iface, err := resolveInterface(ref)
		if err != nil {
			return nil, err
		}
		interfaces[i] = iface
	}
	return interfaces, nil
}
