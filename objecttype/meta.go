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

// Meta carries the options of a class that are not fields.
type Meta struct {
	// Name of the GraphQL type; Default to the name of the class.
	Name string

	// Description of the GraphQL type. Common leading whitespace is removed so it can be written as
	// an indented raw string.
	Description string

	// GraphQLType is a prebuilt Object for the class. When given, the class uses it as is and no
	// Object is constructed.
	GraphQLType graphql.Object

	// Interfaces implemented by the class. Each entry is a graphql.Interface, a
	// graphql.InterfaceTypeDefinition or an InterfaceProvider.
	Interfaces []interface{}

	// Abstract classes don't have GraphQL type. They only share their fields and properties with
	// the classes deriving from them.
	Abstract bool

	// IsTypeOf overrides the default predicate that decides whether a value is an instance of the
	// class.
	IsTypeOf graphql.IsTypeOfFunc
}

// ClassConfig declares a class.
type ClassConfig struct {
	// Name of the class
	Name string

	// Meta options
	Meta Meta

	// Bases are the classes to inherit fields and properties from. Earlier bases take precedence
	// over later ones.
	Bases []*Class

	// Fields declared by the class. They override the inherited fields with the same name.
	Fields graphql.Fields

	// Properties declared by the class. They override the inherited properties with the same name.
	Properties Properties
}

// InterfaceProvider is implemented by values that can be listed in Meta.Interfaces or given to
// Implements in place of a graphql.Interface.
type InterfaceProvider interface {
	GraphQLInterface() graphql.Interface
}

// TypeProvider is implemented by values that know their GraphQL Object type.
type TypeProvider interface {
	GraphQLType() graphql.Object
}

// ClassProvider is implemented by values that are instances of a class.
type ClassProvider interface {
	GraphQLClass() *Class
}
