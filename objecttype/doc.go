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

// Package objecttype turns declarative class declarations into GraphQL Object types.
//
// A class is declared with a ClassConfig and registered into a Registry. Registration builds the
// class's graphql.Object exactly once from its own fields, the fields inherited from its base
// classes and the interfaces named in its Meta. Interfaces may be attached later with Implements,
// which replaces the class's Object with an extended copy and leaves the original untouched.
//
//	Human := objecttype.MustRegister(objecttype.ClassConfig{
//		Name: "Human",
//		Meta: objecttype.Meta{
//			Interfaces: []interface{}{Character},
//		},
//		Fields: graphql.Fields{
//			{StorageName: "name", Type: graphql.T(graphql.String())},
//			{StorageName: "home_planet", Type: graphql.T(graphql.String())},
//		},
//	})
//
//	luke, err := Human.New([]interface{}{"Luke"}, objecttype.Kwargs{"home_planet": "Tatooine"})
//
// Instances created by New are bags of attributes keyed by the storage names of the fields. Fields
// without a resolver read their value from the attribute with the same storage name.
package objecttype
