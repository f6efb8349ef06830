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
	"github.com/botobag/graphene/internal/util"
)

// Kwargs maps keyword arguments to their values.
type Kwargs map[string]interface{}

// New creates an instance of the class. Positional arguments are assigned to the fields of the
// class's current type in order. Keyword arguments are assigned to the fields by storage name and
// then to the properties with setter. A keyword argument for a field that has been assigned
// positionally is ignored. Fields that are given no value are left unset. kwargs is not modified.
//
// It fails with an error of graphql.ErrKindArgumentCount if there are more positional arguments
// than fields and with an error of graphql.ErrKindInvalidKeyword if a keyword argument names
// neither a field nor a settable property.
func (c *Class) New(args []interface{}, kwargs Kwargs) (*Instance, error) {
	const op graphql.Op = "objecttype.New"

	object := c.GraphQLType()
	if object == nil {
		return nil, graphql.NewError(
			fmt.Sprintf(`Cannot instantiate abstract class "%s".`, c.name),
			op, graphql.ErrKindDefinition)
	}

	fields := object.Fields()
	numFields := fields.Len()
	if len(args) > numFields {
		return nil, graphql.NewError("Number of args exceeds number of fields",
			op, graphql.ErrKindArgumentCount, graphql.ErrorExtensions{
				"class":     c.name,
				"numArgs":   len(args),
				"numFields": numFields,
			})
	}

	var remaining Kwargs
	if len(kwargs) > 0 {
		remaining = make(Kwargs, len(kwargs))
		for key, value := range kwargs {
			remaining[key] = value
		}
	}

	instance := newInstance(c)

	// Positional arguments take precedence over keyword arguments for the same field.
	for i, value := range args {
		storageName := fields.At(i).StorageName()
		instance.attributes[storageName] = value
		delete(remaining, storageName)
	}

	if len(remaining) == 0 {
		return instance, nil
	}

	for i := len(args); i < numFields; i++ {
		storageName := fields.At(i).StorageName()
		if value, exists := remaining[storageName]; exists {
			instance.attributes[storageName] = value
			delete(remaining, storageName)
		}
	}

	for key, value := range remaining {
		property, ok := c.settableProperty(key)
		if !ok {
			continue
		}
		if err := property.Set(instance, value); err != nil {
			return nil, graphql.NewError(
				fmt.Sprintf(`Cannot set property "%s" of class "%s".`, key, c.name), op, err)
		}
		delete(remaining, key)
	}

	if len(remaining) > 0 {
		// Report any one of them.
		var key string
		for key = range remaining {
			break
		}
		return nil, newInvalidKeywordError(op, c, fields, key)
	}

	return instance, nil
}

// MustNew is like New but panics on error.
func (c *Class) MustNew(args []interface{}, kwargs Kwargs) *Instance {
	instance, err := c.New(args, kwargs)
	if err != nil {
		panic(err)
	}
	return instance
}

// minSuggestionKeyLen is the shortest keyword that gets a "Did you mean" hint.
const minSuggestionKeyLen = 2

func newInvalidKeywordError(op graphql.Op, c *Class, fields graphql.FieldMap, key string) error {
	var b util.StringBuilder
	fmt.Fprintf(&b, "'%s' is an invalid keyword argument for this function", key)

	if len(key) >= minSuggestionKeyLen {
		writeKeywordSuggestions(&b, c, fields, key)
	}

	return graphql.NewError(b.String(), op, graphql.ErrKindInvalidKeyword, graphql.ErrorExtensions{
		"class":    c.name,
		"argument": key,
	})
}

func writeKeywordSuggestions(b *util.StringBuilder, c *Class, fields graphql.FieldMap, key string) {
	options := make([]string, 0, fields.Len())
	for _, field := range fields.Slice() {
		options = append(options, field.StorageName())
	}
	for _, name := range c.PropertyNames() {
		if property, _ := c.Property(name); property.Settable() {
			options = append(options, name)
		}
	}

	if suggestions := util.SuggestionList(key, options); len(suggestions) > 0 {
		b.WriteString(". Did you mean ")
		util.WriteOrList(b, suggestions, 5, true)
		b.WriteString("?")
	}
}
