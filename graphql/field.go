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

package graphql

import (
	"context"
	"fmt"

	"github.com/botobag/graphene/internal/util"
)

// ResolveInfo carries the Object and the Field whose value is being resolved.
type ResolveInfo struct {
	// Object that contains the field being resolved
	Object Object

	// Field being resolved
	Field Field
}

// FieldResolver resolves field value during execution.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
type FieldResolver interface {
	// Context carries deadlines and cancelation signals.
	//
	// Source is the "source" value. It contains the value that has been resolved by field's enclosing
	// object.
	//
	// Info describes the field being resolved.
	Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// Resolve calls f(ctx, source, info).
func (f FieldResolverFunc) Resolve(
	ctx context.Context,
	source interface{},
	info ResolveInfo) (interface{}, error) {
	return f(ctx, source, info)
}

// FieldResolverFunc implements FieldResolver.
var _ FieldResolver = FieldResolverFunc(nil)

// Fields lists the definitions of the fields in an Object or an Interface. Unlike a map, the order
// of the entries is the declaration order of the fields and is preserved in the built FieldMap.
type Fields []FieldConfig

// FieldConfig provides definition of a field when defining an object.
type FieldConfig struct {
	// Name of the defining field as exposed in the schema. When empty, it is derived from
	// StorageName in lower camel case (e.g., "home_planet" becomes "homePlanet").
	Name string

	// StorageName is the attribute name used to hold the field value on an instance. When empty, it
	// is the same as Name.
	StorageName string

	// Description of the defining field
	Description string

	// TypeDefinition instance of the defining field; It will be resolved during type initialization.
	Type TypeDefinition

	// Resolver for resolving field value during execution
	Resolver FieldResolver

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// Normalize returns a copy of the config with both Name and StorageName filled.
func (config FieldConfig) Normalize() FieldConfig {
	if len(config.Name) == 0 {
		config.Name = util.LowerCamelCase(config.StorageName)
	}
	if len(config.StorageName) == 0 {
		config.StorageName = config.Name
	}
	return config
}

// FieldConfigOf returns a FieldConfig that defines a field the same as the given one. It is used to
// inherit fields from an existing Object.
func FieldConfigOf(field Field) FieldConfig {
	return FieldConfig{
		Name:        field.Name(),
		StorageName: field.StorageName(),
		Description: field.Description(),
		Type:        T(field.Type()),
		Resolver:    field.Resolver(),
		Deprecation: field.Deprecation(),
	}
}

// FieldMap is an ordered collection of Field's keyed by field name. The zero value is an empty map.
// A FieldMap never changes once built so it can be shared between Object's.
type FieldMap struct {
	fields []Field
	index  map[string]int
}

// NewFieldMap builds a FieldMap from already created fields. Field names must be unique.
func NewFieldMap(fields ...Field) (FieldMap, error) {
	if len(fields) == 0 {
		return FieldMap{}, nil
	}

	m := FieldMap{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, field := range fields {
		name := field.Name()
		if _, exists := m.index[name]; exists {
			return FieldMap{}, NewError(fmt.Sprintf(`Field "%s" is defined more than once.`, name), ErrKindDefinition)
		}
		m.index[name] = len(m.fields)
		m.fields = append(m.fields, field)
	}
	return m, nil
}

// Len returns the number of fields.
func (m FieldMap) Len() int {
	return len(m.fields)
}

// At returns the i-th field in declaration order.
func (m FieldMap) At(i int) Field {
	return m.fields[i]
}

// Lookup finds the field with given name or return nil if there's no such one.
func (m FieldMap) Lookup(name string) Field {
	if i, exists := m.index[name]; exists {
		return m.fields[i]
	}
	return nil
}

// Slice returns the fields in declaration order. The returned slice must not be modified.
func (m FieldMap) Slice() []Field {
	return m.fields
}

// Names returns the field names in declaration order.
func (m FieldMap) Names() []string {
	names := make([]string, len(m.fields))
	for i, field := range m.fields {
		names[i] = field.Name()
	}
	return names
}

// BuildFieldMap builds a FieldMap from given Fields.
func BuildFieldMap(fieldConfigs Fields, typeDefResolver typeDefinitionResolver) (FieldMap, error) {
	if len(fieldConfigs) == 0 {
		return FieldMap{}, nil
	}

	fields := make([]Field, len(fieldConfigs))
	for i, fieldConfig := range fieldConfigs {
		fieldConfig = fieldConfig.Normalize()
		if len(fieldConfig.Name) == 0 {
			return FieldMap{}, NewError("Must provide name for field.", ErrKindDefinition)
		}

		fieldType, err := typeDefResolver(fieldConfig.Type)
		if err != nil {
			return FieldMap{}, err
		}

		fields[i] = &field{
			config: fieldConfig,
			ttype:  fieldType,
		}
	}

	return NewFieldMap(fields...)
}

// Field representing a field in an object or an interface. It yields a value of a specific type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Field interface {
	// Name of the field
	Name() string

	// StorageName is the attribute name that holds the field value on an instance.
	StorageName() string

	// Description of the field
	Description() string

	// Type of value yielded by the field
	Type() Type

	// Resolver determines the result value for the field from the value resolved by parent Object.
	//
	// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
	Resolver() FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation() *Deprecation
}

// field is our built-in implementation for Field.
type field struct {
	config FieldConfig
	ttype  Type
}

var _ Field = (*field)(nil)

// Name implements Field.
func (f *field) Name() string {
	return f.config.Name
}

// StorageName implements Field.
func (f *field) StorageName() string {
	return f.config.StorageName
}

// Description implements Field.
func (f *field) Description() string {
	return f.config.Description
}

// Type implements Field.
func (f *field) Type() Type {
	return f.ttype
}

// Resolver implements Field.
func (f *field) Resolver() FieldResolver {
	return f.config.Resolver
}

// Deprecation implements Field.
func (f *field) Deprecation() *Deprecation {
	return f.config.Deprecation
}
