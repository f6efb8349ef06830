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
	"sort"
	"sync"

	"github.com/botobag/graphene/graphql"
	"github.com/botobag/graphene/internal/util"

	"go.uber.org/zap"
)

// Class is a registered class declaration. Its GraphQL type is built when the class is registered
// and may be replaced by Implements afterwards.
type Class struct {
	registry *Registry
	name     string
	meta     Meta
	bases    []*Class

	// fields contains the normalized field declarations of the class merged with the ones inherited
	// from bases.
	fields graphql.Fields

	// properties contains the properties of the class including the inherited ones.
	properties Properties

	// mutex guards object.
	mutex  sync.RWMutex
	object graphql.Object
}

var (
	_ TypeProvider = (*Class)(nil)
	_ fmt.Stringer = (*Class)(nil)
)

func newClass(registry *Registry, config ClassConfig) (*Class, error) {
	if len(config.Name) == 0 {
		return nil, graphql.NewError("Must provide name for class.", graphql.ErrKindDefinition)
	}

	if config.Meta.Abstract && config.Meta.GraphQLType != nil {
		return nil, graphql.NewError(
			fmt.Sprintf(`Abstract class "%s" cannot carry a GraphQL type.`, config.Name),
			graphql.ErrKindDefinition)
	}

	bases := make([]*Class, len(config.Bases))
	for i, base := range config.Bases {
		if base == nil {
			return nil, graphql.NewError(
				fmt.Sprintf(`Base %d of class "%s" is nil.`, i, config.Name),
				graphql.ErrKindDefinition)
		}
		bases[i] = base
	}

	class := &Class{
		registry:   registry,
		name:       config.Name,
		meta:       config.Meta,
		bases:      bases,
		properties: Properties{},
		object:     config.Meta.GraphQLType,
	}

	// Properties: own ones first so they take precedence over inherited ones.
	class.properties.merge(config.Properties)
	for _, base := range bases {
		class.properties.merge(base.properties)
	}

	// Fields: inherited ones first in the order of bases, then own fields.
	var fields graphql.Fields
	for _, base := range bases {
		fields = inheritFields(fields, base.inheritedFields())
	}
	fields, err := overrideFields(fields, config.Fields)
	if err != nil {
		return nil, err
	}
	class.fields = fields

	return class, nil
}

// inheritedFields returns the fields that a class deriving from c inherits. A class with GraphQL
// type contributes the fields in its type. An abstract class contributes its field declarations.
func (c *Class) inheritedFields() graphql.Fields {
	if object := c.GraphQLType(); object != nil {
		fieldMap := object.Fields()
		fields := make(graphql.Fields, fieldMap.Len())
		for i := range fields {
			fields[i] = graphql.FieldConfigOf(fieldMap.At(i))
		}
		return fields
	}

	if c.meta.Abstract {
		return c.fields
	}

	return nil
}

// inheritFields appends the fields in src whose names are not yet in dst.
func inheritFields(dst graphql.Fields, src graphql.Fields) graphql.Fields {
	for _, config := range src {
		config = config.Normalize()
		if indexOfField(dst, config.Name) < 0 {
			dst = append(dst, config)
		}
	}
	return dst
}

// overrideFields adds own field declarations to the inherited ones. A declaration replaces the
// inherited field with the same name in place. Others are appended. Own declarations must have
// unique names.
func overrideFields(inherited graphql.Fields, own graphql.Fields) (graphql.Fields, error) {
	numInherited := len(inherited)
	fields := make(graphql.Fields, numInherited, numInherited+len(own))
	copy(fields, inherited)
	declared := make(map[string]bool, len(own))
	for _, config := range own {
		config = config.Normalize()
		if len(config.Name) > 0 {
			if declared[config.Name] {
				return nil, graphql.NewError(
					fmt.Sprintf(`Field "%s" is defined more than once.`, config.Name),
					graphql.ErrKindDefinition)
			}
			declared[config.Name] = true
		}
		if i := indexOfField(fields[:numInherited], config.Name); i >= 0 {
			fields[i] = config
		} else {
			fields = append(fields, config)
		}
	}
	return fields, nil
}

func indexOfField(fields graphql.Fields, name string) int {
	for i := range fields {
		if fields[i].Name == name {
			return i
		}
	}
	return -1
}

// Name returns the name of the class.
func (c *Class) Name() string {
	return c.name
}

// String implements fmt.Stringer.
func (c *Class) String() string {
	return c.name
}

// TypeName returns the name of the GraphQL type for the class.
func (c *Class) TypeName() string {
	if c.meta.GraphQLType != nil {
		return c.meta.GraphQLType.Name()
	}
	if len(c.meta.Name) > 0 {
		return c.meta.Name
	}
	return c.name
}

// Meta returns the options that the class was declared with.
func (c *Class) Meta() Meta {
	return c.meta
}

// Bases returns the base classes.
func (c *Class) Bases() []*Class {
	bases := make([]*Class, len(c.bases))
	copy(bases, c.bases)
	return bases
}

// IsAbstract returns true for an abstract class.
func (c *Class) IsAbstract() bool {
	return c.meta.Abstract
}

// Registry returns the registry in which the class was registered.
func (c *Class) Registry() *Registry {
	return c.registry
}

// DeclaredFields returns the field declarations of the class including the inherited ones.
func (c *Class) DeclaredFields() graphql.Fields {
	fields := make(graphql.Fields, len(c.fields))
	copy(fields, c.fields)
	return fields
}

// Property finds the property with the given name.
func (c *Class) Property(name string) (Property, bool) {
	property, exists := c.properties[name]
	return property, exists
}

// PropertyNames returns the names of properties in sorted order.
func (c *Class) PropertyNames() []string {
	names := make([]string, 0, len(c.properties))
	for name := range c.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// settableProperty finds the property with setter for the given name.
func (c *Class) settableProperty(name string) (Property, bool) {
	property, exists := c.properties[name]
	if !exists || !property.Settable() {
		return Property{}, false
	}
	return property, true
}

// GraphQLType returns the current GraphQL type of the class or nil for an abstract class.
func (c *Class) GraphQLType() graphql.Object {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.object
}

// ConstructType builds the GraphQL type for the class unless it is abstract or already has one.
func (c *Class) ConstructType() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.meta.Abstract || c.object != nil {
		return nil
	}

	const op graphql.Op = "objecttype.ConstructType"

	interfaces, err := resolveInterfaces(c.meta.Interfaces)
	if err != nil {
		return graphql.NewError(fmt.Sprintf(`Invalid interfaces for class "%s".`, c.name), op, err)
	}
	interfaceDefs := make([]graphql.InterfaceTypeDefinition, len(interfaces))
	for i, iface := range interfaces {
		interfaceDefs[i] = graphql.I(iface)
	}

	fields := make(graphql.Fields, len(c.fields))
	for i, config := range c.fields {
		if config.Resolver == nil {
			config.Resolver = DefaultFieldResolver()
		}
		fields[i] = config
	}

	typeName := c.TypeName()
	isTypeOf := c.meta.IsTypeOf
	if isTypeOf == nil {
		isTypeOf = defaultIsTypeOf(c.registry, typeName)
	}

	object, err := graphql.NewObject(&graphql.ObjectConfig{
		Name:        typeName,
		Description: util.TrimDocstring(c.meta.Description),
		Interfaces:  interfaceDefs,
		Fields:      fields,
		IsTypeOf:    isTypeOf,
	})
	if err != nil {
		return graphql.NewError(fmt.Sprintf(`Cannot construct GraphQL type for class "%s".`, c.name), op, err)
	}

	for _, iface := range object.Interfaces() {
		graphql.RecordImplementation(iface, object)
	}

	c.object = object
	return nil
}

// Implements adds the given interfaces to the GraphQL type of the class. The current type is not
// modified. Instead, the class is given a copy that implements both the existing and the given
// interfaces.
func (c *Class) Implements(interfaces ...interface{}) error {
	const op graphql.Op = "objecttype.Implements"

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.object == nil {
		return graphql.NewError(
			fmt.Sprintf(`Cannot add interfaces to abstract class "%s".`, c.name),
			op, graphql.ErrKindDefinition)
	}

	ifaces, err := resolveInterfaces(interfaces)
	if err != nil {
		return graphql.NewError(fmt.Sprintf(`Invalid interfaces for class "%s".`, c.name), op, err)
	}

	object, err := graphql.ExtendObject(c.object, ifaces...)
	if err != nil {
		return graphql.NewError(fmt.Sprintf(`Cannot add interfaces to class "%s".`, c.name), op, err)
	}

	for _, iface := range object.Interfaces() {
		graphql.RecordImplementation(iface, object)
	}
	c.object = object

	c.registry.logger.Debug("attached interfaces",
		zap.String("class", c.name),
		zap.String("type", object.Name()),
		zap.Strings("interfaces", interfaceNames(object.Interfaces())),
	)

	return nil
}

func interfaceNames(interfaces []graphql.Interface) []string {
	names := make([]string, len(interfaces))
	for i, iface := range interfaces {
		names[i] = iface.Name()
	}
	return names
}
