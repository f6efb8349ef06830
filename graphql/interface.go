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
	"sync"
)

// InterfaceConfig provides specification to define a Interface type. It is served as a convenient way to
// create a InterfaceTypeDefinition for creating an interface type.
type InterfaceConfig struct {
	ThisIsInterfaceTypeDefinition

	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// TypeResolver resolves the concrete Object type implementing the defining interface from given
	// value.
	TypeResolver TypeResolver

	// Fields in the Interface Type
	Fields Fields
}

var (
	_ TypeDefinition          = (*InterfaceConfig)(nil)
	_ InterfaceTypeDefinition = (*InterfaceConfig)(nil)
)

// TypeData implements InterfaceTypeDefinition.
func (config *InterfaceConfig) TypeData() InterfaceTypeData {
	return InterfaceTypeData{
		Name:        config.Name,
		Description: config.Description,
		Fields:      config.Fields,
	}
}

// NewTypeResolver implments InterfaceTypeDefinition.
func (config *InterfaceConfig) NewTypeResolver(iface Interface) (TypeResolver, error) {
	return config.TypeResolver, nil
}

// interfaceTypeCreator is given to newTypeImpl for creating a Interface.
type interfaceTypeCreator struct {
	typeDef InterfaceTypeDefinition
}

// interfaceTypeCreator implements typeCreator.
var _ typeCreator = (*interfaceTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *interfaceTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *interfaceTypeCreator) LoadDataAndNew() (Type, error) {
	data := creator.typeDef.TypeData()

	// Must provide a name.
	if len(data.Name) == 0 {
		return nil, NewError("Must provide name for Interface.", ErrKindDefinition)
	}

	return &iface{
		data: data,
	}, nil
}

// Finalize implements typeCreator.
func (creator *interfaceTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	iface := t.(*iface)

	typeResolver, err := creator.typeDef.NewTypeResolver(iface)
	if err != nil {
		return err
	}
	iface.typeResolver = typeResolver

	fieldMap, err := BuildFieldMap(iface.data.Fields, typeDefResolver)
	if err != nil {
		return err
	}
	iface.fields = fieldMap

	return nil
}

// ImplementationRecorder is implemented by an Interface that keeps back-references to the Object
// types implementing it.
type ImplementationRecorder interface {
	// RecordImplementation notes that the given Object implements the interface. An Object recorded
	// earlier under the same name is replaced.
	RecordImplementation(object Object)
}

// RecordImplementation notes on iface that object implements it. It does nothing if iface doesn't
// keep track of its implementations.
func RecordImplementation(iface Interface, object Object) {
	if recorder, ok := iface.(ImplementationRecorder); ok {
		recorder.RecordImplementation(object)
	}
}

// iface is our built-in implementation for Interface. It is configured with and built from
// InterfaceTypeDefinition.
type iface struct {
	ThisIsInterfaceType
	data         InterfaceTypeData
	typeResolver TypeResolver
	fields       FieldMap

	// mutex guards implementations.
	mutex           sync.RWMutex
	implementations []Object
}

var (
	_ Interface              = (*iface)(nil)
	_ ImplementationRecorder = (*iface)(nil)
)

// NewInterface initializes an instance of "iface".
func NewInterface(typeDef InterfaceTypeDefinition) (Interface, error) {
	t, err := newTypeImpl(&interfaceTypeCreator{
		typeDef: typeDef,
	})
	if err != nil {
		return nil, err
	}
	return t.(Interface), nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure instead of
// returning an error.
func MustNewInterface(typeDef InterfaceTypeDefinition) Interface {
	iface, err := NewInterface(typeDef)
	if err != nil {
		panic(err)
	}
	return iface
}

// TypeResolver implements AbstractType.
func (iface *iface) TypeResolver() TypeResolver {
	return iface.typeResolver
}

// Name implements TypeWithName.
func (iface *iface) Name() string {
	return iface.data.Name
}

// Description implements TypeWithDescription.
func (iface *iface) Description() string {
	return iface.data.Description
}

// String implments fmt.Stringer.
func (iface *iface) String() string {
	return iface.Name()
}

// Fields implements Interface.
func (iface *iface) Fields() FieldMap {
	return iface.fields
}

// Implementations implements Interface.
func (iface *iface) Implementations() []Object {
	iface.mutex.RLock()
	defer iface.mutex.RUnlock()
	result := make([]Object, len(iface.implementations))
	copy(result, iface.implementations)
	return result
}

// RecordImplementation implements ImplementationRecorder.
func (iface *iface) RecordImplementation(object Object) {
	iface.mutex.Lock()
	defer iface.mutex.Unlock()
	for i, existing := range iface.implementations {
		if existing.Name() == object.Name() {
			iface.implementations[i] = object
			return
		}
	}
	iface.implementations = append(iface.implementations, object)
}
