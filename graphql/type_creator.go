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

// createdTypes maps a TypeDefinition to the *newTypeResult of the Type created for it.
var createdTypes sync.Map

// newTypeResult is the value type of createdTypes.
type newTypeResult struct {
	// The created type
	t Type

	// Any error occurred during creation
	err error

	// Closed when the creation completes (successfully or not).
	done chan struct{}
}

func (result *newTypeResult) wait() (Type, error) {
	<-result.done
	return result.t, result.err
}

func (result *newTypeResult) complete() {
	close(result.done)
}

func (result *newTypeResult) completeWithError(typeDef TypeDefinition, err error) {
	result.t = nil
	result.err = err
	// Forget the failure so a corrected definition can be retried by later callers.
	createdTypes.Delete(typeDef)
	close(result.done)
}

// typeDefinitionResolver resolves a TypeDefinition into a Type during type finalization.
type typeDefinitionResolver func(typeDef TypeDefinition) (Type, error)

// typeCreator defines interfaces to be required to work with newTypeImpl to create a type instance.
type typeCreator interface {
	// TypeDefinition returns the TypeDefinition instance processed by this creator.
	TypeDefinition() TypeDefinition

	// LoadDataAndNew loads type data from TypeDefinition and create a "semi-initialized" Type
	// instance for return.
	LoadDataAndNew() (Type, error)

	// Finalize completes type creation for t that was returned from LoadDataAndNew. Any type
	// reference resolution (such as the types of fields) must be done here. Because t has been
	// registered when Finalize is called, types that refer to each other (or to themselves) resolve
	// to the semi-initialized instance instead of looping.
	Finalize(t Type, typeDefResolver typeDefinitionResolver) error
}

// nilTypeCreator resolves a nil TypeDefinition to a nil Type without causing any error. A nil Type
// is usually invalid but it is up to the caller to reject it.
type nilTypeCreator struct{}

var _ typeCreator = nilTypeCreator{}

// TypeDefinition implements typeCreator.
func (nilTypeCreator) TypeDefinition() TypeDefinition {
	return nil
}

// LoadDataAndNew implements typeCreator.
func (nilTypeCreator) LoadDataAndNew() (Type, error) {
	return nil, nil
}

// Finalize implements typeCreator.
func (nilTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	return nil
}

func newCreatorFor(typeDef TypeDefinition) typeCreator {
	switch typeDef := typeDef.(type) {
	case ScalarTypeDefinition:
		return &scalarTypeCreator{typeDef}
	case ObjectTypeDefinition:
		return &objectTypeCreator{typeDef}
	case InterfaceTypeDefinition:
		return &interfaceTypeCreator{typeDef}
	case ListTypeDefinition:
		return &listTypeCreator{typeDef}
	case NonNullTypeDefinition:
		return &nonNullTypeCreator{typeDef}
	case nil:
		return nilTypeCreator{}
	}
	panic("unknown type of TypeDefinition")
}

// newTypeImpl is the internal implementation of NewType for creating a type instance from given
// TypeDefinition. Call NewType (or its variants such as NewObject) instead of calling it directly.
func newTypeImpl(creator typeCreator) (Type, error) {
	if creator.TypeDefinition() == nil {
		return nil, nil
	}

	if result, ok := createdTypes.Load(creator.TypeDefinition()); ok {
		return result.(*newTypeResult).wait()
	}

	return newTypeImplInternal(creator, map[TypeDefinition]Type{})
}

// newTypeImplInternal should only be called from newTypeImpl and from itself (recursively).
// finalizingTypeDefs contains set of TypeDefinition's that are finalizing in the call stack.
func newTypeImplInternal(creator typeCreator, finalizingTypeDefs map[TypeDefinition]Type) (Type, error) {
	typeDef := creator.TypeDefinition()

	// Load data without resolving any referenced TypeDefinition.
	typeInstance, err := creator.LoadDataAndNew()
	if err != nil {
		return nil, err
	}

	result := &newTypeResult{
		t:    typeInstance,
		done: make(chan struct{}),
	}

	if existing, loaded := createdTypes.LoadOrStore(typeDef, result); loaded {
		// Someone sneaked in and got ticket to create the type. Wait for the completion.
		return existing.(*newTypeResult).wait()
	}

	typeDefResolver := typeDefinitionResolver(func(typeDef TypeDefinition) (Type, error) {
		switch typeDef := typeDef.(type) {
		case nil:
			return nil, nil

		case typeWrapperTypeDefinition:
			return typeDef.Type(), nil

		case interfaceTypeWrapperTypeDefinition:
			return typeDef.Type(), nil
		}

		// A definition being finalized up the stack resolves to its semi-initialized type.
		if t, exists := finalizingTypeDefs[typeDef]; exists {
			return t, nil
		}

		if result, ok := createdTypes.Load(typeDef); ok {
			return result.(*newTypeResult).wait()
		}

		return newTypeImplInternal(newCreatorFor(typeDef), finalizingTypeDefs)
	})

	finalizingTypeDefs[typeDef] = typeInstance
	defer delete(finalizingTypeDefs, typeDef)

	if err := creator.Finalize(typeInstance, typeDefResolver); err != nil {
		result.completeWithError(typeDef, err)
		return nil, err
	}

	result.complete()
	return typeInstance, nil
}
