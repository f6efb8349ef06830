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
	"fmt"
)

// nonNullTypeCreator is given to newTypeImpl for creating a NonNull.
type nonNullTypeCreator struct {
	typeDef NonNullTypeDefinition
}

// nonNullTypeCreator implements typeCreator.
var _ typeCreator = (*nonNullTypeCreator)(nil)

// TypeDefinition implements typeCreator.
func (creator *nonNullTypeCreator) TypeDefinition() TypeDefinition {
	return creator.typeDef
}

// LoadDataAndNew implements typeCreator.
func (creator *nonNullTypeCreator) LoadDataAndNew() (Type, error) {
	return &nonNull{}, nil
}

// Finalize implements typeCreator.
func (creator *nonNullTypeCreator) Finalize(t Type, typeDefResolver typeDefinitionResolver) error {
	innerType, err := typeDefResolver(creator.typeDef.ElementType())
	if err != nil {
		return err
	} else if innerType == nil {
		return NewError("Must provide an non-nil element type for NonNull.", ErrKindDefinition)
	} else if !IsNullableType(innerType) {
		return NewError(
			fmt.Sprintf("Expected a nullable type for NonNull but got an %s.", innerType),
			ErrKindDefinition)
	}

	nonNull := t.(*nonNull)
	nonNull.innerType = innerType
	nonNull.notation = fmt.Sprintf("%s!", innerType)
	return nil
}

// nonNullTypeDefinitionOf wraps a TypeDefinition of the inner type and implements
// NonNullTypeDefinition.
type nonNullTypeDefinitionOf struct {
	ThisIsNonNullTypeDefinition
	innerTypeDef TypeDefinition
}

var _ NonNullTypeDefinition = nonNullTypeDefinitionOf{}

// ElementType implements NonNullTypeDefinition.
func (typeDef nonNullTypeDefinitionOf) ElementType() TypeDefinition {
	return typeDef.innerTypeDef
}

// NonNullOf returns a NonNullTypeDefinition with the given TypeDefinition of inner type.
func NonNullOf(innerTypeDef TypeDefinition) NonNullTypeDefinition {
	return nonNullTypeDefinitionOf{
		innerTypeDef: innerTypeDef,
	}
}

// nonNullTypeDefinitionOfType wraps a Type of the inner type and implements
// NonNullTypeDefinition.
type nonNullTypeDefinitionOfType struct {
	ThisIsNonNullTypeDefinition
	innerType Type
}

var _ NonNullTypeDefinition = nonNullTypeDefinitionOfType{}

// ElementType implements NonNullTypeDefinition.
func (typeDef nonNullTypeDefinitionOfType) ElementType() TypeDefinition {
	return T(typeDef.innerType)
}

// NonNullOfType returns a NonNullTypeDefinition with the given Type of inner type.
func NonNullOfType(innerType Type) NonNullTypeDefinition {
	return nonNullTypeDefinitionOfType{
		innerType: innerType,
	}
}

// nonNull is our built-in implementation for NonNull. It is configured with and built from
// NonNullTypeDefinition.
type nonNull struct {
	ThisIsNonNullType
	innerType Type

	// notation is cached value for returning from String().
	notation string
}

var _ NonNull = (*nonNull)(nil)

// NewNonNullOfType defines a NonNull type from a given Type of inner type.
func NewNonNullOfType(innerType Type) (NonNull, error) {
	return NewNonNull(NonNullOfType(innerType))
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(innerType Type) NonNull {
	return MustNewNonNull(NonNullOfType(innerType))
}

// NewNonNullOf defines a NonNull type from a given TypeDefinition of inner type.
func NewNonNullOf(innerTypeDef TypeDefinition) (NonNull, error) {
	return NewNonNull(NonNullOf(innerTypeDef))
}

// MustNewNonNullOf is a panic-on-fail version of NewNonNullOf.
func MustNewNonNullOf(innerTypeDef TypeDefinition) NonNull {
	return MustNewNonNull(NonNullOf(innerTypeDef))
}

// NewNonNull defines a NonNull type from a NonNullTypeDefinition.
func NewNonNull(typeDef NonNullTypeDefinition) (NonNull, error) {
	t, err := newTypeImpl(&nonNullTypeCreator{
		typeDef: typeDef,
	})
	if err != nil {
		return nil, err
	}
	return t.(NonNull), nil
}

// MustNewNonNull is a convenience function equivalent to NewNonNull but panics on failure instead of
// returning an error.
func MustNewNonNull(typeDef NonNullTypeDefinition) NonNull {
	n, err := NewNonNull(typeDef)
	if err != nil {
		panic(err)
	}
	return n
}

// String implements fmt.Stringer.
func (n *nonNull) String() string {
	return n.notation
}

// UnwrappedType implements WrappingType.
func (n *nonNull) UnwrappedType() Type {
	return n.InnerType()
}

// InnerType implements NonNull.
func (n *nonNull) InnerType() Type {
	return n.innerType
}
