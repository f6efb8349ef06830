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
	"io"
	"unsafe"

	"github.com/botobag/graphene/graphql"
	"github.com/botobag/graphene/internal/util"

	"github.com/json-iterator/go"
)

// Instance is a value of a class. It stores attributes by the storage names of the fields. An
// Instance is not safe for concurrent modification. Instances are created with Class.New; a zero
// Instance belongs to no class and has no type.
type Instance struct {
	class      *Class
	attributes map[string]interface{}
}

var (
	_ ClassProvider                  = (*Instance)(nil)
	_ TypeProvider                   = (*Instance)(nil)
	_ graphql.ValueWithCustomInspect = (*Instance)(nil)
)

func newInstance(class *Class) *Instance {
	return &Instance{
		class:      class,
		attributes: make(map[string]interface{}),
	}
}

// Class returns the class of the instance.
func (inst *Instance) Class() *Class {
	return inst.class
}

// GraphQLClass implements ClassProvider.
func (inst *Instance) GraphQLClass() *Class {
	return inst.class
}

// Type returns the current GraphQL type of the instance's class or nil if it has no class.
func (inst *Instance) Type() graphql.Object {
	if inst.class == nil {
		return nil
	}
	return inst.class.GraphQLType()
}

// GraphQLType implements TypeProvider.
func (inst *Instance) GraphQLType() graphql.Object {
	return inst.Type()
}

// Has returns true if an attribute is stored under the name.
func (inst *Instance) Has(name string) bool {
	_, exists := inst.attributes[name]
	return exists
}

// Get returns the attribute stored under the name. When there's no such attribute, it reads the
// property with the name instead. ok is false if neither gives a value.
func (inst *Instance) Get(name string) (value interface{}, ok bool) {
	if value, exists := inst.attributes[name]; exists {
		return value, true
	}

	if inst.class == nil {
		return nil, false
	}

	property, exists := inst.class.Property(name)
	if !exists || property.Get == nil {
		return nil, false
	}

	value, err := property.Get(inst)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set stores an attribute.
func (inst *Instance) Set(name string, value interface{}) {
	if inst.attributes == nil {
		inst.attributes = make(map[string]interface{})
	}
	inst.attributes[name] = value
}

// Unset removes an attribute.
func (inst *Instance) Unset(name string) {
	delete(inst.attributes, name)
}

// Attributes returns a copy of the stored attributes.
func (inst *Instance) Attributes() map[string]interface{} {
	attributes := make(map[string]interface{}, len(inst.attributes))
	for name, value := range inst.attributes {
		attributes[name] = value
	}
	return attributes
}

// fields returns the fields of the instance's type or nil if the class has no type.
func (inst *Instance) fields() []graphql.Field {
	object := inst.Type()
	if object == nil {
		return nil
	}
	return object.Fields().Slice()
}

// String prints the instance in the form of `Human{name: "Luke", height: 1.72}`. Only the fields
// with stored attribute are printed.
func (inst *Instance) String() string {
	var b util.StringBuilder
	if inst.class != nil {
		b.WriteString(inst.class.TypeName())
	}
	b.WriteByte('{')
	written := 0
	for _, field := range inst.fields() {
		value, exists := inst.attributes[field.StorageName()]
		if !exists {
			continue
		}
		if written > 0 {
			b.WriteString(", ")
		}
		written++
		b.WriteString(field.StorageName())
		b.WriteString(": ")
		graphql.InspectTo(&b, value)
	}
	b.WriteByte('}')
	return b.String()
}

// Inspect implements graphql.ValueWithCustomInspect.
func (inst *Instance) Inspect(out io.Writer) error {
	_, err := io.WriteString(out, inst.String())
	return err
}

// MarshalJSON implements json.Marshaler.
func (inst *Instance) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(inst)
}

// instanceMarshaller implements jsoniter.ValEncoder to encode Instance to JSON.
type instanceMarshaller struct{}

var _ jsoniter.ValEncoder = instanceMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (instanceMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Instance)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder. The attributes are written under the names of their
// fields in the field order of the type.
func (instanceMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	inst := (*Instance)(ptr)
	stream.WriteObjectStart()
	written := 0
	for _, field := range inst.fields() {
		value, exists := inst.attributes[field.StorageName()]
		if !exists {
			continue
		}
		if written > 0 {
			stream.WriteMore()
		}
		written++
		stream.WriteObjectField(field.Name())
		stream.WriteVal(value)
	}
	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("objecttype.Instance", instanceMarshaller{})
}
