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

// PropertyGetter computes the value of a property from an instance.
type PropertyGetter func(instance *Instance) (interface{}, error)

// PropertySetter assigns the value of a property to an instance.
type PropertySetter func(instance *Instance, value interface{}) error

// Property is a computed attribute of the instances of a class. A property with a setter can be
// assigned with a keyword argument of its name when creating an instance.
type Property struct {
	// Description of the property
	Description string

	// Get reads the property. It may be nil for write-only properties.
	Get PropertyGetter

	// Set writes the property. It is nil for read-only properties.
	Set PropertySetter
}

// Settable returns true if the property has a setter.
func (p Property) Settable() bool {
	return p.Set != nil
}

// Properties maps property names to their definitions.
type Properties map[string]Property

// merge copies the properties in other that are not yet in props.
func (props Properties) merge(other Properties) {
	for name, property := range other {
		if _, exists := props[name]; !exists {
			props[name] = property
		}
	}
}
