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
	"context"
	"fmt"
	"sync"

	"github.com/botobag/graphene/graphql"

	"go.uber.org/zap"
)

// Registry keeps registered classes by the names of their GraphQL types. It is safe for concurrent
// use.
type Registry struct {
	mu      sync.RWMutex
	classes []*Class
	byName  map[string]*Class
	logger  *zap.Logger
}

// NewRegistry creates an empty registry. A nil logger discards logs.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		byName: make(map[string]*Class),
		logger: logger,
	}
}

// DefaultRegistry is used by the package-level functions.
var DefaultRegistry = NewRegistry(nil)

// Register declares a class and builds its GraphQL type. Registering two concrete classes with the
// same type name fails. Abstract classes have no type and never conflict.
func (r *Registry) Register(config ClassConfig) (*Class, error) {
	const op graphql.Op = "objecttype.Register"

	class, err := newClass(r, config)
	if err != nil {
		return nil, graphql.NewError("Invalid class declaration.", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	typeName := class.TypeName()
	if _, exists := r.byName[typeName]; exists && !class.IsAbstract() {
		return nil, graphql.NewError(
			fmt.Sprintf(`Type "%s" has already been registered.`, typeName),
			op, graphql.ErrKindDefinition, graphql.ErrorExtensions{
				"class": class.Name(),
				"type":  typeName,
			})
	}

	if err := class.ConstructType(); err != nil {
		return nil, err
	}

	if !class.IsAbstract() {
		r.byName[typeName] = class
	}
	r.classes = append(r.classes, class)

	var interfaces []string
	if object := class.GraphQLType(); object != nil {
		interfaces = interfaceNames(object.Interfaces())
	}
	r.logger.Debug("registered class",
		zap.String("class", class.Name()),
		zap.String("type", typeName),
		zap.Bool("abstract", class.IsAbstract()),
		zap.Strings("interfaces", interfaces),
	)

	return class, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(config ClassConfig) *Class {
	class, err := r.Register(config)
	if err != nil {
		panic(err)
	}
	return class
}

// Lookup finds the concrete class registered for the given type name or returns nil.
func (r *Registry) Lookup(typeName string) *Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[typeName]
}

// Classes returns the registered classes in registration order.
func (r *Registry) Classes() []*Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	classes := make([]*Class, len(r.classes))
	copy(classes, r.classes)
	return classes
}

// TypeOf determines the GraphQL Object type of a runtime value. Instances resolve to the current
// type of their class.
func (r *Registry) TypeOf(value interface{}) (graphql.Object, error) {
	const op graphql.Op = "objecttype.TypeOf"

	var object graphql.Object
	switch value := value.(type) {
	case *Instance:
		if value != nil && value.class != nil {
			object = value.Type()
		}

	case *Class:
		return nil, graphql.NewError(
			fmt.Sprintf(`Class "%s" is not an instance of itself.`, value), op)

	case ClassProvider:
		if class := value.GraphQLClass(); class != nil {
			object = class.GraphQLType()
		}

	case TypeProvider:
		object = value.GraphQLType()
	}

	if object == nil {
		return nil, graphql.NewError(
			fmt.Sprintf("Cannot determine the GraphQL type of value of type %T.", value), op)
	}
	return object, nil
}

// NewTypeResolver returns a graphql.TypeResolver that resolves values with TypeOf. It is given to
// Interface's whose implementations are classes in the registry.
func (r *Registry) NewTypeResolver() graphql.TypeResolver {
	return graphql.TypeResolverFunc(func(ctx context.Context, value interface{}) (graphql.Object, error) {
		return r.TypeOf(value)
	})
}

// Register declares a class in DefaultRegistry.
func Register(config ClassConfig) (*Class, error) {
	return DefaultRegistry.Register(config)
}

// MustRegister declares a class in DefaultRegistry and panics on error.
func MustRegister(config ClassConfig) *Class {
	return DefaultRegistry.MustRegister(config)
}

// Lookup finds the class in DefaultRegistry for the given type name.
func Lookup(typeName string) *Class {
	return DefaultRegistry.Lookup(typeName)
}

// TypeOf determines the GraphQL Object type of a value with DefaultRegistry.
func TypeOf(value interface{}) (graphql.Object, error) {
	return DefaultRegistry.TypeOf(value)
}

// Implements adds interfaces to the GraphQL type of the class.
func Implements(class *Class, interfaces ...interface{}) error {
	return class.Implements(interfaces...)
}
