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

package objecttype_test

import (
	"sync"

	"github.com/botobag/graphene/graphql"
	"github.com/botobag/graphene/objecttype"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type characterProvider struct {
	iface graphql.Interface
}

func (p characterProvider) GraphQLInterface() graphql.Interface {
	return p.iface
}

var _ = Describe("Class", func() {
	var (
		registry  *objecttype.Registry
		Character graphql.Interface
	)

	BeforeEach(func() {
		registry = objecttype.NewRegistry(nil)
		Character = graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "Character",
			Fields: graphql.Fields{
				stringField("name"),
			},
			TypeResolver: registry.NewTypeResolver(),
		})
	})

	Describe("type construction", func() {
		It("builds a GraphQL type from declared fields", func() {
			Human, err := registry.Register(objecttype.ClassConfig{
				Name: "Human",
				Fields: graphql.Fields{
					stringField("name"),
					stringField("home_planet"),
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			object := Human.GraphQLType()
			Expect(object).ShouldNot(BeNil())
			Expect(object.Name()).Should(Equal("Human"))
			Expect(object.Fields().Names()).Should(Equal([]string{"name", "homePlanet"}))
			Expect(object.Fields().Lookup("homePlanet").StorageName()).Should(Equal("home_planet"))
			Expect(object.Fields().Lookup("name").Resolver()).ShouldNot(BeNil())
			Expect(object.Interfaces()).Should(BeEmpty())
		})

		It("uses the name and the description in Meta", func() {
			Human := registry.MustRegister(objecttype.ClassConfig{
				Name: "HumanClass",
				Meta: objecttype.Meta{
					Name: "Human",
					Description: `
						A humanoid creature
						  from the Star Wars universe.
					`,
				},
			})
			Expect(Human.Name()).Should(Equal("HumanClass"))
			Expect(Human.String()).Should(Equal("HumanClass"))
			Expect(Human.TypeName()).Should(Equal("Human"))
			Expect(Human.GraphQLType().Name()).Should(Equal("Human"))
			Expect(Human.GraphQLType().Description()).Should(Equal("A humanoid creature\n  from the Star Wars universe."))
		})

		It("uses a prebuilt GraphQL type", func() {
			prebuilt := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Prebuilt",
			})
			class := registry.MustRegister(objecttype.ClassConfig{
				Name: "PrebuiltClass",
				Meta: objecttype.Meta{
					GraphQLType: prebuilt,
				},
				Fields: graphql.Fields{
					stringField("ignored"),
				},
			})
			Expect(class.GraphQLType()).Should(BeIdenticalTo(prebuilt))
			Expect(class.TypeName()).Should(Equal("Prebuilt"))
			Expect(registry.Lookup("Prebuilt")).Should(BeIdenticalTo(class))
		})

		It("does not build type for abstract class", func() {
			Base := registry.MustRegister(objecttype.ClassConfig{
				Name: "Base",
				Meta: objecttype.Meta{
					Abstract: true,
				},
				Fields: graphql.Fields{
					stringField("id"),
				},
			})
			Expect(Base.IsAbstract()).Should(BeTrue())
			Expect(Base.GraphQLType()).Should(BeNil())
			Expect(Base.ConstructType()).Should(Succeed())
			Expect(Base.GraphQLType()).Should(BeNil())
		})

		It("builds type only once", func() {
			Human := registry.MustRegister(objecttype.ClassConfig{
				Name: "Human",
				Fields: graphql.Fields{
					stringField("name"),
				},
			})
			object := Human.GraphQLType()
			Expect(Human.ConstructType()).Should(Succeed())
			Expect(Human.GraphQLType()).Should(BeIdenticalTo(object))

			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					Expect(Human.ConstructType()).Should(Succeed())
					Expect(Human.GraphQLType()).Should(BeIdenticalTo(object))
				}()
			}
			wg.Wait()
		})

		It("rejects class without name", func() {
			_, err := registry.Register(objecttype.ClassConfig{})
			Expect(err).Should(MatchDefinitionError("Invalid class declaration."))
			Expect(err.Error()).Should(ContainSubstring("Must provide name for class."))
		})

		It("rejects nil base", func() {
			_, err := registry.Register(objecttype.ClassConfig{
				Name:  "Orphan",
				Bases: []*objecttype.Class{nil},
			})
			Expect(err).Should(MatchDefinitionError("Invalid class declaration."))
			Expect(err.Error()).Should(ContainSubstring(`Base 0 of class "Orphan" is nil.`))
		})

		It("rejects abstract class with a GraphQL type", func() {
			_, err := registry.Register(objecttype.ClassConfig{
				Name: "Confused",
				Meta: objecttype.Meta{
					Abstract:    true,
					GraphQLType: graphql.MustNewObject(&graphql.ObjectConfig{Name: "Confused"}),
				},
			})
			Expect(err).Should(MatchDefinitionError("Invalid class declaration."))
		})

		It("rejects duplicated field names", func() {
			_, err := registry.Register(objecttype.ClassConfig{
				Name: "Duplicated",
				Fields: graphql.Fields{
					{Name: "name", StorageName: "first", Type: graphql.T(graphql.String())},
					{Name: "other", StorageName: "name", Type: graphql.T(graphql.String())},
					{StorageName: "other", Type: graphql.T(graphql.String())},
				},
			})
			Expect(err).Should(MatchDefinitionError("Invalid class declaration."))
			Expect(err.Error()).Should(ContainSubstring(`Field "other" is defined more than once.`))
			Expect(registry.Lookup("Duplicated")).Should(BeNil())
		})

		It("rejects duplicated field names that override an inherited field", func() {
			Base := registry.MustRegister(objecttype.ClassConfig{
				Name:   "Base",
				Fields: graphql.Fields{stringField("a")},
			})
			_, err := registry.Register(objecttype.ClassConfig{
				Name:  "Derived",
				Bases: []*objecttype.Class{Base},
				Fields: graphql.Fields{
					{StorageName: "a", Type: graphql.T(graphql.Int())},
					{StorageName: "a", Type: graphql.T(graphql.Boolean())},
				},
			})
			Expect(err).Should(MatchDefinitionError("Invalid class declaration."))
			Expect(err.Error()).Should(ContainSubstring(`Field "a" is defined more than once.`))
			Expect(registry.Lookup("Derived")).Should(BeNil())
		})
	})

	Describe("inheritance", func() {
		It("puts inherited fields first", func() {
			Node := registry.MustRegister(objecttype.ClassConfig{
				Name: "Node",
				Fields: graphql.Fields{
					{StorageName: "id", Type: graphql.T(graphql.ID())},
				},
			})
			Human := registry.MustRegister(objecttype.ClassConfig{
				Name:  "Human",
				Bases: []*objecttype.Class{Node},
				Fields: graphql.Fields{
					stringField("name"),
				},
			})
			Expect(Human.GraphQLType().Fields().Names()).Should(Equal([]string{"id", "name"}))
			Expect(Human.GraphQLType().Fields().Lookup("id").Type()).Should(Equal(graphql.ID()))
		})

		It("inherits declared fields of abstract base", func() {
			Base := registry.MustRegister(objecttype.ClassConfig{
				Name: "Base",
				Meta: objecttype.Meta{
					Abstract: true,
				},
				Fields: graphql.Fields{
					stringField("id"),
					stringField("created_at"),
				},
			})
			Human := registry.MustRegister(objecttype.ClassConfig{
				Name:  "Human",
				Bases: []*objecttype.Class{Base},
				Fields: graphql.Fields{
					stringField("name"),
				},
			})
			Expect(Human.GraphQLType().Fields().Names()).Should(Equal([]string{"id", "createdAt", "name"}))
			Expect(Base.DeclaredFields()).Should(HaveLen(2))
		})

		It("overrides inherited field in place", func() {
			Base := registry.MustRegister(objecttype.ClassConfig{
				Name: "Base",
				Meta: objecttype.Meta{
					Abstract: true,
				},
				Fields: graphql.Fields{
					stringField("id"),
					stringField("name"),
				},
			})
			Human := registry.MustRegister(objecttype.ClassConfig{
				Name:  "Human",
				Bases: []*objecttype.Class{Base},
				Fields: graphql.Fields{
					stringField("height"),
					{StorageName: "id", Type: graphql.T(graphql.Int())},
				},
			})
			fields := Human.GraphQLType().Fields()
			Expect(fields.Names()).Should(Equal([]string{"id", "name", "height"}))
			Expect(fields.Lookup("id").Type()).Should(Equal(graphql.Int()))
		})

		It("gives precedence to earlier bases", func() {
			First := registry.MustRegister(objecttype.ClassConfig{
				Name:   "First",
				Meta:   objecttype.Meta{Abstract: true},
				Fields: graphql.Fields{{StorageName: "value", Type: graphql.T(graphql.Int())}},
			})
			Second := registry.MustRegister(objecttype.ClassConfig{
				Name: "Second",
				Meta: objecttype.Meta{Abstract: true},
				Fields: graphql.Fields{
					{StorageName: "value", Type: graphql.T(graphql.String())},
					stringField("extra"),
				},
			})
			Derived := registry.MustRegister(objecttype.ClassConfig{
				Name:  "Derived",
				Bases: []*objecttype.Class{First, Second},
			})
			fields := Derived.GraphQLType().Fields()
			Expect(fields.Names()).Should(Equal([]string{"value", "extra"}))
			Expect(fields.Lookup("value").Type()).Should(Equal(graphql.Int()))
			Expect(Derived.Bases()).Should(Equal([]*objecttype.Class{First, Second}))
		})

		It("inherits properties", func() {
			getter := func(instance *objecttype.Instance) (interface{}, error) {
				return "base", nil
			}
			Base := registry.MustRegister(objecttype.ClassConfig{
				Name: "Base",
				Meta: objecttype.Meta{Abstract: true},
				Properties: objecttype.Properties{
					"label":   {Get: getter},
					"summary": {Get: getter},
				},
			})
			Derived := registry.MustRegister(objecttype.ClassConfig{
				Name:  "Derived",
				Bases: []*objecttype.Class{Base},
				Properties: objecttype.Properties{
					"label": {Description: "own label"},
				},
			})
			Expect(Derived.PropertyNames()).Should(Equal([]string{"label", "summary"}))
			label, ok := Derived.Property("label")
			Expect(ok).Should(BeTrue())
			Expect(label.Description).Should(Equal("own label"))
			_, ok = Derived.Property("unknown")
			Expect(ok).Should(BeFalse())
		})
	})

	Describe("interfaces", func() {
		It("accepts Interface, InterfaceTypeDefinition and InterfaceProvider", func() {
			nodeConfig := &graphql.InterfaceConfig{
				Name: "Node",
			}
			Entity := graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name: "Entity",
			})

			Human := registry.MustRegister(objecttype.ClassConfig{
				Name: "Human",
				Meta: objecttype.Meta{
					Interfaces: []interface{}{
						Character,
						nodeConfig,
						characterProvider{Entity},
					},
				},
				Fields: graphql.Fields{
					stringField("name"),
				},
			})

			Node := graphql.MustNewInterface(nodeConfig)
			Expect(Human.GraphQLType().Interfaces()).Should(Equal([]graphql.Interface{Character, Node, Entity}))
		})

		It("records the type on its interfaces", func() {
			Human := registry.MustRegister(objecttype.ClassConfig{
				Name: "Human",
				Meta: objecttype.Meta{
					Interfaces: []interface{}{Character},
				},
			})
			Droid := registry.MustRegister(objecttype.ClassConfig{
				Name: "Droid",
				Meta: objecttype.Meta{
					Interfaces: []interface{}{Character},
				},
			})
			Expect(Character.Implementations()).Should(Equal([]graphql.Object{
				Human.GraphQLType(),
				Droid.GraphQLType(),
			}))
		})

		It("rejects invalid interface", func() {
			_, err := registry.Register(objecttype.ClassConfig{
				Name: "Human",
				Meta: objecttype.Meta{
					Interfaces: []interface{}{"Character"},
				},
			})
			Expect(err).Should(MatchDefinitionError(`Invalid interfaces for class "Human".`))
			Expect(err.Error()).Should(ContainSubstring("Expected an Interface but got string."))

			_, err = registry.Register(objecttype.ClassConfig{
				Name: "Droid",
				Meta: objecttype.Meta{
					Interfaces: []interface{}{nil},
				},
			})
			Expect(err).Should(MatchDefinitionError(`Invalid interfaces for class "Droid".`))
		})
	})
})
