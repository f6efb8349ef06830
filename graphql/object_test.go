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

package graphql_test

import (
	"context"

	"github.com/botobag/graphene/graphql"
	"github.com/botobag/graphene/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Object", func() {
	var InterfaceType graphql.Interface

	BeforeEach(func() {
		var err error
		InterfaceType, err = graphql.NewInterface(&graphql.InterfaceConfig{
			Name: "Interface",
		})
		Expect(err).ShouldNot(HaveOccurred())
	})

	// graphql-js/src/type/__tests__/definition-test.js
	It("defines an object type with deprecated field", func() {
		TypeWithDeprecatedField, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "foo",
			Fields: graphql.Fields{
				{
					Name: "bar",
					Type: graphql.T(graphql.String()),
					Deprecation: &graphql.Deprecation{
						Reason: "A terrible reason",
					},
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		bar := TypeWithDeprecatedField.Fields().Lookup("bar")
		Expect(bar).ShouldNot(BeNil())
		Expect(bar.Type()).Should(Equal(graphql.String()))
		Expect(bar.Deprecation()).Should(Equal(&graphql.Deprecation{
			Reason: "A terrible reason",
		}))
		Expect(bar.Deprecation().Defined()).Should(BeTrue())
		Expect(bar.Name()).Should(Equal("bar"))
		Expect(bar.StorageName()).Should(Equal("bar"))
	})

	It("keeps fields in declaration order", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Ordered",
			Fields: graphql.Fields{
				{Name: "zeta", Type: graphql.T(graphql.String())},
				{Name: "alpha", Type: graphql.T(graphql.String())},
				{StorageName: "middle_name", Type: graphql.T(graphql.String())},
			},
		})
		Expect(object.Fields().Names()).Should(Equal([]string{"zeta", "alpha", "middleName"}))
		Expect(object.Fields().At(2).StorageName()).Should(Equal("middle_name"))
	})

	Describe("interfaces", func() {
		It("accepts an Object type with array interfaces", func() {
			objType, err := graphql.NewObject(&graphql.ObjectConfig{
				Name: "SomeObject",
				Interfaces: []graphql.InterfaceTypeDefinition{
					graphql.I(InterfaceType),
				},
				Fields: graphql.Fields{
					{
						Name: "f",
						Type: graphql.T(graphql.String()),
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			Expect(objType.Interfaces()).Should(Equal([]graphql.Interface{InterfaceType}))
		})

		It("accepts an Object type referencing interface by definition", func() {
			interfaceConfig := &graphql.InterfaceConfig{
				Name: "ByDefinition",
			}
			objType, err := graphql.NewObject(&graphql.ObjectConfig{
				Name:       "ObjectWithInterfaceDefinition",
				Interfaces: []graphql.InterfaceTypeDefinition{interfaceConfig},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(objType.Interfaces()).Should(HaveLen(1))
			Expect(objType.Interfaces()[0]).Should(BeIdenticalTo(graphql.MustNewInterface(interfaceConfig)))
		})

		It("accepts empty interfaces", func() {
			objType, err := graphql.NewObject(&graphql.ObjectConfig{
				Name: "SomeObjectWithoutInterfaces",
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(objType.Interfaces()).Should(BeEmpty())

			objType, err = graphql.NewObject(&graphql.ObjectConfig{
				Name:       "SomeObjectWithEmptyInterfacesSet",
				Interfaces: []graphql.InterfaceTypeDefinition{},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(objType.Interfaces()).Should(BeEmpty())
		})

		It("rejects nil interface", func() {
			_, err := graphql.NewObject(&graphql.ObjectConfig{
				Name:       "ObjectWithNilInterface",
				Interfaces: []graphql.InterfaceTypeDefinition{graphql.I(nil)},
			})
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Object "ObjectWithNilInterface" must only implement Interface types.`),
				testutil.KindIs(graphql.ErrKindDefinition),
			))
		})
	})

	It("does not mutate passed field definitions", func() {
		fields := graphql.Fields{
			{
				Name: "field1",
				Type: graphql.T(graphql.String()),
			},
			{
				StorageName: "field_2",
				Type:        graphql.T(graphql.String()),
			},
		}

		testObject1, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:   "Test1",
			Fields: fields,
		})
		Expect(err).ShouldNot(HaveOccurred())

		testObject2, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:   "Test2",
			Fields: fields,
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(testObject1.Fields()).Should(Equal(testObject2.Fields()))
		Expect(fields).Should(Equal(graphql.Fields{
			{
				Name: "field1",
				Type: graphql.T(graphql.String()),
			},
			{
				StorageName: "field_2",
				Type:        graphql.T(graphql.String()),
			},
		}))
	})

	It("rejects an Object type without name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Must provide name for Object."),
			testutil.KindIs(graphql.ErrKindDefinition),
		))
	})

	It("rejects an Object type with duplicated field names", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "Duplicated",
			Fields: graphql.Fields{
				{Name: "name", Type: graphql.T(graphql.String())},
				{StorageName: "name", Type: graphql.T(graphql.String())},
			},
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Field "name" is defined more than once.`),
			testutil.KindIs(graphql.ErrKindDefinition),
		))
	})

	It("rejects a field without name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "Unnamed",
			Fields: graphql.Fields{
				{Type: graphql.T(graphql.String())},
			},
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Must provide name for field."),
			testutil.KindIs(graphql.ErrKindDefinition),
		))
	})

	It("creates a self-referencing Object", func() {
		nodeConfig := &graphql.ObjectConfig{
			Name: "Node",
		}
		nodeConfig.Fields = graphql.Fields{
			{Name: "next", Type: nodeConfig},
			{Name: "children", Type: graphql.ListOf(nodeConfig)},
		}

		node, err := graphql.NewObject(nodeConfig)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(node.Fields().Lookup("next").Type()).Should(BeIdenticalTo(node))
		Expect(node.Fields().Lookup("children").Type().(graphql.List).ElementType()).Should(BeIdenticalTo(node))
	})

	Describe("IsTypeOf", func() {
		type human struct{}

		It("uses the configured predicate", func() {
			object := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "HumanTypeOf",
				IsTypeOf: func(ctx context.Context, value interface{}) bool {
					_, ok := value.(human)
					return ok
				},
			})
			Expect(object.IsTypeOf(context.Background(), human{})).Should(BeTrue())
			Expect(object.IsTypeOf(context.Background(), 1)).Should(BeFalse())
		})

		It("returns false without predicate", func() {
			object := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "NoTypeOf",
			})
			Expect(object.IsTypeOf(context.Background(), human{})).Should(BeFalse())
		})
	})

	Describe("ExtendObject", func() {
		var (
			original graphql.Object
			other    graphql.Interface
		)

		BeforeEach(func() {
			original = graphql.MustNewObject(&graphql.ObjectConfig{
				Name:       "Extendable",
				Interfaces: []graphql.InterfaceTypeDefinition{graphql.I(InterfaceType)},
				Fields: graphql.Fields{
					{Name: "id", Type: graphql.T(graphql.ID())},
				},
			})
			other = graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name: "Other",
			})
		})

		It("appends interfaces without modifying the original", func() {
			extended, err := graphql.ExtendObject(original, other)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(extended).ShouldNot(BeIdenticalTo(original))
			Expect(extended.Name()).Should(Equal("Extendable"))
			Expect(extended.Interfaces()).Should(Equal([]graphql.Interface{InterfaceType, other}))
			Expect(extended.Fields()).Should(Equal(original.Fields()))

			Expect(original.Interfaces()).Should(Equal([]graphql.Interface{InterfaceType}))
		})

		It("rejects nil interface", func() {
			_, err := graphql.ExtendObject(original, nil)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Object "Extendable" must only implement Interface types.`),
				testutil.KindIs(graphql.ErrKindDefinition),
			))
		})
	})
})
