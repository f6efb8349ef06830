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
	"strings"

	"github.com/botobag/graphene/graphql"
	"github.com/botobag/graphene/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scalar", func() {
	It("defines a scalar with a result coercer", func() {
		upper, err := graphql.NewScalar(&graphql.ScalarConfig{
			Name:        "Upper",
			Description: "Upper-cased string",
			ResultCoercer: graphql.CoerceScalarResultFunc(func(value interface{}) (interface{}, error) {
				s, ok := value.(string)
				if !ok {
					return nil, graphql.NewCoercionError("Upper cannot represent %s", graphql.Inspect(value))
				}
				return strings.ToUpper(s), nil
			}),
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(upper.Name()).Should(Equal("Upper"))
		Expect(upper.Description()).Should(Equal("Upper-cased string"))
		Expect(upper.String()).Should(Equal("Upper"))
		Expect(upper.CoerceResultValue("abc")).Should(Equal("ABC"))

		_, err = upper.CoerceResultValue(1)
		Expect(err).Should(MatchCoercionError("Upper cannot represent 1"))
	})

	It("rejects a Scalar type without name", func() {
		_, err := graphql.NewScalar(&graphql.ScalarConfig{
			ResultCoercer: graphql.CoerceScalarResultFunc(func(value interface{}) (interface{}, error) {
				return value, nil
			}),
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Must provide name for Scalar."),
			testutil.KindIs(graphql.ErrKindDefinition),
		))
	})

	It("rejects a Scalar type without result coercer", func() {
		_, err := graphql.NewScalar(&graphql.ScalarConfig{
			Name: "SomeScalar",
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Must provide result coercer for Scalar."),
			testutil.KindIs(graphql.ErrKindDefinition),
		))
	})

	It("panics in MustNewScalar on failure", func() {
		Expect(func() {
			graphql.MustNewScalar(&graphql.ScalarConfig{})
		}).Should(Panic())
	})
})
