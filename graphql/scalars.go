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
	"math"
	"reflect"
	"strconv"
)

// The result value of each built-in scalar has a fixed Go type:
//
// +--------------+---------+
// | GraphQL Type | Go Type |
// +--------------+---------+
// | Int          | int     |
// | Float        | float64 |
// | String       | string  |
// | Boolean      | bool    |
// | ID           | string  |
// +--------------+---------+

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger        = "not an integer"
	coercionErrorIntegerTooLarge   = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall   = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric        = "not a numeric value"
	coercionErrorNonBoolean        = "not a boolean value"
	coercionErrorNonStringOrNumber = "not a string or an integer"
	coercionErrorNonString         = "not a string"
)

func newScalarCoercionError(typeName string, value interface{}, reason string) error {
	return NewCoercionError("%s cannot represent %s: %s", typeName, Inspect(value), reason)
}

// numericValue unwraps value of any Go numeric kind. ok is false for non-numeric values.
func numericValue(value interface{}) (v reflect.Value, ok bool) {
	v = reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return v, true
	}
	return v, false
}

func isIntegerKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsignedKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//

func checkInt32(value interface{}, n int64) (interface{}, error) {
	if n > math.MaxInt32 {
		return nil, newScalarCoercionError("Int", value, coercionErrorIntegerTooLarge)
	} else if n < math.MinInt32 {
		return nil, newScalarCoercionError("Int", value, coercionErrorIntegerTooSmall)
	}
	return int(n), nil
}

func coerceIntResult(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		if value {
			return 1, nil
		}
		return 0, nil

	case string:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return checkInt32(value, n)
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return coerceFloatToInt(value, f)
		}
		return nil, newScalarCoercionError("Int", value, coercionErrorNonInteger)
	}

	v, ok := numericValue(value)
	switch {
	case !ok:
		return nil, newScalarCoercionError("Int", value, coercionErrorNonInteger)
	case isIntegerKind(v.Kind()):
		return checkInt32(value, v.Int())
	case isUnsignedKind(v.Kind()):
		if v.Uint() > math.MaxInt32 {
			return nil, newScalarCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		return int(v.Uint()), nil
	default:
		return coerceFloatToInt(value, v.Float())
	}
}

func coerceFloatToInt(value interface{}, f float64) (interface{}, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, newScalarCoercionError("Int", value, coercionErrorNonInteger)
	} else if f > math.MaxInt32 {
		return nil, newScalarCoercionError("Int", value, coercionErrorIntegerTooLarge)
	} else if f < math.MinInt32 {
		return nil, newScalarCoercionError("Int", value, coercionErrorIntegerTooSmall)
	}
	return int(f), nil
}

var intType = MustNewScalar(&ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
		"Int can represent values between -(2^31) and 2^31 - 1.",
	ResultCoercer: CoerceScalarResultFunc(coerceIntResult),
})

// Int returns the GraphQL builtin Int type definition.
func Int() Scalar {
	return intType
}

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//

func coerceFloatResult(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		if value {
			return float64(1), nil
		}
		return float64(0), nil

	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newScalarCoercionError("Float", value, coercionErrorNonNumeric)
		}
		return f, nil
	}

	v, ok := numericValue(value)
	switch {
	case !ok:
		return nil, newScalarCoercionError("Float", value, coercionErrorNonNumeric)
	case isIntegerKind(v.Kind()):
		return float64(v.Int()), nil
	case isUnsignedKind(v.Kind()):
		return float64(v.Uint()), nil
	default:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newScalarCoercionError("Float", value, coercionErrorNonNumeric)
		}
		return f, nil
	}
}

var floatType = MustNewScalar(&ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values as " +
		"specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point).",
	ResultCoercer: CoerceScalarResultFunc(coerceFloatResult),
})

// Float returns the GraphQL builtin Float type definition.
func Float() Scalar {
	return floatType
}

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//

func coerceStringResult(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case fmt.Stringer:
		return value.String(), nil
	}

	v, ok := numericValue(value)
	switch {
	case !ok:
		return nil, newScalarCoercionError("String", value, coercionErrorNonString)
	case isIntegerKind(v.Kind()):
		return strconv.FormatInt(v.Int(), 10), nil
	case isUnsignedKind(v.Kind()):
		return strconv.FormatUint(v.Uint(), 10), nil
	default:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	}
}

var stringType = MustNewScalar(&ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 character " +
		"sequences. The String type is most often used by GraphQL to represent free-form " +
		"human-readable text.",
	ResultCoercer: CoerceScalarResultFunc(coerceStringResult),
})

// String returns the GraphQL builtin String type definition.
func String() Scalar {
	return stringType
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//

func coerceBooleanResult(value interface{}) (interface{}, error) {
	if value, ok := value.(bool); ok {
		return value, nil
	}

	v, ok := numericValue(value)
	switch {
	case !ok:
		return nil, newScalarCoercionError("Boolean", value, coercionErrorNonBoolean)
	case isIntegerKind(v.Kind()):
		return v.Int() != 0, nil
	case isUnsignedKind(v.Kind()):
		return v.Uint() != 0, nil
	default:
		return v.Float() != 0, nil
	}
}

var booleanType = MustNewScalar(&ScalarConfig{
	Name:          "Boolean",
	Description:   "The `Boolean` scalar type represents `true` or `false`.",
	ResultCoercer: CoerceScalarResultFunc(coerceBooleanResult),
})

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() Scalar {
	return booleanType
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//

func coerceIDResult(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case fmt.Stringer:
		return value.String(), nil
	}

	v, ok := numericValue(value)
	switch {
	case ok && isIntegerKind(v.Kind()):
		return strconv.FormatInt(v.Int(), 10), nil
	case ok && isUnsignedKind(v.Kind()):
		return strconv.FormatUint(v.Uint(), 10), nil
	}
	return nil, newScalarCoercionError("ID", value, coercionErrorNonStringOrNumber)
}

var idType = MustNewScalar(&ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
		"object or as key for a cache. The ID type appears in a JSON response as a String; however, " +
		"it is not intended to be human-readable. When expected as an input type, any string (such " +
		"as `\"4\"`) or integer (such as `4`) input value will be accepted as an ID.",
	ResultCoercer: CoerceScalarResultFunc(coerceIDResult),
})

// ID returns the GraphQL builtin ID type definition.
func ID() Scalar {
	return idType
}
