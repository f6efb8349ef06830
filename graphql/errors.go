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

// NewCoercionError creates an Error for coercion failure. It is returned by the result coercers of
// the built-in scalars.
func NewCoercionError(format string, a ...interface{}) error {
	return NewError(fmt.Sprintf(format, a...), ErrKindCoercion)
}

// NewDefinitionError creates an Error with ErrKindDefinition for a malformed type definition.
func NewDefinitionError(op Op, format string, a ...interface{}) error {
	return NewError(fmt.Sprintf(format, a...), op, ErrKindDefinition)
}

// ErrorKindOf returns the kind of err if it is an *Error or wraps one. Otherwise, ErrKindOther is
// returned.
func ErrorKindOf(err error) ErrKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind != ErrKindOther {
				return e.Kind
			}
			err = e.Err
			continue
		}
		return ErrKindOther
	}
	return ErrKindOther
}

// IsErrorKind returns true if err carries the given kind.
func IsErrorKind(err error, kind ErrKind) bool {
	return err != nil && ErrorKindOf(err) == kind
}
