// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType matches every *UnsupportedTypeError.
	ErrUnsupportedType = errors.New("unsupported argument type")

	// ErrInvalidDefault is returned by Validate when a default does not
	// match the declared type.
	ErrInvalidDefault = errors.New("invalid default value")

	// ErrInvalidDefinition is returned by Validate for definitions that
	// cannot be looked up, such as one without a name.
	ErrInvalidDefinition = errors.New("invalid argument definition")
)

// ValueError is returned when a value token cannot be converted to the
// declared type. Err holds the decoder's error.
type ValueError struct {
	Name  string // The argument name
	Type  Type
	Value string // The raw token
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q for %s: %v", e.Type, e.Value, e.Name, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError is returned when a definition declares a type the
// parser does not know. It indicates a configuration error, not bad input.
type UnsupportedTypeError struct {
	Name string
	Type Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported argument type: %q (argument %s)", string(e.Type), e.Name)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
