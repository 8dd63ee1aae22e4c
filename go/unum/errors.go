/*
Copyright 2025 The Unum Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package unum

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a divisor has no defined inverse:
// dividing a value with a live standard component by the pure zero, or
// dividing by a purely vanished value.
var ErrDivisionByZero = errors.New("division by zero")

// KindMismatchError is returned by binary operations whose operands
// belong to different numeric domains. There is no implicit promotion;
// the caller lifts the real operand with AsComplex.
type KindMismatchError struct {
	Left  Kind
	Right Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("mismatched numeric kinds %v and %v", e.Left, e.Right)
}

// ParseError is returned by Parse for input that is not valid complete
// number notation.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse value: %q at position %d: %s", e.Input, e.Pos, e.Msg)
}
