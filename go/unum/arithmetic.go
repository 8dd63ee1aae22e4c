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

func sameKind(a, b Number) (Kind, error) {
	if a.kind != b.kind {
		return 0, &KindMismatchError{Left: a.kind, Right: b.kind}
	}
	return a.kind, nil
}

// Add adds two Numbers componentwise. Vanished information accumulates
// the same way standard information does.
func Add(a, b Number) (Number, error) {
	kind, err := sameKind(a, b)
	if err != nil {
		return Number{}, err
	}
	return Number{kind: kind, std: a.std + b.std, van: a.van + b.van}, nil
}

// Subtract subtracts b from a componentwise.
func Subtract(a, b Number) (Number, error) {
	kind, err := sameKind(a, b)
	if err != nil {
		return Number{}, err
	}
	return Number{kind: kind, std: a.std - b.std, van: a.van - b.van}, nil
}

// Negate negates both components.
func Negate(a Number) Number {
	return Number{kind: a.kind, std: -a.std, van: -a.van}
}

// Multiply multiplies two Numbers.
//
// A pure-zero factor does not erase its cofactor: the cofactor's
// standard component relocates into the vanished component of the
// result, so Multiply(New(x, 0), New(0, 0)) yields New(0, x). Any
// vanished component the cofactor already carried is replaced, not
// stacked; a value can only vanish once.
//
// For all other operand pairs the product is the bilinear pair rule
//
//	std' = a.std * b.std
//	van' = a.std * b.van + a.van * b.std
//
// which agrees with ordinary multiplication when both vanished
// components are zero, and scales vanished information linearly when
// one factor is a plain embedded number.
func Multiply(a, b Number) (Number, error) {
	kind, err := sameKind(a, b)
	if err != nil {
		return Number{}, err
	}
	if b.IsZero() {
		return Number{kind: kind, van: a.std}, nil
	}
	if a.IsZero() {
		return Number{kind: kind, van: b.std}, nil
	}
	return Number{
		kind: kind,
		std:  a.std * b.std,
		van:  a.std*b.van + a.van*b.std,
	}, nil
}

// Divide divides a by b.
//
// Division by the pure zero inverts the vanishing step: it is defined
// only for values whose standard component is already zero, and it
// promotes the vanished component back to a standard one. Dividing a
// value with a live standard component by zero, or dividing by a purely
// vanished value, returns ErrDivisionByZero.
//
// For nonzero divisors the quotient inverts the Multiply pair rule:
//
//	std' = a.std / b.std
//	van' = (a.van * b.std - a.std * b.van) / (b.std * b.std)
//
// which for a plain divisor degenerates to dividing every component.
func Divide(a, b Number) (Number, error) {
	kind, err := sameKind(a, b)
	if err != nil {
		return Number{}, err
	}
	if b.IsZero() {
		if a.std != 0 {
			return Number{}, ErrDivisionByZero
		}
		return Number{kind: kind, std: a.van}, nil
	}
	if b.std == 0 {
		return Number{}, ErrDivisionByZero
	}
	return Number{
		kind: kind,
		std:  a.std / b.std,
		van:  (a.van*b.std - a.std*b.van) / (b.std * b.std),
	}, nil
}
