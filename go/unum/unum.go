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

// Package unum implements complete numbers: numeric values that pair a
// standard component with a "vanished" component recording information
// that ordinary arithmetic destroys when multiplying by zero.
//
// A Number with a zero vanished component behaves exactly like the
// underlying standard number under addition, subtraction and nonzero
// multiplication. Multiplying by the pure zero relocates the standard
// component into the vanished component instead of discarding it, so
// New(5, 0) times zero and New(3, 0) times zero stay distinguishable
// even though both project to 0 under standard arithmetic. Dividing a
// purely vanished value by zero restores it.
package unum

// Kind identifies the numeric domain of both components of a Number.
// Binary operations require both operands to share a kind; a real value
// must be lifted with AsComplex before it can meet a complex one.
type Kind int8

const (
	KindReal Kind = iota
	KindComplex
)

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "REAL"
	case KindComplex:
		return "COMPLEX"
	default:
		return "UNKNOWN"
	}
}

// Number is an immutable complete number. The zero Number is the
// real-kind additive identity. Both components are held as complex128;
// for KindReal their imaginary parts are always zero.
type Number struct {
	kind Kind
	std  complex128
	van  complex128
}

// New returns a real-kind Number with the given standard and vanished
// components. New(x, 0) embeds the plain number x.
func New(std, van float64) Number {
	return Number{kind: KindReal, std: complex(std, 0), van: complex(van, 0)}
}

// NewComplex returns a complex-kind Number.
func NewComplex(std, van complex128) Number {
	return Number{kind: KindComplex, std: std, van: van}
}

// Kind returns the numeric domain of the Number.
func (n Number) Kind() Kind {
	return n.kind
}

// Standard returns the standard component. This is the lossy projection
// back into ordinary arithmetic: whatever has vanished is not part of it.
func (n Number) Standard() complex128 {
	return n.std
}

// Vanished returns the vanished component: the information that
// multiplication by zero relocated out of the standard component.
func (n Number) Vanished() complex128 {
	return n.van
}

// Float64 returns the standard component as a float64. The second
// return value is false for complex-kind Numbers.
func (n Number) Float64() (float64, bool) {
	if n.kind != KindReal {
		return 0, false
	}
	return real(n.std), true
}

// VanishedFloat64 returns the vanished component as a float64. The
// second return value is false for complex-kind Numbers.
func (n Number) VanishedFloat64() (float64, bool) {
	if n.kind != KindReal {
		return 0, false
	}
	return real(n.van), true
}

// IsZero reports whether both components are zero. Only this value acts
// as the absorbing zero factor in Multiply.
func (n Number) IsZero() bool {
	return n.std == 0 && n.van == 0
}

// IsVanished reports whether the Number consists solely of vanished
// information, i.e. it projects to zero but is not the pure zero.
func (n Number) IsVanished() bool {
	return n.std == 0 && n.van != 0
}

// AsComplex lifts the Number into the complex kind. Lifting is the
// explicit step required before mixing real and complex operands.
func (n Number) AsComplex() Number {
	return Number{kind: KindComplex, std: n.std, van: n.van}
}

// Equal reports whether both Numbers have the same kind and pairwise
// equal components. Numbers that merely share a standard projection are
// not equal: New(0, 5) differs from New(0, 0).
func (n Number) Equal(m Number) bool {
	return n.kind == m.kind && n.std == m.std && n.van == m.van
}
