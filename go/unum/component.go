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

type axis int8

const (
	axisReal axis = iota
	axisImag
)

// Component is a single-axis view of a Number's standard component. It
// lets one axis of a complex-kind value vanish while the other stays
// live: multiplying only the real component of 3+4j by zero yields a
// vanished 3u next to an untouched 4j.
type Component struct {
	value    float64
	axis     axis
	vanished bool
}

// RealComponent returns the real axis of the standard component.
func (n Number) RealComponent() Component {
	return Component{value: real(n.std), axis: axisReal}
}

// ImagComponent returns the imaginary axis of the standard component.
func (n Number) ImagComponent() Component {
	return Component{value: imag(n.std), axis: axisImag}
}

// Mul scales the component. A zero factor marks the component vanished
// instead of zeroing it; the value is preserved.
func (c Component) Mul(f float64) Component {
	if f == 0 {
		return Component{value: c.value, axis: c.axis, vanished: true}
	}
	return Component{value: c.value * f, axis: c.axis, vanished: c.vanished}
}

// Div divides the component. Components follow ordinary float division:
// a zero divisor is an error, with no vanishing analogue on a single axis.
func (c Component) Div(f float64) (Component, error) {
	if f == 0 {
		return Component{}, ErrDivisionByZero
	}
	return Component{value: c.value / f, axis: c.axis, vanished: c.vanished}, nil
}

// Float64 returns the component's value regardless of vanished state.
func (c Component) Float64() float64 {
	return c.value
}

// Vanished reports whether the component has been absorbed by a zero
// multiplication.
func (c Component) Vanished() bool {
	return c.vanished
}

func (c Component) String() string {
	s := formatFloat(c.value)
	if !c.vanished {
		return s
	}
	if c.axis == axisImag {
		return s + "uj"
	}
	return s + "u"
}
