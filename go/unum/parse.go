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
	"strconv"
)

// Parse converts complete number notation back into a Number. It
// accepts what String produces, with spaces around the joining signs
// optional: "3", "-2.5u", "3 + 4j + 5u + 6uj", "1-2j". Terms with the
// same suffix accumulate. Any "j" or "uj" term makes the result
// complex-kind; otherwise the result is real-kind, so a complex value
// whose imaginary parts are all zero does not round-trip to the
// complex kind.
func Parse(s string) (Number, error) {
	var re, im, ure, uim float64
	isComplex := false

	i := skipSpaces(s, 0)
	if i == len(s) {
		return Number{}, &ParseError{Input: s, Pos: i, Msg: "empty input"}
	}

	for first := true; ; first = false {
		neg := false
		if first {
			switch s[i] {
			case '-':
				neg = true
				i++
			case '+':
				i++
			}
		} else {
			switch s[i] {
			case '-':
				neg = true
				i++
			case '+':
				i++
			default:
				return Number{}, &ParseError{Input: s, Pos: i, Msg: "expected '+' or '-'"}
			}
		}
		i = skipSpaces(s, i)

		start := i
		for i < len(s) {
			c := s[i]
			if c >= '0' && c <= '9' || c == '.' {
				i++
				continue
			}
			if (c == 'e' || c == 'E') && i > start {
				i++
				if i < len(s) && (s[i] == '+' || s[i] == '-') {
					i++
				}
				continue
			}
			break
		}
		if i == start {
			return Number{}, &ParseError{Input: s, Pos: i, Msg: "expected a number"}
		}
		v, err := strconv.ParseFloat(s[start:i], 64)
		if err != nil {
			return Number{}, &ParseError{Input: s, Pos: start, Msg: "invalid number"}
		}
		if neg {
			v = -v
		}

		// "uj" must be tried before "u".
		switch {
		case i+1 < len(s) && s[i] == 'u' && s[i+1] == 'j':
			uim += v
			isComplex = true
			i += 2
		case i < len(s) && s[i] == 'u':
			ure += v
			i++
		case i < len(s) && s[i] == 'j':
			im += v
			isComplex = true
			i++
		default:
			re += v
		}

		i = skipSpaces(s, i)
		if i == len(s) {
			break
		}
	}

	if isComplex {
		return NewComplex(complex(re, im), complex(ure, uim)), nil
	}
	return New(re, ure), nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// constants and tests.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}
