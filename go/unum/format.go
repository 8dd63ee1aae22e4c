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
	"fmt"
	"strconv"
	"strings"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String renders the complete number notation: the standard real part
// plain, the imaginary part with a "j" suffix, and the vanished parts
// with "u" and "uj" suffixes. Zero terms are omitted; the all-zero
// value renders as "0".
//
//	New(3, 0)                    "3"
//	New(0, 5)                    "5u"
//	NewComplex(3+4i, 0)          "3 + 4j"
//	NewComplex(0, 3+4i)          "3u + 4uj"
//	NewComplex(1-2i, -5)         "1 - 2j - 5u"
func (n Number) String() string {
	re, im := real(n.std), imag(n.std)
	ure, uim := real(n.van), imag(n.van)

	var parts []string
	if re != 0 || (im == 0 && ure == 0 && uim == 0) {
		parts = append(parts, formatFloat(re))
	}
	if im != 0 {
		parts = append(parts, formatFloat(im)+"j")
	}
	if ure != 0 {
		parts = append(parts, formatFloat(ure)+"u")
	}
	if uim != 0 {
		parts = append(parts, formatFloat(uim)+"uj")
	}
	return strings.ReplaceAll(strings.Join(parts, " + "), "+ -", "- ")
}

// Format implements fmt.Formatter for the %v and %s verbs.
func (n Number) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(f, n.String())
	default:
		fmt.Fprintf(f, "%%!%c(unum.Number=%s)", verb, n.String())
	}
}
