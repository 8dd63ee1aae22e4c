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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		n   Number
		out string
	}{
		{Number{}, "0"},
		{New(3, 0), "3"},
		{New(-2.5, 0), "-2.5"},
		{New(0, 5), "5u"},
		{New(0, -5), "-5u"},
		{New(3, 5), "3 + 5u"},
		{New(3, -5), "3 - 5u"},
		{NewComplex(3+4i, 0), "3 + 4j"},
		{NewComplex(3-4i, 0), "3 - 4j"},
		{NewComplex(4i, 0), "4j"},
		{NewComplex(0, 3+4i), "3u + 4uj"},
		{NewComplex(0, 4i), "4uj"},
		{NewComplex(1-2i, -5), "1 - 2j - 5u"},
		{NewComplex(1+2i, 3+4i), "1 + 2j + 3u + 4uj"},
		{NewComplex(0, 0), "0"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.out, tc.n.String())
		// The formatter goes through the same rendering.
		assert.Equal(t, tc.out, fmt.Sprintf("%v", tc.n))
		assert.Equal(t, tc.out, fmt.Sprintf("%s", tc.n))
	}
}

func TestVanishingChangesRendering(t *testing.T) {
	cu := NewComplex(3+4i, 0)
	assert.Equal(t, "3 + 4j", cu.String())

	vanished, err := Multiply(cu, NewComplex(0, 0))
	assert.NoError(t, err)
	assert.Equal(t, "3u + 4uj", vanished.String())
}
