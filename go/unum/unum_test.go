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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedding(t *testing.T) {
	// A Number with a zero vanished component projects back to the
	// number it was built from.
	for _, x := range []float64{0, 1, -1, 3.5, -2.25, 1e100} {
		n := New(x, 0)
		f, ok := n.Float64()
		require.True(t, ok)
		assert.Equal(t, x, f)
		assert.Equal(t, complex(x, 0), n.Standard())
		assert.Equal(t, complex128(0), n.Vanished())
	}
}

func TestKindAccessors(t *testing.T) {
	r := New(3, 4)
	c := NewComplex(3+4i, 0)

	assert.Equal(t, KindReal, r.Kind())
	assert.Equal(t, KindComplex, c.Kind())
	assert.Equal(t, "REAL", r.Kind().String())
	assert.Equal(t, "COMPLEX", c.Kind().String())

	_, ok := c.Float64()
	assert.False(t, ok)
	_, ok = c.VanishedFloat64()
	assert.False(t, ok)

	v, ok := r.VanishedFloat64()
	require.True(t, ok)
	assert.Equal(t, 4.0, v)

	lifted := r.AsComplex()
	assert.Equal(t, KindComplex, lifted.Kind())
	assert.Equal(t, r.Standard(), lifted.Standard())
	assert.Equal(t, r.Vanished(), lifted.Vanished())
}

func TestZeroPredicates(t *testing.T) {
	tests := []struct {
		n          Number
		isZero     bool
		isVanished bool
	}{
		{Number{}, true, false},
		{New(0, 0), true, false},
		{New(3, 0), false, false},
		{New(0, 5), false, true},
		{New(3, 5), false, false},
		{NewComplex(0, 3+4i), false, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.isZero, tc.n.IsZero(), "IsZero(%v)", tc.n)
		assert.Equal(t, tc.isVanished, tc.n.IsVanished(), "IsVanished(%v)", tc.n)
	}
}

func TestEquality(t *testing.T) {
	tests := []struct {
		a, b  Number
		equal bool
	}{
		{New(3, 0), New(3, 0), true},
		{New(0, 5), New(0, 5), true},
		// Equal standard projections are not enough.
		{New(0, 5), New(0, 0), false},
		{New(0, 5), New(0, 3), false},
		{New(3, 0), New(4, 0), false},
		// Kinds matter even when the components agree numerically.
		{New(3, 0), NewComplex(3, 0), false},
		{NewComplex(3+4i, 0), NewComplex(3+4i, 0), true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.equal, tc.a.Equal(tc.b), "%v == %v", tc.a, tc.b)
		// Symmetric.
		assert.Equal(t, tc.equal, tc.b.Equal(tc.a), "%v == %v", tc.b, tc.a)
	}
}

func TestEqualityReflexiveTransitive(t *testing.T) {
	samples := []Number{
		Number{}, New(3, 0), New(0, 5), New(-1.5, 2.5),
		NewComplex(3+4i, 0), NewComplex(0, 3+4i),
	}
	for _, n := range samples {
		assert.True(t, n.Equal(n), "%v must equal itself", n)
	}
	a, b, c := New(7, -2), New(7, -2), New(7, -2)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))
}
