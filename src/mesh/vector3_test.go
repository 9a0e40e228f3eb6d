package mesh

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector3Dot(t *testing.T) {
	for idx, tc := range []struct {
		a, b Vector3
		want float64
	}{
		{NewVector3(1, 0, 0), NewVector3(0, 1, 0), 0},
		{NewVector3(1, 2, 3), NewVector3(4, 5, 6), 32},
		{NewVector3(1, 1, 1), NewVector3(-1, -1, -1), -3},
		{Vector3{}, NewVector3(4, 5, 6), 0},
	} {
		t.Run(fmt.Sprintf("%d/%v.%v", idx, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Dot(tc.b))
		})
	}
}

func TestVector3Cross(t *testing.T) {
	for idx, tc := range []struct {
		a, b, want Vector3
	}{
		{NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 1)},
		{NewVector3(0, 1, 0), NewVector3(1, 0, 0), NewVector3(0, 0, -1)},
		{NewVector3(0, 2, 0), NewVector3(1, 0, 0), NewVector3(0, 0, -2)},
		{NewVector3(1, 0, 0), NewVector3(2, 0, 0), Vector3{}},
	} {
		t.Run(fmt.Sprintf("%d/%vx%v", idx, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Cross(tc.b))
		})
	}
}

func TestVector3Unit(t *testing.T) {
	for idx, tc := range []struct {
		v    Vector3
		want Vector3
		ok   bool
	}{
		{NewVector3(3, 0, 0), NewVector3(1, 0, 0), true},
		{NewVector3(0, 0, -2), NewVector3(0, 0, -1), true},
		{Vector3{}, Vector3{}, false},
		{NewVector3(1e-9, 0, 0), Vector3{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.v), func(t *testing.T) {
			got, ok := tc.v.Unit()
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
			if ok {
				require.InDelta(t, 1.0, got.Norm(), 1e-12)
			}
		})
	}
}

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(-1, 0, 2)

	require.Equal(t, NewVector3(0, 2, 5), a.Add(b))
	require.Equal(t, NewVector3(2, 2, 1), a.Sub(b))
	require.Equal(t, NewVector3(2, 4, 6), a.Scale(2))
	require.Equal(t, NewVector3(-1, -2, -3), a.Neg())
	require.Equal(t, 14.0, a.NormSq())
	require.True(t, Vector3{}.IsZero())
	require.False(t, b.IsZero())
}
