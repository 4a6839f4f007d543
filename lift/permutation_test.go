package lift

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFactoradicRoundTrip checks every permutation of S4 survives an
// encode/decode round trip (4! = 24 is cheap to enumerate exhaustively).
func TestFactoradicRoundTrip(t *testing.T) {
	t.Parallel()

	perms := permute(identityPermutation(4))
	seen := make(map[int][]int, len(perms))
	for _, p := range perms {
		code := encodeFactoradic(p)
		got := decodeFactoradic(code, 4)
		require.Equal(t, p, got)

		if other, ok := seen[code]; ok {
			t.Fatalf("code %d assigned to both %v and %v", code, other, p)
		}
		seen[code] = p
	}
	require.Len(t, seen, 24)
}

// TestEncodeFactoradic_Identity checks the identity permutation always
// encodes to 0, the convention NewGenerator relies on.
func TestEncodeFactoradic_Identity(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		require.Equal(t, 0, encodeFactoradic(identityPermutation(n)))
	}
}

// TestRotate_IsACycle checks rotate(n, 1) is the single n-cycle
// (0 1 2 ... n-1) and rotate(n, -1) is its inverse.
func TestRotate_IsACycle(t *testing.T) {
	t.Parallel()

	n := 5
	fwd := rotate(n, 1)
	require.Equal(t, []int{1, 2, 3, 4, 0}, fwd)

	back := rotate(n, -1)
	require.Equal(t, []int{4, 0, 1, 2, 3}, back)

	require.Equal(t, identityPermutation(n), compose(fwd, back))
	require.Equal(t, identityPermutation(n), compose(back, fwd))
}

// TestPostComposeRotation_RoundTrip checks rotating +1 then -1 returns
// to the starting permutation's code.
func TestPostComposeRotation_RoundTrip(t *testing.T) {
	t.Parallel()

	n := 4
	start := encodeFactoradic(identityPermutation(n))
	rotated := postComposeRotation(start, n, +1)
	require.NotEqual(t, start, rotated)

	back := postComposeRotation(rotated, n, -1)
	require.Equal(t, start, back)
}

// permute returns every permutation of base's elements, treating base
// as a fixed initial order (Heap's algorithm), for small n only.
func permute(base []int) [][]int {
	n := len(base)
	a := append([]int(nil), base...)
	var out [][]int
	var c = make([]int, n)

	out = append(out, append([]int(nil), a...))
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			out = append(out, append([]int(nil), a...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return out
}
