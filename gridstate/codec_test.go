package gridstate_test

import (
	"errors"
	"testing"

	"github.com/albenzo/grid-homology/gridstate"
	"github.com/stretchr/testify/require"
)

func TestNewRadix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		wantBits uint
		wantErr  error
	}{
		{"zero", 0, 0, gridstate.ErrInvalidLength},
		{"negative", -3, 0, gridstate.ErrInvalidLength},
		{"n=1", 1, 1, nil},
		{"n=5", 5, 3, nil},  // B=8
		{"n=7", 7, 3, nil},  // B=8, n+1 exactly a power of two
		{"n=8", 8, 4, nil},  // B=16
		{"n=9", 9, 4, nil},  // B=16
		{"n=15", 15, 4, nil}, // B=16
		{"n=16", 16, 5, nil}, // B=32
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := gridstate.NewRadix(tc.n)
			if tc.wantErr != nil {
				require.Truef(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantBits, r.Bits)
			require.Equal(t, tc.n, r.N)
		})
	}
}

func TestNewRadix_TooWide(t *testing.T) {
	t.Parallel()

	// N*Bits must exceed maxWords*64 = 512 bits; pick an N whose N*Bits
	// comfortably overflows the budget.
	_, err := gridstate.NewRadix(1 << 20)
	require.ErrorIs(t, err, gridstate.ErrStateTooWide)
}

func TestEncodeDecode_RoundTrips(t *testing.T) {
	t.Parallel()

	r, err := gridstate.NewRadix(5)
	require.NoError(t, err)

	perms := [][]int{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{2, 3, 4, 5, 1},
		{3, 1, 4, 1, 5}, // invalid: repeated 1
	}

	for i, vec := range perms {
		s, err := gridstate.Encode(r, vec)
		if i == len(perms)-1 {
			require.ErrorIs(t, err, gridstate.ErrNotPermutation)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, vec, s.Decode())
	}
}

func TestEncode_WrongLength(t *testing.T) {
	t.Parallel()

	r, err := gridstate.NewRadix(5)
	require.NoError(t, err)
	_, err = gridstate.Encode(r, []int{1, 2, 3})
	require.ErrorIs(t, err, gridstate.ErrNotPermutation)
}

func TestCoord(t *testing.T) {
	t.Parallel()

	r, err := gridstate.NewRadix(5)
	require.NoError(t, err)
	s, err := gridstate.Encode(r, []int{2, 3, 4, 5, 1})
	require.NoError(t, err)

	for i, want := range []int{2, 3, 4, 5, 1} {
		got, err := s.Coord(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err = s.Coord(-1)
	require.ErrorIs(t, err, gridstate.ErrIndexRange)
	_, err = s.Coord(5)
	require.ErrorIs(t, err, gridstate.ErrIndexRange)
}

func TestSwap(t *testing.T) {
	t.Parallel()

	r, err := gridstate.NewRadix(5)
	require.NoError(t, err)
	s, err := gridstate.Encode(r, []int{2, 3, 4, 5, 1})
	require.NoError(t, err)

	swapped, err := s.Swap(0, 4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4, 5, 2}, swapped.Decode())
	// original is untouched (pure-value semantics)
	require.Equal(t, []int{2, 3, 4, 5, 1}, s.Decode())

	_, err = s.Swap(0, 10)
	require.ErrorIs(t, err, gridstate.ErrIndexRange)
}

func TestSetCoord(t *testing.T) {
	t.Parallel()

	r, err := gridstate.NewRadix(5)
	require.NoError(t, err)
	s, err := gridstate.Encode(r, []int{2, 3, 4, 5, 1})
	require.NoError(t, err)

	next, err := s.SetCoord(2, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 1, 5, 1}, next.Decode())

	_, err = s.SetCoord(2, 0)
	require.ErrorIs(t, err, gridstate.ErrNotPermutation)
	_, err = s.SetCoord(2, 6)
	require.ErrorIs(t, err, gridstate.ErrNotPermutation)
}

func TestState_Equality(t *testing.T) {
	t.Parallel()

	r, err := gridstate.NewRadix(5)
	require.NoError(t, err)
	a, err := gridstate.Encode(r, []int{2, 3, 4, 5, 1})
	require.NoError(t, err)
	b, err := gridstate.Encode(r, []int{2, 3, 4, 5, 1})
	require.NoError(t, err)
	c, err := gridstate.Encode(r, []int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)

	seen := map[gridstate.State]bool{a: true}
	require.True(t, seen[b])
	require.False(t, seen[c])
}

func TestState_Compare(t *testing.T) {
	t.Parallel()

	r, err := gridstate.NewRadix(5)
	require.NoError(t, err)
	// Compare is packed-integer order, so the last coordinate is the
	// most significant: 4 in the last slot codes below 5 there.
	low, err := gridstate.Encode(r, []int{1, 2, 3, 5, 4})
	require.NoError(t, err)
	high, err := gridstate.Encode(r, []int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	require.Equal(t, -1, low.Compare(high))
	require.Equal(t, 1, high.Compare(low))
	require.Equal(t, 0, low.Compare(low))
}

// TestWideState_RoundTrips exercises the multi-word path beyond a single uint64.
func TestWideState_RoundTrips(t *testing.T) {
	t.Parallel()

	const n = 20 // 20 * 5 bits = 100 bits, spans two words
	r, err := gridstate.NewRadix(n)
	require.NoError(t, err)

	vec := make([]int, n)
	for i := range vec {
		vec[i] = n - i
	}
	s, err := gridstate.Encode(r, vec)
	require.NoError(t, err)
	require.Equal(t, vec, s.Decode())

	swapped, err := s.Swap(0, n-1)
	require.NoError(t, err)
	require.Equal(t, vec[n-1], mustCoord(t, swapped, 0))
	require.Equal(t, vec[0], mustCoord(t, swapped, n-1))
}

func mustCoord(t *testing.T, s gridstate.State, i int) int {
	t.Helper()
	v, err := s.Coord(i)
	require.NoError(t, err)
	return v
}
