package lift

// permutation helpers encode/decode an element of Sn as a factoradic
// integer (spec.md §4.5) and compose the branch-cover monodromy
// rotations. n is always bounded by maxSheets, so plain ints (never
// more than 8! = 40320) are more than sufficient — no big.Int needed.

// identityPermutation returns the identity element of Sn as a
// 0-indexed image vector: identityPermutation(n)[i] == i.
func identityPermutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// factorial returns n! for the small n bounded by maxSheets.
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// encodeFactoradic returns the Lehmer-code factoradic integer for perm,
// a bijection of {0,...,n-1} given as an image vector.
func encodeFactoradic(perm []int) int {
	n := len(perm)
	remaining := append([]int(nil), perm...)
	code := 0
	for i := 0; i < n; i++ {
		// count how many of the not-yet-consumed values to the right
		// are smaller than remaining[i] — the Lehmer digit at position i.
		digit := 0
		for j := i + 1; j < n; j++ {
			if remaining[j] < remaining[i] {
				digit++
			}
		}
		code += digit * factorial(n-1-i)
	}
	return code
}

// decodeFactoradic reconstructs the image vector of the Sn element with
// factoradic code, for the given n.
func decodeFactoradic(code, n int) []int {
	digits := make([]int, n)
	remaining := code
	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		digits[i] = remaining / f
		remaining %= f
	}

	pool := identityPermutation(n)
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = pool[digits[i]]
		pool = append(pool[:digits[i]], pool[digits[i]+1:]...)
	}
	return perm
}

// compose returns a∘b as an image vector: (a∘b)(i) == a[b[i]].
func compose(a, b []int) []int {
	out := make([]int, len(a))
	for i := range out {
		out[i] = a[b[i]]
	}
	return out
}

// rotate returns the n-cycle i -> (i+delta) mod n, used for the
// branch-cover monodromy at an O marker (delta=+1) or an X marker
// (delta=-1).
func rotate(n, delta int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = ((i+delta)%n + n) % n
	}
	return p
}

// postComposeRotation returns the factoradic code of rho∘σ, where rho
// is the n-cycle rotation by delta and σ is the permutation encoded by
// sigma. This is spec.md §4.5's "σ is post-composed with the n-cycle
// determined by the branch-cover monodromy".
func postComposeRotation(sigma, n, delta int) int {
	s := decodeFactoradic(sigma, n)
	rho := rotate(n, delta)
	return encodeFactoradic(compose(rho, s))
}
