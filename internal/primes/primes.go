// Package primes provides deterministic primality testing for unsigned
// 64-bit integers, used by the prime-range queries of the ostat engine.
package primes

import "math/bits"

// witnesses is the fixed Miller-Rabin base set. No composite below 2^64
// is a strong pseudoprime to all twelve of these bases, so the test is
// deterministic over the whole key range.
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime. The result is exact for the full
// uint64 range; no probabilistic error is possible.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	// Write n-1 = 2^s * d with d odd.
	d := n - 1
	s := 0
	for d%2 == 0 {
		d >>= 1
		s++
	}

	for _, a := range witnesses {
		if a >= n {
			// Bases >= n carry no information; for n <= 37 the
			// remaining smaller bases already decide the answer.
			continue
		}
		if !passes(a, d, s, n) {
			return false
		}
	}
	return true
}

// passes runs a single Miller-Rabin round for base a against n, where
// n-1 = 2^s * d and d is odd.
func passes(a, d uint64, s int, n uint64) bool {
	x := powMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for r := 1; r < s; r++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}

// mulMod returns a*b mod m without overflow, using the full 128-bit
// product. Requires a, b < m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// powMod returns base^exp mod m by binary exponentiation.
func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}
