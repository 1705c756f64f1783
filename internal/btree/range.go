package btree

import (
	"math"

	"github.com/KilimcininKorOglu/ostat/internal/primes"
)

// RangeKeys returns every stored key in [lo, hi], ascending. The result
// is nil when the range is empty or lo > hi.
func (t *Tree) RangeKeys(lo, hi Key) []Key {
	var out []Key
	t.visitRange(lo, hi, func(k Key) bool {
		out = append(out, k)
		return true
	})
	return out
}

// RangePrimes returns every stored prime key in [lo, hi], ascending.
// Primality is decided by the deterministic Miller-Rabin oracle, applied
// only to keys the range traversal actually enumerates.
func (t *Tree) RangePrimes(lo, hi Key) []Key {
	var out []Key
	t.visitRange(lo, hi, func(k Key) bool {
		if primes.IsPrime(k) {
			out = append(out, k)
		}
		return true
	})
	return out
}

// Ascend calls fn for every stored key in ascending order until fn
// returns false.
func (t *Tree) Ascend(fn func(Key) bool) {
	t.visitRange(1, math.MaxUint64, fn)
}

// visitRange walks the keys of [lo, hi] in ascending order, pruning
// subtrees that cannot intersect the interval on both ends.
func (t *Tree) visitRange(lo, hi Key, fn func(Key) bool) {
	if lo > hi || t.root.size == 0 {
		return
	}
	t.root.visitRange(lo, hi, fn)
}

func (n *node) visitRange(lo, hi Key, fn func(Key) bool) bool {
	// First key that can be in range; everything left of it is < lo,
	// except the subtree hanging just before it.
	start, _ := n.findKey(lo)

	if !n.leaf && !n.children[start].visitRange(lo, hi, fn) {
		return false
	}
	for i := start; i < len(n.keys) && n.keys[i] <= hi; i++ {
		if !fn(n.keys[i]) {
			return false
		}
		if !n.leaf && !n.children[i+1].visitRange(lo, hi, fn) {
			return false
		}
	}
	return true
}
