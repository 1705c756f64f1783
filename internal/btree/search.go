package btree

// Contains reports whether k is stored in the tree.
func (t *Tree) Contains(k Key) bool {
	n := t.root
	for {
		index, found := n.findKey(k)
		if found {
			return true
		}
		if n.leaf {
			return false
		}
		n = n.children[index]
	}
}

// Rank returns the 1-based position of k in ascending key order. ok is
// false when k is not stored.
//
// The descent accumulates, at each node, the sizes of the subtrees and
// the keys known to precede k; the subtree size augmentation is what
// keeps this O(t * log_t n) instead of a full in-order walk.
func (t *Tree) Rank(k Key) (int, bool) {
	rank := 0
	n := t.root
	for {
		index, found := n.findKey(k)

		// Keys before index precede k regardless of the outcome.
		rank += index
		if !n.leaf {
			for i := 0; i < index; i++ {
				rank += n.children[i].size
			}
		}

		if found {
			if !n.leaf {
				rank += n.children[index].size
			}
			return rank + 1, true
		}
		if n.leaf {
			return 0, false
		}
		n = n.children[index]
	}
}

// Select returns the k-th smallest stored key (1-based). ok is false
// when k is out of the range [1, Len()].
func (t *Tree) Select(k int) (Key, bool) {
	if k < 1 || k > t.root.size {
		return 0, false
	}

	n := t.root
outer:
	for {
		if n.leaf {
			return n.keys[k-1], true
		}
		for i, key := range n.keys {
			childSize := n.children[i].size
			if k <= childSize {
				n = n.children[i]
				continue outer
			}
			k -= childSize
			if k == 1 {
				return key, true
			}
			k--
		}
		n = n.children[len(n.children)-1]
	}
}
