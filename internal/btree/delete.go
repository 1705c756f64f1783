package btree

// Delete removes k from the tree. Deleting an absent key, or deleting
// from an empty tree, is a no-op.
//
// Algorithm:
//  1. Confirm k is present with a point search; absence means the size
//     decrements on the way down are never speculative
//  2. Descend toward k; before entering any child with only t-1 keys,
//     top it up by borrowing from a rich sibling or merging with one,
//     so a key can always be removed without violating the minimum
//  3. In a leaf, remove k directly; in an internal node, replace k with
//     its predecessor or successor and delete that from the child, or
//     merge the two adjacent children around k and recurse
//
// If a merge drains the root completely, the merged child becomes the
// new root -- the only way the tree ever gets shorter.
func (t *Tree) Delete(k Key) {
	if !t.Contains(k) {
		return
	}

	t.deleteFromSubtree(t.root, k)

	if t.root.keyCount() == 0 && !t.root.leaf {
		t.root = t.root.children[0]
	}
}

// deleteFromSubtree removes k from the subtree rooted at n. The caller
// guarantees k is present in the subtree and that n holds at least t
// keys unless it is the root.
func (t *Tree) deleteFromSubtree(n *node, k Key) {
	n.size--

	index, found := n.findKey(k)
	if found {
		if n.leaf {
			n.removeKeyAt(index)
			return
		}
		t.deleteFromInternal(n, index)
		return
	}

	// k lives in the child subtree at index; top the child up first if
	// it sits at the minimum.
	child := n.children[index]
	if child.keyCount() == t.t-1 {
		index = t.fillChild(n, index)
	}
	t.deleteFromSubtree(n.children[index], k)
}

// deleteFromInternal removes the key at the given index of the internal
// node n.
func (t *Tree) deleteFromInternal(n *node, index int) {
	k := n.keys[index]
	left, right := n.children[index], n.children[index+1]

	switch {
	case left.keyCount() >= t.t:
		// Overwrite with the in-order predecessor and delete that
		// from the left subtree instead.
		pred := left.maxKey()
		n.keys[index] = pred
		t.deleteFromSubtree(left, pred)

	case right.keyCount() >= t.t:
		succ := right.minKey()
		n.keys[index] = succ
		t.deleteFromSubtree(right, succ)

	default:
		// Both neighbors are minimal: absorb k and the right child
		// into the left child, then delete k from the merged node.
		t.mergeChildren(n, index)
		t.deleteFromSubtree(n.children[index], k)
	}
}

// fillChild brings the child at the given index up to at least t keys
// by borrowing from an immediate sibling, or by merging with one when
// both siblings are minimal. Returns the child's index after the
// operation (a merge to the left shifts it down by one).
func (t *Tree) fillChild(n *node, index int) int {
	if index > 0 && n.children[index-1].keyCount() >= t.t {
		t.borrowFromLeft(n, index)
		return index
	}
	if index < n.keyCount() && n.children[index+1].keyCount() >= t.t {
		t.borrowFromRight(n, index)
		return index
	}
	if index < n.keyCount() {
		t.mergeChildren(n, index)
		return index
	}
	t.mergeChildren(n, index-1)
	return index - 1
}

// borrowFromLeft rotates one key clockwise through the parent: the
// separator key drops into the deficient child and the left sibling's
// largest key replaces it. Internal donors hand over their rightmost
// child as well.
func (t *Tree) borrowFromLeft(n *node, index int) {
	donor := n.children[index-1]
	recipient := n.children[index]

	recipient.insertKeyAt(0, n.keys[index-1])
	n.keys[index-1] = donor.removeKeyAt(donor.keyCount() - 1)

	if !recipient.leaf {
		recipient.insertChildAt(0, donor.removeChildAt(len(donor.children)-1))
	}

	donor.recomputeSize()
	recipient.recomputeSize()
}

// borrowFromRight is the mirror image of borrowFromLeft.
func (t *Tree) borrowFromRight(n *node, index int) {
	donor := n.children[index+1]
	recipient := n.children[index]

	recipient.keys = append(recipient.keys, n.keys[index])
	n.keys[index] = donor.removeKeyAt(0)

	if !recipient.leaf {
		recipient.children = append(recipient.children, donor.removeChildAt(0))
	}

	donor.recomputeSize()
	recipient.recomputeSize()
}

// mergeChildren combines the children at index and index+1 with the
// separator key between them into a single node of 2t-1 keys. The right
// sibling and the separator are removed from n; n's own subtree size is
// unchanged.
func (t *Tree) mergeChildren(n *node, index int) {
	left := n.children[index]
	right := n.children[index+1]

	left.keys = append(left.keys, n.removeKeyAt(index))
	left.keys = append(left.keys, right.keys...)
	if !left.leaf {
		left.children = append(left.children, right.children...)
	}

	n.removeChildAt(index + 1)
	left.recomputeSize()
}
