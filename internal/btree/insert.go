package btree

// Insert adds k to the tree. Inserting a key that is already present is
// a no-op. Inserting 0 returns ErrInvalidKey.
//
// Algorithm:
//  1. Reject duplicates with a point search, so the descent below can
//     assume it will insert
//  2. If the root is full, grow the tree by one level and split the old
//     root -- the only way the tree ever gets taller
//  3. Descend, splitting any full child before entering it, and add the
//     key to a leaf in sorted position
//
// Each node on the descent path has its subtree size incremented as it
// is passed; pre-splitting guarantees the leaf insertion succeeds, so
// the increments never need undoing.
func (t *Tree) Insert(k Key) error {
	if k == 0 {
		return ErrInvalidKey
	}
	if t.Contains(k) {
		return nil
	}

	if t.root.isFull(t.t) {
		t.growRoot()
	}
	t.insertNonFull(t.root, k)
	return nil
}

// growRoot adds a new internal root above the current one and splits
// the old root into two half-full children.
func (t *Tree) growRoot() {
	newRoot := newNode(t.t, false)
	newRoot.children = append(newRoot.children, t.root)
	newRoot.size = t.root.size
	t.root = newRoot
	t.splitChild(newRoot, 0)
}

// insertNonFull places k somewhere in the subtree rooted at n, which
// must not be full.
func (t *Tree) insertNonFull(n *node, k Key) {
	n.size++

	index, _ := n.findKey(k)
	if n.leaf {
		n.insertKeyAt(index, k)
		return
	}

	if n.children[index].isFull(t.t) {
		t.splitChild(n, index)
		// The promoted median shifts the boundary; k is never equal
		// to it because duplicates were rejected up front.
		if k > n.keys[index] {
			index++
		}
	}
	t.insertNonFull(n.children[index], k)
}

// splitChild splits the full child at the given index into two nodes of
// t-1 keys each and promotes the median key into n. The sibling becomes
// the child to the right of the median.
func (t *Tree) splitChild(n *node, index int) {
	child := n.children[index]
	sibling := newNode(t.t, child.leaf)

	// Upper t-1 keys move to the sibling; the median is promoted.
	median := child.keys[t.t-1]
	sibling.keys = append(sibling.keys, child.keys[t.t:]...)
	child.keys = child.keys[:t.t-1]

	// Internal children hand over their upper t child pointers too.
	if !child.leaf {
		sibling.children = append(sibling.children, child.children[t.t:]...)
		child.children = child.children[:t.t]
	}

	n.insertKeyAt(index, median)
	n.insertChildAt(index+1, sibling)

	child.recomputeSize()
	sibling.recomputeSize()
}
