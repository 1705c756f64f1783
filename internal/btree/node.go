package btree

// Key is a stored key. Keys are positive; the zero value never enters a
// tree.
type Key = uint64

// node is a single B-tree node. A node owns its children exclusively;
// there are no parent pointers because every operation descends from the
// root.
type node struct {
	// keys holds the stored keys in strictly ascending order.
	keys []Key

	// children holds the child pointers of an internal node,
	// len(children) = len(keys) + 1. Nil for leaves.
	children []*node

	// size is the number of keys stored in the subtree rooted at this
	// node, including the node's own keys.
	size int

	// leaf marks leaf nodes.
	leaf bool
}

// newNode creates an empty node for a tree of minimum degree t. Key and
// child storage is pre-sized to the node capacity so splits and merges
// are block moves without reallocation.
func newNode(t int, leaf bool) *node {
	n := &node{
		keys: make([]Key, 0, 2*t-1),
		leaf: leaf,
	}
	if !leaf {
		n.children = make([]*node, 0, 2*t)
	}
	return n
}

// keyCount returns the number of keys in the node itself.
func (n *node) keyCount() int {
	return len(n.keys)
}

// isFull reports whether the node holds the maximum 2t-1 keys.
func (n *node) isFull(t int) bool {
	return len(n.keys) == 2*t-1
}

// findKey returns the index of the smallest key >= k, and whether that
// key equals k. The index doubles as the child slot to descend into when
// the key is absent.
func (n *node) findKey(k Key) (int, bool) {
	low, high := 0, len(n.keys)
	for low < high {
		mid := (low + high) / 2
		if n.keys[mid] < k {
			low = mid + 1
		} else {
			high = mid
		}
	}
	if low < len(n.keys) && n.keys[low] == k {
		return low, true
	}
	return low, false
}

// insertKeyAt inserts k at the given index, shifting later keys right.
func (n *node) insertKeyAt(index int, k Key) {
	n.keys = append(n.keys, 0)
	copy(n.keys[index+1:], n.keys[index:])
	n.keys[index] = k
}

// removeKeyAt removes and returns the key at the given index.
func (n *node) removeKeyAt(index int) Key {
	k := n.keys[index]
	n.keys = append(n.keys[:index], n.keys[index+1:]...)
	return k
}

// insertChildAt inserts child at the given index, shifting later
// children right.
func (n *node) insertChildAt(index int, child *node) {
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// removeChildAt removes and returns the child at the given index.
func (n *node) removeChildAt(index int) *node {
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	return child
}

// recomputeSize recalculates the subtree size from the node's own keys
// and its children. Called after a split, merge, or borrow touches the
// node's contents.
func (n *node) recomputeSize() {
	total := len(n.keys)
	for _, child := range n.children {
		total += child.size
	}
	n.size = total
}

// minKey returns the smallest key in the subtree rooted at n.
func (n *node) minKey() Key {
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0]
}

// maxKey returns the largest key in the subtree rooted at n.
func (n *node) maxKey() Key {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1]
}
