// Package btree implements an in-memory order-statistic B-tree over
// distinct positive uint64 keys.
//
// # Overview
//
// The tree is a classic B-tree of minimum degree t (every non-root node
// holds between t-1 and 2t-1 keys), augmented so that every node carries
// the total number of keys stored in its subtree. The augmentation makes
// two order-statistic queries cheap:
//
//   - Rank: the 1-based position of a key in sorted order
//   - Select: the k-th smallest stored key
//
// Both run in O(t * log_t n), as do insertion, deletion, and membership.
// Range enumeration visits only subtrees that can intersect the requested
// interval.
//
// # Node Structure
//
// Nodes live on the heap and own their children directly:
//
//   - keys: strictly ascending, between t-1 and 2t-1 entries (root: 1..2t-1)
//   - children: key count + 1 pointers on internal nodes, none on leaves
//   - size: keys stored in the whole subtree rooted at this node
//
// Insertion splits full nodes on the way down; deletion tops up minimal
// nodes on the way down by borrowing from or merging with a sibling. Both
// protocols are single-pass: the final leaf mutation never fails, and all
// leaves stay at the same depth.
//
// # Usage
//
// Create and use a tree:
//
//	tree, err := btree.New(2)
//
//	// Insert keys (duplicates are silently ignored)
//	tree.Insert(42)
//
//	// Order statistics
//	rank, ok := tree.Rank(42)
//	key, ok := tree.Select(1)
//
//	// Range enumeration
//	keys := tree.RangeKeys(10, 99)
//	primeKeys := tree.RangePrimes(10, 99)
//
// A Tree is not safe for concurrent use; callers that share one across
// goroutines must provide their own locking.
package btree
