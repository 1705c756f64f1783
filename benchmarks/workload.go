// Package benchmarks compares the ostat tree against google/btree, the
// ecosystem's standard in-memory B-tree, under point operations and
// mixed workloads.
package benchmarks

import (
	"math/rand"

	"github.com/KilimcininKorOglu/ostat/internal/btree"
)

// Workload is a named mix of operations.
type Workload string

const (
	// OLTP is 90% point lookups, 10% inserts.
	OLTP Workload = "oltp"
	// OLAP is 10% point lookups, 90% inserts.
	OLAP Workload = "olap"
	// Reporting is range scans of inclusive windows [k, k+100].
	Reporting Workload = "reporting"
)

// ExecuteWorkload runs ops operations of the given mix against the
// tree. Keys are drawn uniformly from [1, keyspace].
func ExecuteWorkload(tree *btree.Tree, w Workload, ops, keyspace int, rng *rand.Rand) {
	for i := 0; i < ops; i++ {
		choice := rng.Intn(100)
		key := btree.Key(rng.Intn(keyspace) + 1)

		switch w {
		case OLTP:
			if choice < 90 {
				tree.Contains(key)
			} else {
				tree.Insert(key)
			}
		case OLAP:
			if choice < 10 {
				tree.Contains(key)
			} else {
				tree.Insert(key)
			}
		case Reporting:
			tree.RangeKeys(key, key+100)
		}
	}
}
