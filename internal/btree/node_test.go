package btree

import "testing"

// =============================================================================
// Node Helper Tests
// =============================================================================

func TestFindKey(t *testing.T) {
	n := &node{keys: []Key{10, 20, 30, 40}, leaf: true}

	tests := []struct {
		name      string
		key       Key
		wantIndex int
		wantFound bool
	}{
		{"before first", 5, 0, false},
		{"first", 10, 0, true},
		{"between", 25, 2, false},
		{"middle", 30, 2, true},
		{"last", 40, 3, true},
		{"after last", 99, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found := n.findKey(tt.key)
			if index != tt.wantIndex || found != tt.wantFound {
				t.Errorf("findKey(%d) = (%d, %v), want (%d, %v)",
					tt.key, index, found, tt.wantIndex, tt.wantFound)
			}
		})
	}
}

func TestFindKeyEmptyNode(t *testing.T) {
	n := newNode(2, true)
	index, found := n.findKey(42)
	if index != 0 || found {
		t.Errorf("findKey on empty node = (%d, %v), want (0, false)", index, found)
	}
}

func TestInsertRemoveKeyAt(t *testing.T) {
	n := newNode(3, true)
	n.insertKeyAt(0, 20)
	n.insertKeyAt(0, 10)
	n.insertKeyAt(2, 40)
	n.insertKeyAt(2, 30)

	want := []Key{10, 20, 30, 40}
	if len(n.keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(n.keys), len(want))
	}
	for i, k := range want {
		if n.keys[i] != k {
			t.Errorf("keys[%d] = %d, want %d", i, n.keys[i], k)
		}
	}

	if got := n.removeKeyAt(1); got != 20 {
		t.Errorf("removeKeyAt(1) = %d, want 20", got)
	}
	if got := n.removeKeyAt(2); got != 40 {
		t.Errorf("removeKeyAt(2) = %d, want 40", got)
	}
	if len(n.keys) != 2 || n.keys[0] != 10 || n.keys[1] != 30 {
		t.Errorf("remaining keys = %v, want [10 30]", n.keys)
	}
}

func TestInsertRemoveChildAt(t *testing.T) {
	parent := newNode(2, false)
	a := newNode(2, true)
	b := newNode(2, true)
	c := newNode(2, true)

	parent.insertChildAt(0, c)
	parent.insertChildAt(0, a)
	parent.insertChildAt(1, b)

	if len(parent.children) != 3 {
		t.Fatalf("got %d children, want 3", len(parent.children))
	}
	if parent.children[0] != a || parent.children[1] != b || parent.children[2] != c {
		t.Error("children are out of order")
	}

	if got := parent.removeChildAt(1); got != b {
		t.Error("removeChildAt(1) returned the wrong child")
	}
	if len(parent.children) != 2 || parent.children[0] != a || parent.children[1] != c {
		t.Error("remaining children are wrong")
	}
}

func TestRecomputeSize(t *testing.T) {
	leaf := &node{keys: []Key{1, 2, 3}, leaf: true}
	leaf.recomputeSize()
	if leaf.size != 3 {
		t.Errorf("leaf size = %d, want 3", leaf.size)
	}

	left := &node{keys: []Key{1, 2}, leaf: true, size: 2}
	right := &node{keys: []Key{7, 8, 9}, leaf: true, size: 3}
	internal := &node{
		keys:     []Key{5},
		children: []*node{left, right},
	}
	internal.recomputeSize()
	if internal.size != 6 {
		t.Errorf("internal size = %d, want 6", internal.size)
	}
}

func TestMinMaxKey(t *testing.T) {
	left := &node{keys: []Key{1, 2}, leaf: true, size: 2}
	right := &node{keys: []Key{7, 8, 9}, leaf: true, size: 3}
	root := &node{
		keys:     []Key{5},
		children: []*node{left, right},
		size:     6,
	}

	if got := root.minKey(); got != 1 {
		t.Errorf("minKey = %d, want 1", got)
	}
	if got := root.maxKey(); got != 9 {
		t.Errorf("maxKey = %d, want 9", got)
	}
}

func TestIsFull(t *testing.T) {
	n := newNode(2, true)
	for _, k := range []Key{1, 2, 3} {
		if n.isFull(2) {
			t.Fatalf("node with %d keys reported full at t=2", len(n.keys))
		}
		n.insertKeyAt(len(n.keys), k)
	}
	if !n.isFull(2) {
		t.Error("node with 3 keys should be full at t=2")
	}
}
