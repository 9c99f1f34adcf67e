package tree

import (
	"cmp"

	"github.com/kay64/computer-science/container"
)

var _ container.Map[int, string] = (*Tree[int, string])(nil)

// Tree is an ordered map implemented as a binary search tree. Keys
// are unique; putting an existing key replaces its value. The tree
// applies no balancing strategy, so its height depends exclusively
// on the order of the put and remove operations.
//
// Nodes are kept in an arena and reference each other by position.
// A Tree is not safe for concurrent use.
type Tree[K, V any] struct {
	nodes arena[K, V]
	root  nodeID
	cmp   Lesser[K]
	len   int
}

// New creates an empty tree that orders its keys with cmp. cmp
// must define a total order on K
func New[K, V any](cmp Lesser[K]) *Tree[K, V] {
	return &Tree[K, V]{nodes: newArena[K, V](), root: sentinel, cmp: cmp}
}

// NewOrdered creates an empty tree for keys that support the
// ordering operators
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](OrderedLesser[K]{})
}

// Len returns the number of keys in the tree
func (t *Tree[K, V]) Len() int {
	return t.len
}

// Empty returns true if the tree has no keys
func (t *Tree[K, V]) Empty() bool {
	return t.root == sentinel
}

func (t *Tree[K, V]) find(key K) nodeID {
	curr := t.root

	for curr != sentinel {
		n := t.nodes.at(curr)
		c := t.cmp.Less(key, n.key)

		switch {
		case c < 0:
			curr = n.left
		case c > 0:
			curr = n.right
		default:
			return curr
		}
	}

	return sentinel
}

func (t *Tree[K, V]) entry(id nodeID) (key K, value V, ok bool) {
	if id == sentinel {
		return key, value, false
	}

	n := t.nodes.at(id)
	return n.key, n.value, true
}

// Get returns the value stored under key
func (t *Tree[K, V]) Get(key K) (V, bool) {
	_, value, ok := t.entry(t.find(key))
	return value, ok
}

// GetMut returns a pointer to the value stored under key so that
// it can be modified in place. The pointer must not be used after
// the next call to Put or Remove
func (t *Tree[K, V]) GetMut(key K) (*V, bool) {
	id := t.find(key)
	if id == sentinel {
		return nil, false
	}

	return &t.nodes.at(id).value, true
}

// Contains returns true if the tree has a value for key
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != sentinel
}

// Min returns the entry with the lowest key. ok is false
// if the tree is empty
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	curr := t.root
	for curr != sentinel && t.nodes.at(curr).left != sentinel {
		curr = t.nodes.at(curr).left
	}

	return t.entry(curr)
}

// Max returns the entry with the highest key. ok is false
// if the tree is empty
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	curr := t.root
	for curr != sentinel && t.nodes.at(curr).right != sentinel {
		curr = t.nodes.at(curr).right
	}

	return t.entry(curr)
}

// Higher returns the entry with the lowest key that is greater
// than or equal to key
func (t *Tree[K, V]) Higher(key K) (K, V, bool) {
	higher := sentinel

	for curr := t.root; curr != sentinel; {
		n := t.nodes.at(curr)
		if t.cmp.Less(key, n.key) <= 0 {
			higher = curr
			curr = n.left
		} else {
			curr = n.right
		}
	}

	return t.entry(higher)
}

// Lower returns the entry with the highest key that is lower
// than or equal to key
func (t *Tree[K, V]) Lower(key K) (K, V, bool) {
	lower := sentinel

	for curr := t.root; curr != sentinel; {
		n := t.nodes.at(curr)
		if t.cmp.Less(key, n.key) < 0 {
			curr = n.left
		} else {
			lower = curr
			curr = n.right
		}
	}

	return t.entry(lower)
}

// InOrderWalk calls fn for every entry in increasing key order.
// fn must not modify the tree
func (t *Tree[K, V]) InOrderWalk(fn func(K, V)) {
	var stack []nodeID

	for curr := t.root; curr != sentinel || len(stack) > 0; {
		for curr != sentinel {
			stack = append(stack, curr)
			curr = t.nodes.at(curr).left
		}

		n := t.nodes.at(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
		fn(n.key, n.value)
		curr = n.right
	}
}

// ReverseOrderWalk calls fn for every entry in decreasing key
// order. fn must not modify the tree
func (t *Tree[K, V]) ReverseOrderWalk(fn func(K, V)) {
	var stack []nodeID

	for curr := t.root; curr != sentinel || len(stack) > 0; {
		for curr != sentinel {
			stack = append(stack, curr)
			curr = t.nodes.at(curr).right
		}

		n := t.nodes.at(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
		fn(n.key, n.value)
		curr = n.left
	}
}

// PreOrderWalk calls fn for every node before visiting its left
// and then its right subtree. fn must not modify the tree
func (t *Tree[K, V]) PreOrderWalk(fn func(K, V)) {
	if t.root == sentinel {
		return
	}

	stack := []nodeID{t.root}
	for len(stack) > 0 {
		n := t.nodes.at(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
		fn(n.key, n.value)

		if n.right != sentinel {
			stack = append(stack, n.right)
		}
		if n.left != sentinel {
			stack = append(stack, n.left)
		}
	}
}
