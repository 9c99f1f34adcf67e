package tree

import "github.com/pkg/errors"

type checkFrame struct {
	id     nodeID
	parent nodeID
	lower  nodeID
	upper  nodeID
}

// Check verifies the consistency of the tree: keys are strictly
// ordered, every node's parent has it as a child, the length
// matches the reachable nodes and released slots are only found
// in the free list. It returns an error describing the first
// violation found
func (t *Tree[K, V]) Check() error {
	reachable := 0
	limit := t.nodes.capacity()

	stack := []checkFrame{{id: t.root, parent: sentinel, lower: sentinel, upper: sentinel}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.id == sentinel {
			continue
		}

		if int(f.id) > limit {
			return errors.Errorf("node %d is outside of the arena", f.id)
		}

		n := &t.nodes.nodes[f.id]
		if isReleased(n) {
			return errors.Errorf("released node %d is reachable", f.id)
		}

		if n.parent != f.parent {
			return errors.Errorf("node %v has parent %d, expected %d", n.key, n.parent, f.parent)
		}

		if f.lower != sentinel && t.cmp.Less(t.nodes.nodes[f.lower].key, n.key) >= 0 {
			return errors.Errorf("node %v is not greater than %v", n.key, t.nodes.nodes[f.lower].key)
		}

		if f.upper != sentinel && t.cmp.Less(n.key, t.nodes.nodes[f.upper].key) >= 0 {
			return errors.Errorf("node %v is not lower than %v", n.key, t.nodes.nodes[f.upper].key)
		}

		reachable++
		if reachable > limit {
			return errors.New("cycle detected")
		}

		stack = append(stack,
			checkFrame{id: n.left, parent: f.id, lower: f.lower, upper: f.id},
			checkFrame{id: n.right, parent: f.id, lower: f.id, upper: f.upper})
	}

	if reachable != t.len {
		return errors.Errorf("tree has length %d but %d reachable nodes", t.len, reachable)
	}

	released := 0
	for curr := t.nodes.free; curr != sentinel; curr = t.nodes.nodes[curr].parent {
		if !isReleased(&t.nodes.nodes[curr]) {
			return errors.Errorf("live node %d found in the free list", curr)
		}

		released++
		if released > limit {
			return errors.New("cycle detected in the free list")
		}
	}

	if released != t.nodes.released {
		return errors.Errorf("free list has %d nodes, expected %d", released, t.nodes.released)
	}

	if reachable+released != limit {
		return errors.Errorf("%d nodes leaked", limit-reachable-released)
	}

	return nil
}
