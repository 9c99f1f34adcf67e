package tree

// relinkState tracks the progress of replacing a node that has
// two children by its in order successor
type relinkState uint

const (
	searching relinkState = iota
	foundAdjacent
	relinking
	installed
)

// Put stores value under key. If the key is already present its
// value is replaced in place, otherwise a new node is linked as
// the left or right child of the last node visited
func (t *Tree[K, V]) Put(key K, value V) {
	parent := sentinel
	isLeft := false

	for curr := t.root; curr != sentinel; {
		n := t.nodes.at(curr)
		c := t.cmp.Less(key, n.key)

		switch {
		case c == 0:
			n.value = value
			return
		case c < 0:
			isLeft = true
			parent = curr
			curr = n.left
		default:
			isLeft = false
			parent = curr
			curr = n.right
		}
	}

	id := t.nodes.alloc(key, value, parent)

	switch {
	case parent == sentinel:
		t.root = id
	case isLeft:
		t.nodes.at(parent).left = id
	default:
		t.nodes.at(parent).right = id
	}

	t.len++
}

// Remove deletes key from the tree and returns the value it
// had. ok is false if the key was not present
func (t *Tree[K, V]) Remove(key K) (value V, ok bool) {
	id := t.find(key)
	if id == sentinel {
		return value, false
	}

	t.delete(id)
	t.len--
	return t.nodes.release(id), true
}

// delete unlinks the node from the tree preserving the binary
// search tree properties. The node itself is left untouched
func (t *Tree[K, V]) delete(id nodeID) {
	n := t.nodes.at(id)

	switch {
	case n.left == sentinel:
		t.transplant(id, n.right)
	case n.right == sentinel:
		t.transplant(id, n.left)
	default:
		t.replaceWithSuccessor(id)
	}
}

// replaceWithSuccessor puts the minimum of the right subtree of
// id in its place
func (t *Tree[K, V]) replaceWithSuccessor(id nodeID) {
	state := searching
	succ := t.nodes.at(id).right

	for state != installed {
		switch state {
		case searching:
			s := t.nodes.at(succ)
			switch {
			case s.left != sentinel:
				succ = s.left
			case s.parent == id:
				state = foundAdjacent
			default:
				state = relinking
			}

		case relinking:
			// the right subtree of the successor takes its place and
			// the successor adopts the right subtree of id
			t.transplant(succ, t.nodes.at(succ).right)
			right := t.nodes.at(id).right
			t.nodes.at(succ).right = right
			t.nodes.at(right).parent = succ
			t.install(id, succ)
			state = installed

		case foundAdjacent:
			t.install(id, succ)
			state = installed
		}
	}
}

// install moves succ into the position of id, which must have
// two children, and gives it the left subtree of id
func (t *Tree[K, V]) install(id, succ nodeID) {
	t.transplant(id, succ)
	left := t.nodes.at(id).left
	t.nodes.at(succ).left = left
	t.nodes.at(left).parent = succ
}

// transplant replaces the subtree rooted at u as a child of its
// parent with the subtree rooted at v
func (t *Tree[K, V]) transplant(u, v nodeID) {
	parent := t.nodes.at(u).parent

	switch {
	case parent == sentinel:
		t.root = v
	case t.nodes.at(parent).left == u:
		t.nodes.at(parent).left = v
	default:
		t.nodes.at(parent).right = v
	}

	if v != sentinel {
		t.nodes.at(v).parent = parent
	}
}
