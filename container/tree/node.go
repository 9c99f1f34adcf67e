package tree

// nodeID is the position of a node within the arena of a tree
type nodeID int

// sentinel is the reserved slot of the arena that stands for a
// missing node. It is never written to
const sentinel nodeID = 0

const releasedFlag uint = 0x00000001

// node is a key value entry of the tree. All the links to other
// nodes are positions within the same arena
type node[K, V any] struct {
	key   K
	value V

	metadata uint
	left     nodeID
	right    nodeID

	// parent is only used to relink nodes on deletion. Once a node
	// is released the slot is reused to chain the free list
	parent nodeID
}

func isReleased[K, V any](n *node[K, V]) bool {
	return n.metadata&releasedFlag == releasedFlag
}

// arena is a growable store of nodes. Released nodes are kept
// in a free list and reused by later allocations
type arena[K, V any] struct {
	nodes    []node[K, V]
	free     nodeID
	released int
}

func newArena[K, V any]() arena[K, V] {
	return arena[K, V]{nodes: make([]node[K, V], 1)}
}

// alloc stores a new node and returns its position. Any pointer
// obtained with at before a call to alloc may be invalidated
func (a *arena[K, V]) alloc(key K, value V, parent nodeID) nodeID {
	if a.free == sentinel {
		a.nodes = append(a.nodes, node[K, V]{key: key, value: value, parent: parent})
		return nodeID(len(a.nodes) - 1)
	}

	id := a.free
	n := &a.nodes[id]
	a.free = n.parent
	a.released--

	*n = node[K, V]{key: key, value: value, parent: parent}
	return id
}

// release moves the value out of the node, clears the node and
// chains it into the free list
func (a *arena[K, V]) release(id nodeID) V {
	n := a.at(id)
	value := n.value

	*n = node[K, V]{metadata: releasedFlag, parent: a.free}
	a.free = id
	a.released++

	return value
}

// at returns the node stored at id. It panics when id does not
// reference a live node
func (a *arena[K, V]) at(id nodeID) *node[K, V] {
	if id == sentinel {
		panic("attempt to access the sentinel node")
	}

	n := &a.nodes[id]
	if isReleased(n) {
		panic("attempt to access a released node")
	}

	return n
}

// capacity returns the number of slots that can hold nodes
func (a *arena[K, V]) capacity() int {
	return len(a.nodes) - 1
}
