package obtree

// node is one vertex of the B-tree. keys holds up to maxKeys(order) live
// elements; children holds up to maxChildren(order) live child pointers.
// A node is a leaf iff it has no children. Both lists are allocated at
// their full capacity up front (newNode), so none of the primitives below
// ever reallocates: capacity stands in for a fixed-size array.
type node[T any] struct {
	keys     list[T]
	children list[*node[T]]
}

func maxKeys(order int) int     { return 2*order - 1 }
func minKeys(order int) int     { return order - 1 }
func maxChildren(order int) int { return 2 * order }

func newNode[T any](order int) *node[T] {
	return &node[T]{
		keys:     newList[T](maxKeys(order)),
		children: newList[*node[T]](maxChildren(order)),
	}
}

func newLeafWithValue[T any](order int, v T) *node[T] {
	n := newNode[T](order)
	n.keys = append(n.keys, v)
	return n
}

func (n *node[T]) isLeaf() bool {
	return len(n.children) == 0
}

func (n *node[T]) isFull(order int) bool {
	return len(n.keys) == maxKeys(order)
}

// childAt returns the child a descent at key index idx would follow, or
// nil at a leaf (a leaf's "children" are conceptually all absent).
func childAt[T any](n *node[T], idx int) *node[T] {
	if n == nil || n.isLeaf() {
		return nil
	}
	return n.children[idx]
}

// splitChildRight splits the full child at index i into two half-full
// nodes, promoting the median key into n at index i. Precondition: n is
// not full, n.children[i] is full.
func (n *node[T]) splitChildRight(i, order int) {
	child := n.children[i]
	r := newNode[T](order)
	m := minKeys(order) // == maxKeys(order) / 2

	median := child.keys[m]
	n.children.insert(i+1, r)
	n.keys.insert(i, median)

	r.keys.splice(0, m+1, &child.keys)
	child.keys.truncate(m)

	if !child.isLeaf() {
		r.children.splice(0, m+1, &child.children)
	}
}

// mergeChildWithRight merges children i and i+1 around parent key i into
// a single maxKeys-keyed node at position i, and drops the separator and
// the now-empty right child from n. Precondition: both children have
// exactly minKeys keys.
func (n *node[T]) mergeChildWithRight(i int) {
	center := n.children[i]
	right := n.children[i+1]

	center.keys.insert(len(center.keys), n.keys[i])
	center.keys.splice(len(center.keys), 0, &right.keys)
	if !center.isLeaf() {
		center.children.splice(len(center.children), 0, &right.children)
	}

	n.keys.remove(i)
	n.children.remove(i + 1)
}

// takeFromLeft rotates one key from the left sibling of child i through
// n into child i. Precondition: children[i-1] has more than minKeys keys,
// children[i] has exactly minKeys.
func (n *node[T]) takeFromLeft(i int) {
	center := n.children[i]
	left := n.children[i-1]

	center.keys.insert(0, n.keys[i-1])
	if !center.isLeaf() {
		last := left.children[len(left.children)-1]
		center.children.insert(0, last)
		left.children.truncate(len(left.children) - 1)
	}

	lastKey := len(left.keys) - 1
	n.keys[i-1] = left.keys[lastKey]
	left.keys.truncate(lastKey)
}

// takeFromRight is the mirror image of takeFromLeft.
func (n *node[T]) takeFromRight(i int) {
	center := n.children[i]
	right := n.children[i+1]

	center.keys.insert(len(center.keys), n.keys[i])
	n.keys[i] = right.keys[0]
	right.keys.remove(0)

	if !center.isLeaf() {
		first := right.children[0]
		center.children.insert(len(center.children), first)
		right.children.remove(0)
	}
}

// ensureChildFull guarantees children[i] holds more than minKeys keys
// before descent, rotating from a sibling with spare keys or, failing
// that, merging child i with a same-sized neighbor.
func (n *node[T]) ensureChildFull(i, order int) {
	minK := minKeys(order)
	if len(n.children[i].keys) > minK {
		return
	}
	switch {
	case i != 0 && len(n.children[i-1].keys) > minK:
		n.takeFromLeft(i)
	case i != len(n.keys) && len(n.children[i+1].keys) > minK:
		n.takeFromRight(i)
	default:
		n.mergeChildWithRight(min(i, len(n.keys)-1))
	}
}

func (n *node[T]) removeLeaf(i int) {
	n.keys.remove(i)
}

// clone deep-copies the subtree rooted at n.
func (n *node[T]) clone(order int) *node[T] {
	c := newNode[T](order)
	c.keys = append(c.keys, n.keys...)
	if !n.isLeaf() {
		for _, child := range n.children {
			c.children = append(c.children, child.clone(order))
		}
	}
	return c
}
