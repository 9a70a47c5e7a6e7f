package obtree

// frame is one level of an Iterator's descent path: node, together with
// the key index that is either the iterator's current position (the top
// frame) or the index of the next unvisited key at that level (every
// frame below the top).
type frame[T any] struct {
	node *node[T]
	idx  int
}

// Iterator is a bidirectional cursor over a Tree's in-order sequence,
// represented as a stack of frames. Any mutation of the tree it was
// obtained from invalidates it. The zero value is the empty-tree
// end-equals-begin position; Iterator values returned by Begin/End/Find
// are otherwise only meaningful for the tree that produced them.
type Iterator[T any] struct {
	frames []frame[T]
	fin    *node[T] // rightmost leaf of the tree, the terminal sentinel
}

func rightmostLeaf[T any](n *node[T]) *node[T] {
	for n != nil && !n.isLeaf() {
		n = n.children[len(n.keys)]
	}
	return n
}

// Begin returns an iterator at the leftmost element, or End if empty.
func (t *Tree[T]) Begin() Iterator[T] {
	it := Iterator[T]{fin: rightmostLeaf(t.root)}
	if t.root == nil {
		return it
	}
	n := t.root
	for !n.isLeaf() {
		it.frames = append(it.frames, frame[T]{n, 0})
		n = n.children[0]
	}
	it.frames = append(it.frames, frame[T]{n, 0})
	return it
}

// End returns the one-past-the-end sentinel iterator.
func (t *Tree[T]) End() Iterator[T] {
	it := Iterator[T]{fin: rightmostLeaf(t.root)}
	if t.root == nil {
		return it
	}
	n := t.root
	for !n.isLeaf() {
		it.frames = append(it.frames, frame[T]{n, len(n.keys)})
		n = n.children[len(n.keys)]
	}
	it.frames = append(it.frames, frame[T]{n, len(n.keys)})
	return it
}

// Find returns an iterator at the in-order-leftmost element equivalent to
// v, or End if none exists. Unlike Contains, the descent continues past
// the first match it sees: once a node holds an equivalent key, Find
// keeps descending into that key's left child and any further left
// subtrees whose own lowerBound also lands on an equivalent key, so
// duplicates straddling subtree boundaries never make Find stop short of
// the true leftmost occurrence.
func (t *Tree[T]) Find(v T) Iterator[T] {
	it := Iterator[T]{fin: rightmostLeaf(t.root)}
	n := t.root
	for n != nil {
		idx := t.lowerBound(n, v)
		it.frames = append(it.frames, frame[T]{n, idx})
		if idx != len(n.keys) && t.equal(n.keys[idx], v) {
			n = childAt(n, idx)
			for n != nil {
				idx = t.lowerBound(n, v)
				if idx == len(n.keys) {
					break
				}
				it.frames = append(it.frames, frame[T]{n, idx})
				n = childAt(n, idx)
			}
			return it
		}
		n = childAt(n, idx)
	}
	return t.End()
}

// Value returns the element at the iterator's current position.
// Dereferencing End (or the empty-tree iterator) panics on the resulting
// out-of-range access; callers must not dereference past the end of the
// sequence.
func (it *Iterator[T]) Value() T {
	top := it.frames[len(it.frames)-1]
	return top.node.keys[top.idx]
}

// Next advances the iterator to its in-order successor.
func (it *Iterator[T]) Next() {
	i := len(it.frames) - 1
	it.frames[i].idx++
	top := it.frames[i]

	if top.node == it.fin && top.idx == len(top.node.keys) {
		return
	}
	if !top.node.isLeaf() {
		n := top.node.children[top.idx]
		for !n.isLeaf() {
			it.frames = append(it.frames, frame[T]{n, 0})
			n = n.children[0]
		}
		it.frames = append(it.frames, frame[T]{n, 0})
	} else if top.idx == len(top.node.keys) {
		for len(it.frames) > 0 && it.frames[len(it.frames)-1].idx == len(it.frames[len(it.frames)-1].node.keys) {
			it.frames = it.frames[:len(it.frames)-1]
		}
	}
}

// Prev moves the iterator to its in-order predecessor. Decrementing Begin
// is undefined — it panics on the resulting empty-stack access.
func (it *Iterator[T]) Prev() {
	top := it.frames[len(it.frames)-1]
	if top.node.isLeaf() {
		if top.idx == 0 {
			for it.frames[len(it.frames)-1].idx == 0 {
				it.frames = it.frames[:len(it.frames)-1]
			}
		}
	} else {
		n := top.node.children[top.idx]
		for !n.isLeaf() {
			it.frames = append(it.frames, frame[T]{n, len(n.keys)})
			n = n.children[len(n.keys)]
		}
		it.frames = append(it.frames, frame[T]{n, len(n.keys)})
	}
	j := len(it.frames) - 1
	it.frames[j].idx--
}

// Equal reports whether it and other refer to the same in-order position.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	if len(it.frames) == 0 || len(other.frames) == 0 {
		return len(it.frames) == len(other.frames)
	}
	a := it.frames[len(it.frames)-1]
	b := other.frames[len(other.frames)-1]
	return a.node == b.node && a.idx == b.idx
}

// clone returns an independent copy of the cursor, so advancing the copy
// never disturbs the original — used by ReverseIterator.Value to peek one
// step back without moving the wrapped forward iterator.
func (it Iterator[T]) clone() Iterator[T] {
	frames := make([]frame[T], len(it.frames))
	copy(frames, it.frames)
	return Iterator[T]{frames: frames, fin: it.fin}
}

// ReverseIterator is a thin adapter over Iterator: it wraps a forward
// position and dereferences to the element one step before it, so that
// RBegin (wrapping End) through REnd (wrapping Begin) walks the tree back
// to front.
type ReverseIterator[T any] struct {
	cur Iterator[T]
}

// RBegin returns a reverse iterator at the rightmost element.
func (t *Tree[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{cur: t.End()}
}

// REnd returns the reverse one-past-the-end sentinel.
func (t *Tree[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{cur: t.Begin()}
}

// Value returns the element one step before the wrapped forward position.
func (r *ReverseIterator[T]) Value() T {
	tmp := r.cur.clone()
	tmp.Prev()
	return tmp.Value()
}

// Next moves to the next element in reverse (i.e., the previous element
// in forward order).
func (r *ReverseIterator[T]) Next() {
	r.cur.Prev()
}

// Prev moves to the previous element in reverse (i.e., the next element
// in forward order).
func (r *ReverseIterator[T]) Prev() {
	r.cur.Next()
}

// Equal reports whether r and other wrap the same forward position.
func (r *ReverseIterator[T]) Equal(other *ReverseIterator[T]) bool {
	return r.cur.Equal(&other.cur)
}
