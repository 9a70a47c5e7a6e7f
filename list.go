package obtree

// list is a slice with a capacity reserved up front by newList, so inserting
// and removing within that capacity never triggers a reallocation. Node keys
// and node children are both stored as a list: keys capped at maxKeys,
// children capped at maxChildren.
type list[T any] []T

func newList[T any](capacity int) list[T] {
	return make(list[T], 0, capacity)
}

// splice moves m[j:] into l starting at index i, draining it from m.
func (l *list[T]) splice(i, j int, m *list[T]) {
	l.insertTo(i, m.removeFrom(j, len(*m))...)
}

func (l *list[T]) insertTo(i int, items ...T) {
	var (
		insertedList list[T] = items
		newLen               = len(insertedList) + len(*l)
		j                    = len(insertedList) + i
	)
	*l = (*l)[:newLen]

	if newLen > j {
		copy((*l)[j:], (*l)[i:])
	}
	copy((*l)[i:], insertedList)
}

func (l *list[T]) insert(i int, item T) {
	l.insertTo(i, item)
}

func (l *list[T]) removeFrom(i, j int) list[T] {
	var (
		removedListLen = j - i
		removedList    = make(list[T], removedListLen)
		newLen         = len(*l) - removedListLen
	)
	copy(removedList, (*l)[i:j])
	copy((*l)[i:], (*l)[j:])
	*l = (*l)[:newLen]
	return removedList
}

func (l *list[T]) remove(i int) T {
	return l.removeFrom(i, i+1)[0]
}

func (l *list[T]) truncate(n int) {
	*l = (*l)[:n]
}
