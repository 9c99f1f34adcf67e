package list

import (
	"github.com/kay64/computer-science/container"
	errs "github.com/kay64/computer-science/errors"
	"github.com/pkg/errors"
)

var (
	_ container.Sequence[int] = (*LinkedList[int])(nil)
	_ container.Stack[int]    = (*LinkedList[int])(nil)
	_ container.Queue[int]    = (*LinkedList[int])(nil)
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list. It can be used as a
// sequence, as a stack, where values are pushed and popped at
// the head, or as a queue, where values are enqueued at the tail
// and dequeued from the head. A LinkedList is not safe for
// concurrent use
type LinkedList[T any] struct {
	head *node[T]
	len  int
}

// New creates an empty list
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// From creates a list holding a single value
func From[T any](value T) *LinkedList[T] {
	return &LinkedList[T]{head: &node[T]{value: value}, len: 1}
}

// Len returns the number of values in the list
func (l *LinkedList[T]) Len() int {
	return l.len
}

// Empty returns true if the list has no values
func (l *LinkedList[T]) Empty() bool {
	return l.head == nil
}

// link returns the slot that points to the node at index, which
// is the slot after the last node when index equals Len
func (l *LinkedList[T]) link(index int) **node[T] {
	curr := &l.head
	for i := 0; i < index && *curr != nil; i++ {
		curr = &(*curr).next
	}
	return curr
}

func (l *LinkedList[T]) at(index int) *node[T] {
	if index < 0 || index >= l.len {
		return nil
	}
	return *l.link(index)
}

// Get returns the value at index
func (l *LinkedList[T]) Get(index int) (value T, ok bool) {
	n := l.at(index)
	if n == nil {
		return value, false
	}
	return n.value, true
}

// GetMut returns a pointer to the value at index
func (l *LinkedList[T]) GetMut(index int) (*T, bool) {
	n := l.at(index)
	if n == nil {
		return nil, false
	}
	return &n.value, true
}

// IndexOf returns the position of the first value equal to value
// according to eq
func (l *LinkedList[T]) IndexOf(value T, eq func(a, b T) bool) (int, bool) {
	index := 0
	for curr := l.head; curr != nil; curr = curr.next {
		if eq(curr.value, value) {
			return index, true
		}
		index++
	}
	return -1, false
}

// Insert places value at index. Inserting at Len appends the
// value. Any other index outside of [0, Len] fails with
// errors.ErrOutOfBound
func (l *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > l.len {
		return errors.Wrapf(errs.ErrOutOfBound, "insert at %d in list of size %d", index, l.len)
	}

	slot := l.link(index)
	*slot = &node[T]{value: value, next: *slot}
	l.len++
	return nil
}

// RemoveAt deletes the value at index and returns it
func (l *LinkedList[T]) RemoveAt(index int) (value T, ok bool) {
	if index < 0 || index >= l.len {
		return value, false
	}

	slot := l.link(index)
	n := *slot
	*slot = n.next
	l.len--
	return n.value, true
}

// Peek returns the value at the head of the list
func (l *LinkedList[T]) Peek() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.value, true
}

// Push adds value at the head of the list
func (l *LinkedList[T]) Push(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.len++
}

// Pop removes the value at the head of the list
func (l *LinkedList[T]) Pop() (T, bool) {
	return l.RemoveAt(0)
}

// Enqueue adds value at the tail of the list
func (l *LinkedList[T]) Enqueue(value T) {
	*l.link(l.len) = &node[T]{value: value}
	l.len++
}

// Dequeue removes the value at the head of the list
func (l *LinkedList[T]) Dequeue() (T, bool) {
	return l.RemoveAt(0)
}

// Slice returns the values of the list in order
func (l *LinkedList[T]) Slice() []T {
	res := make([]T, 0, l.len)
	for curr := l.head; curr != nil; curr = curr.next {
		res = append(res, curr.value)
	}
	return res
}
