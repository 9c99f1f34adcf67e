// Package container defines the contracts implemented by the data
// structures of this module.
package container

// Map associates values to unique keys
type Map[K, V any] interface {
	// Get returns the value stored under key
	Get(key K) (V, bool)

	// GetMut returns a pointer to the value stored under key
	GetMut(key K) (*V, bool)

	// Put stores value under key, replacing any previous value
	Put(key K, value V)

	// Remove deletes key and returns the value it had
	Remove(key K) (V, bool)

	// Len returns the number of keys
	Len() int
}

// Sequence is an ordered container accessed by position
type Sequence[T any] interface {
	// Get returns the value at index
	Get(index int) (T, bool)

	// GetMut returns a pointer to the value at index
	GetMut(index int) (*T, bool)

	// Insert places value at index, shifting the values that
	// follow. It fails if index is greater than Len
	Insert(index int, value T) error

	// RemoveAt deletes the value at index and returns it
	RemoveAt(index int) (T, bool)

	// IndexOf returns the position of the first value for
	// which eq returns true when compared with value
	IndexOf(value T, eq func(a, b T) bool) (int, bool)

	Len() int
	Empty() bool
}

// Stack is a last in first out container
type Stack[T any] interface {
	Peek() (T, bool)
	Push(value T)
	Pop() (T, bool)
}

// Queue is a first in first out container
type Queue[T any] interface {
	Peek() (T, bool)
	Enqueue(value T)
	Dequeue() (T, bool)
}
