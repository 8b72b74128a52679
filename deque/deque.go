package deque

import "errors"

// ErrEmptyDeque indicates a pop or peek on an empty deque.
var ErrEmptyDeque = errors.New("deque: empty")

// minCapacity is the initial ring size on first push; always a power of
// two so index wrapping stays a single mask operation.
const minCapacity = 8

// Deque is a double-ended queue of T over a circular buffer.
// The zero value is an empty deque ready for use.
type Deque[T any] struct {
	buf   []T
	head  int // index of the front element
	count int
}

// New returns an empty deque. Equivalent to new(Deque[T]); provided for
// symmetry with the other lvlcoll constructors.
func New[T any]() *Deque[T] { return &Deque[T]{} }

// Len returns the number of buffered elements. O(1).
func (d *Deque[T]) Len() int { return d.count }

// PushBack appends v at the back. Amortized O(1).
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[(d.head+d.count)&(len(d.buf)-1)] = v
	d.count++
}

// PushFront prepends v at the front. Amortized O(1).
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = (d.head - 1) & (len(d.buf) - 1)
	d.buf[d.head] = v
	d.count++
}

// PopFront removes and returns the front element.
// Returns ErrEmptyDeque when nothing is buffered.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, ErrEmptyDeque
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero // release reference for GC
	d.head = (d.head + 1) & (len(d.buf) - 1)
	d.count--

	return v, nil
}

// PopBack removes and returns the back element.
// Returns ErrEmptyDeque when nothing is buffered.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, ErrEmptyDeque
	}
	i := (d.head + d.count - 1) & (len(d.buf) - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.count--

	return v, nil
}

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (T, error) {
	if d.count == 0 {
		var zero T

		return zero, ErrEmptyDeque
	}

	return d.buf[d.head], nil
}

// Back returns the back element without removing it.
func (d *Deque[T]) Back() (T, error) {
	if d.count == 0 {
		var zero T

		return zero, ErrEmptyDeque
	}

	return d.buf[(d.head+d.count-1)&(len(d.buf)-1)], nil
}

// grow doubles the ring when full, unwrapping elements into the new
// buffer so head is back at index 0.
func (d *Deque[T]) grow() {
	if len(d.buf) == 0 {
		d.buf = make([]T, minCapacity)

		return
	}
	if d.count < len(d.buf) {
		return
	}
	next := make([]T, len(d.buf)*2)
	n := copy(next, d.buf[d.head:])
	copy(next[n:], d.buf[:d.head])
	d.buf = next
	d.head = 0
}
