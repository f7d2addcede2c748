// Package dlist implements a doubly linked list addressed by position.
package dlist

import (
	"fmt"
	"iter"
	"strings"
)

// Node is an element of a List. Two nodes are equal only when they are the
// same node.
type Node[T any] struct {
	Value T
	next  *Node[T]
	prev  *Node[T]
}

// Next returns the node after n, or nil if n is the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node before n, or nil if n is the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

func (n *Node[T]) unlink() {
	n.next = nil
	n.prev = nil
}

// List is a doubly linked list. The zero value is an empty list ready to use.
// A List is not safe for concurrent use.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{head: nil, tail: nil}
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// First returns the head, or nil for an empty list.
func (l *List[T]) First() *Node[T] {
	return l.head
}

// Last returns the tail, or nil for an empty list.
func (l *List[T]) Last() *Node[T] {
	return l.tail
}

// Clear drops every node. Nodes still held by the caller are unlinked.
func (l *List[T]) Clear() {
	for node := l.head; node != nil; {
		next := node.next
		node.unlink()
		node = next
	}
	l.head, l.tail = nil, nil
}

// Node returns the node at the zero based index, or nil when index is
// negative or past the tail. Cost is O(index).
func (l *List[T]) Node(index int) *Node[T] {
	if index < 0 {
		return nil
	}

	node := l.head
	for i := 0; node != nil && i < index; i++ {
		node = node.next
	}
	return node
}

// At returns the value at index.
func (l *List[T]) At(index int) (T, bool) {
	node := l.Node(index)
	if node == nil {
		var zero T
		return zero, false
	}
	return node.Value, true
}

// Len counts the nodes by walking from the head.
func (l *List[T]) Len() int {
	length := 0
	for node := l.head; node != nil; node = node.next {
		length++
	}
	return length
}

// ForwardValues returns the values from head to tail. The second result
// is false when the list is empty.
func (l *List[T]) ForwardValues() ([]T, bool) {
	if l.IsEmpty() {
		return nil, false
	}

	values := []T{}
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.Value)
	}
	return values, true
}

// BackwardValues returns the values from tail to head following prev links.
func (l *List[T]) BackwardValues() ([]T, bool) {
	if l.tail == nil {
		return nil, false
	}

	values := []T{}
	for node := l.tail; node != nil; node = node.prev {
		values = append(values, node.Value)
	}
	return values, true
}

// All yields the values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.tail; node != nil; node = node.prev {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Push inserts value before the current head.
func (l *List[T]) Push(value T) {
	node := &Node[T]{Value: value}
	if l.IsEmpty() {
		l.head, l.tail = node, node
		return
	}

	node.next = l.head
	l.head.prev = node
	l.head = node
}

// Append inserts value after the current tail.
func (l *List[T]) Append(value T) {
	node := &Node[T]{Value: value}
	if l.tail == nil {
		l.head, l.tail = node, node
		return
	}

	node.prev = l.tail
	l.tail.next = node
	l.tail = node
}

// InsertAfter places value right after the node at index and reports
// whether it did. An out of range index leaves the list untouched.
func (l *List[T]) InsertAfter(index int, value T) bool {
	node := l.Node(index)
	if node == nil {
		return false
	}

	if node == l.tail {
		l.Append(value)
		return true
	}

	inserted := &Node[T]{Value: value, prev: node, next: node.next}
	node.next.prev = inserted
	node.next = inserted
	return true
}

// Pop removes the head and returns its value.
func (l *List[T]) Pop() (T, bool) {
	head := l.head
	if head == nil {
		var zero T
		return zero, false
	}

	l.head = head.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}

	head.unlink()
	return head.Value, true
}

// DeleteLast removes the tail and returns its value.
func (l *List[T]) DeleteLast() (T, bool) {
	tail := l.tail
	if tail == nil {
		var zero T
		return zero, false
	}

	if tail == l.head {
		l.head, l.tail = nil, nil
	} else {
		l.tail = tail.prev
		l.tail.next = nil
	}

	tail.unlink()
	return tail.Value, true
}

// RemoveAt removes the node at index and returns its value.
func (l *List[T]) RemoveAt(index int) (T, bool) {
	node := l.Node(index)
	if node == nil {
		var zero T
		return zero, false
	}

	switch node {
	case l.head:
		return l.Pop()
	case l.tail:
		return l.DeleteLast()
	}

	node.prev.next = node.next
	node.next.prev = node.prev
	node.unlink()
	return node.Value, true
}

func (l *List[T]) String() string {
	if l.IsEmpty() {
		return "Empty List"
	}

	var sb strings.Builder
	for node := l.head; node != nil; node = node.next {
		if node != l.head {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "%v", node.Value)
	}
	return sb.String()
}
