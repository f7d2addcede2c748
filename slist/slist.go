// Package slist implements a singly linked list with a cached tail.
package slist

import (
	"fmt"
	"iter"
	"strings"
)

type Node[T any] struct {
	Value T
	next  *Node[T]
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}

type List[T any] struct {
	head *Node[T]
	tail *Node[T]
}

func New[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *List[T]) First() *Node[T] {
	return l.head
}

func (l *List[T]) Last() *Node[T] {
	return l.tail
}

func (l *List[T]) Clear() {
	l.head, l.tail = nil, nil
}

// Node returns the node at index or nil if there is none.
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

func (l *List[T]) Len() int {
	count := 0
	for node := l.head; node != nil; node = node.next {
		count++
	}
	return count
}

func (l *List[T]) Values() []T {
	values := []T{}
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.Value)
	}
	return values
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Push adds value at the front of the list.
func (l *List[T]) Push(value T) {
	l.head = &Node[T]{Value: value, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
}

// Append adds value at the end of the list.
func (l *List[T]) Append(value T) {
	if l.IsEmpty() {
		l.Push(value)
		return
	}

	l.tail.next = &Node[T]{Value: value}
	l.tail = l.tail.next
}

// InsertAfter adds value after the node at index. An index outside the
// list appends instead.
func (l *List[T]) InsertAfter(index int, value T) {
	before := l.Node(index)
	if before == nil || before == l.tail {
		l.Append(value)
		return
	}

	before.next = &Node[T]{Value: value, next: before.next}
}

func (l *List[T]) Pop() (T, bool) {
	head := l.head
	if head == nil {
		var zero T
		return zero, false
	}

	l.head = head.next
	if l.head == nil {
		l.tail = nil
	}
	head.next = nil
	return head.Value, true
}

// DeleteLast removes the tail. It walks the whole list to find the new
// tail, so it costs O(n).
func (l *List[T]) DeleteLast() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	if l.head.next == nil {
		return l.Pop()
	}

	previous := l.head
	current := l.head
	for current.next != nil {
		previous = current
		current = current.next
	}

	previous.next = nil
	l.tail = previous
	return current.Value, true
}

// RemoveAfter removes the node that follows the node at index.
func (l *List[T]) RemoveAfter(index int) (T, bool) {
	before := l.Node(index)
	if before == nil || before.next == nil {
		var zero T
		return zero, false
	}

	removed := before.next
	if removed == l.tail {
		l.tail = before
	}
	before.next = removed.next
	removed.next = nil
	return removed.Value, true
}

func (l *List[T]) String() string {
	if l.IsEmpty() {
		return "Empty list"
	}

	parts := []string{}
	for node := l.head; node != nil; node = node.next {
		parts = append(parts, fmt.Sprint(node.Value))
	}
	return strings.Join(parts, " -> ")
}
