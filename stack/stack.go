// Package stack provides LIFO stacks backed by a slice or by linked nodes.
package stack

type Interface[T any] interface {
	Push(value T)
	Pop() (T, bool)
	Peek() (T, bool)
	IsEmpty() bool
	Len() int
	Values() []T
}

var (
	_ Interface[int] = (*Stack[int])(nil)
	_ Interface[int] = (*Linked[int])(nil)
)

// Stack keeps its items in a slice with the top at the end.
type Stack[T any] struct {
	items []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.IsEmpty() {
		return zero, false
	}

	top := len(s.items) - 1
	out := s.items[top]
	s.items[top] = zero
	s.items = s.items[:top]
	return out, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Values returns the items from top to bottom.
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		values = append(values, s.items[i])
	}
	return values
}
