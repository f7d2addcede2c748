package slist

import (
	"reflect"
	"slices"
	"testing"
)

func TestList(t *testing.T) {
	list := New[int]()
	list.Push(10)
	list.Append(15)
	list.Push(20)
	list.Append(25)
	list.Push(30)
	list.Append(35)
	list.Push(40)
	list.Append(45)
	list.Push(50)
	list.InsertAfter(0, 12)

	expected := []int{50, 12, 40, 30, 20, 10, 15, 25, 35, 45}
	if !reflect.DeepEqual(list.Values(), expected) {
		t.Errorf("Expected %v, got %v", expected, list.Values())
	}
	if list.Len() != 10 {
		t.Error("Expected Len() to be 10")
	}

	if v, ok := list.Pop(); !ok || v != 50 {
		t.Error("Expected Pop() to return 50")
	}
	if v, ok := list.DeleteLast(); !ok || v != 45 {
		t.Error("Expected DeleteLast() to return 45")
	}
	if list.Last().Value != 35 {
		t.Error("Expected Last() to hold 35")
	}
	if v, ok := list.RemoveAfter(4); !ok || v != 15 {
		t.Error("Expected RemoveAfter(4) to return 15")
	}

	expected = []int{12, 40, 30, 20, 10, 25, 35}
	if !reflect.DeepEqual(slices.Collect(list.All()), expected) {
		t.Errorf("Expected %v, got %v", expected, list.Values())
	}
	if list.String() != "12 -> 40 -> 30 -> 20 -> 10 -> 25 -> 35" {
		t.Errorf("Expected other rendering, got '%s'", list.String())
	}
}

func TestInsertAfterOutOfRange(t *testing.T) {
	list := New[string]()
	list.Push("Alex")
	list.Append("Mariya")
	list.Push("Tina")
	list.Append("Micheal")
	list.InsertAfter(0, "Richard")
	list.InsertAfter(12, "Onam")
	list.InsertAfter(-1, "Zed")

	expected := []string{"Tina", "Richard", "Alex", "Mariya", "Micheal", "Onam", "Zed"}
	if !reflect.DeepEqual(list.Values(), expected) {
		t.Errorf("Expected %v, got %v", expected, list.Values())
	}
	if list.Last().Value != "Zed" {
		t.Error("Expected Last() to hold Zed")
	}
}

func TestRemoveAfterTail(t *testing.T) {
	list := New[int]()
	list.Append(1)
	list.Append(2)

	if _, ok := list.RemoveAfter(1); ok {
		t.Error("Expected RemoveAfter(1) on the tail to fail")
	}
	if _, ok := list.RemoveAfter(5); ok {
		t.Error("Expected RemoveAfter(5) to fail")
	}
	if v, ok := list.RemoveAfter(0); !ok || v != 2 {
		t.Error("Expected RemoveAfter(0) to return 2")
	}
	if list.Last() != list.First() {
		t.Error("Expected the tail to move back to the head")
	}

	list.Append(3)
	if !reflect.DeepEqual(list.Values(), []int{1, 3}) {
		t.Errorf("Expected [1 3], got %v", list.Values())
	}
}

func TestEmpty(t *testing.T) {
	var list List[int]

	if !list.IsEmpty() || list.Len() != 0 {
		t.Error("Expected list to be empty")
	}
	if list.Node(0) != nil {
		t.Error("Expected Node(0) to be nil")
	}
	if _, ok := list.Pop(); ok {
		t.Error("Expected Pop() to fail")
	}
	if _, ok := list.DeleteLast(); ok {
		t.Error("Expected DeleteLast() to fail")
	}
	if list.String() != "Empty list" {
		t.Errorf("Expected 'Empty list', got '%s'", list.String())
	}

	list.Append(7)
	if v, _ := list.DeleteLast(); v != 7 || !list.IsEmpty() || list.Last() != nil {
		t.Error("Expected DeleteLast() on a single node to empty the list")
	}

	list.Append(1)
	list.Append(2)
	list.Clear()
	if !list.IsEmpty() || list.Last() != nil {
		t.Error("Expected Clear() to empty the list")
	}
}
