package db

import (
	"fmt"

	"skabillium/linear/dlist"
	"skabillium/linear/queue"
	"skabillium/linear/slist"
	"skabillium/linear/stack"
)

type ObjType = byte

const (
	ObjList ObjType = iota
	ObjSList
	ObjQueue
	ObjStack
)

// Queue and stack variants selectable through Options.
const (
	QueueSlice    = "slice"
	QueueLinked   = "linked"
	QueueRing     = "ring"
	QueueTwoStack = "twostack"

	StackSlice  = "slice"
	StackLinked = "linked"
)

type Object struct {
	Kind    ObjType
	Variant string
	List    *dlist.List[string]
	SList   *slist.List[string]
	Queue   queue.Interface[string]
	Stack   stack.Interface[string]
}

// TypeName is what the type command reports for the object.
func (obj *Object) TypeName() string {
	switch obj.Kind {
	case ObjList:
		return "list"
	case ObjSList:
		return "slist"
	case ObjQueue:
		return "queue/" + obj.Variant
	case ObjStack:
		return "stack/" + obj.Variant
	}
	return "unknown"
}

func (obj *Object) isEmpty() bool {
	switch obj.Kind {
	case ObjList:
		return obj.List.IsEmpty()
	case ObjSList:
		return obj.SList.IsEmpty()
	case ObjQueue:
		return obj.Queue.IsEmpty()
	case ObjStack:
		return obj.Stack.IsEmpty()
	}
	return true
}

func (d *Database) newObject(kind ObjType) (*Object, error) {
	switch kind {
	case ObjList:
		return &Object{Kind: ObjList, List: dlist.New[string]()}, nil
	case ObjSList:
		return &Object{Kind: ObjSList, SList: slist.New[string]()}, nil
	case ObjQueue:
		q, err := d.newQueue()
		if err != nil {
			return nil, err
		}
		return &Object{Kind: ObjQueue, Variant: d.opts.QueueKind, Queue: q}, nil
	case ObjStack:
		s, err := d.newStack()
		if err != nil {
			return nil, err
		}
		return &Object{Kind: ObjStack, Variant: d.opts.StackKind, Stack: s}, nil
	}
	return nil, fmt.Errorf("unknown object type %d", kind)
}

func (d *Database) newQueue() (queue.Interface[string], error) {
	switch d.opts.QueueKind {
	case QueueSlice:
		return queue.New[string](), nil
	case QueueLinked:
		return queue.NewLinked[string](), nil
	case QueueRing:
		return queue.NewRing[string](d.opts.RingCapacity)
	case QueueTwoStack:
		return queue.NewTwoStack[string](), nil
	}
	return nil, fmt.Errorf("%w: queue kind '%s'", ErrUnknownVariant, d.opts.QueueKind)
}

func (d *Database) newStack() (stack.Interface[string], error) {
	switch d.opts.StackKind {
	case StackSlice:
		return stack.New[string](), nil
	case StackLinked:
		return stack.NewLinked[string](), nil
	}
	return nil, fmt.Errorf("%w: stack kind '%s'", ErrUnknownVariant, d.opts.StackKind)
}
