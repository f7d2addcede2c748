package db

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"skabillium/linear/queue"
)

var (
	ErrWrongType      = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	ErrQueueFull      = errors.New("ERR queue is full")
	ErrUnknownVariant = errors.New("ERR unknown variant")
)

type Options struct {
	QueueKind    string
	StackKind    string
	RingCapacity int
}

func DefaultOptions() Options {
	return Options{QueueKind: QueueSlice, StackKind: StackSlice, RingCapacity: 10}
}

func (o Options) Validate() error {
	switch o.QueueKind {
	case QueueSlice, QueueLinked, QueueTwoStack:
	case QueueRing:
		if o.RingCapacity < 1 {
			return queue.ErrInvalidCapacity
		}
	default:
		return fmt.Errorf("%w: queue kind '%s'", ErrUnknownVariant, o.QueueKind)
	}

	switch o.StackKind {
	case StackSlice, StackLinked:
	default:
		return fmt.Errorf("%w: stack kind '%s'", ErrUnknownVariant, o.StackKind)
	}
	return nil
}

// Database maps names to structures. A key is created by the first write
// and dropped as soon as a removal leaves its structure empty.
type Database struct {
	stores map[string]*Object
	opts   Options
	logger *zerolog.Logger
}

func NewDatabase(opts Options, logger *zerolog.Logger) (*Database, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Database{stores: make(map[string]*Object), opts: opts, logger: logger}, nil
}

func (d *Database) FlushAll() {
	d.logger.Debug().Int("keys", len(d.stores)).Msg("flushing all keys")
	d.stores = make(map[string]*Object)
}

func (d *Database) Keys() []string {
	keys := make([]string, 0, len(d.stores))
	for k := range d.stores {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

func (d *Database) Size() int {
	return len(d.stores)
}

func (d *Database) Get(key string) (*Object, bool) {
	obj, found := d.stores[key]
	return obj, found
}

func (d *Database) Type(key string) (string, bool) {
	obj, found := d.stores[key]
	if !found {
		return "none", false
	}
	return obj.TypeName(), true
}

func (d *Database) Del(key string) bool {
	_, found := d.stores[key]
	if found {
		delete(d.stores, key)
	}
	return found
}

func (d *Database) lookup(key string, kind ObjType) (*Object, bool, error) {
	obj, found := d.stores[key]
	if !found {
		return nil, false, nil
	}

	if obj.Kind != kind {
		return nil, true, ErrWrongType
	}
	return obj, true, nil
}

func (d *Database) getOrCreate(key string, kind ObjType) (*Object, error) {
	obj, found, err := d.lookup(key, kind)
	if err != nil {
		return nil, err
	}
	if found {
		return obj, nil
	}

	obj, err = d.newObject(kind)
	if err != nil {
		return nil, err
	}

	d.logger.Debug().Str("key", key).Str("type", obj.TypeName()).Msg("created key")
	d.stores[key] = obj
	return obj, nil
}

func (d *Database) dropIfEmpty(key string, obj *Object) {
	if !obj.isEmpty() {
		return
	}

	d.logger.Debug().Str("key", key).Msg("dropping empty key")
	delete(d.stores, key)
}
