package db

// Enqueue adds values in order and returns the queue length. A full ring
// stops at the first refused value and reports ErrQueueFull; values
// accepted before it stay queued.
func (d *Database) Enqueue(key string, values ...string) (int, error) {
	obj, err := d.getOrCreate(key, ObjQueue)
	if err != nil {
		return 0, err
	}

	for _, v := range values {
		if !obj.Queue.Enqueue(v) {
			return obj.Queue.Len(), ErrQueueFull
		}
	}
	return obj.Queue.Len(), nil
}

func (d *Database) Dequeue(key string) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjQueue)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.Queue.Dequeue()
	d.dropIfEmpty(key, obj)
	return value, ok, nil
}

func (d *Database) QPeek(key string) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjQueue)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.Queue.Peek()
	return value, ok, nil
}

func (d *Database) QLen(key string) (int, error) {
	obj, found, err := d.lookup(key, ObjQueue)
	if err != nil || !found {
		return 0, err
	}
	return obj.Queue.Len(), nil
}

func (d *Database) QValues(key string) ([]string, error) {
	obj, found, err := d.lookup(key, ObjQueue)
	if err != nil || !found {
		return []string{}, err
	}
	return obj.Queue.Values(), nil
}

func (d *Database) StackPush(key string, values ...string) (int, error) {
	obj, err := d.getOrCreate(key, ObjStack)
	if err != nil {
		return 0, err
	}

	for _, v := range values {
		obj.Stack.Push(v)
	}
	return obj.Stack.Len(), nil
}

func (d *Database) StackPop(key string) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjStack)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.Stack.Pop()
	d.dropIfEmpty(key, obj)
	return value, ok, nil
}

func (d *Database) StackPeek(key string) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjStack)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.Stack.Peek()
	return value, ok, nil
}

func (d *Database) StackLen(key string) (int, error) {
	obj, found, err := d.lookup(key, ObjStack)
	if err != nil || !found {
		return 0, err
	}
	return obj.Stack.Len(), nil
}

func (d *Database) StackValues(key string) ([]string, error) {
	obj, found, err := d.lookup(key, ObjStack)
	if err != nil || !found {
		return []string{}, err
	}
	return obj.Stack.Values(), nil
}
