package db

// Doubly linked list commands.

func (d *Database) Push(key string, values ...string) (int, error) {
	obj, err := d.getOrCreate(key, ObjList)
	if err != nil {
		return 0, err
	}

	for _, v := range values {
		obj.List.Push(v)
	}
	return obj.List.Len(), nil
}

func (d *Database) Append(key string, values ...string) (int, error) {
	obj, err := d.getOrCreate(key, ObjList)
	if err != nil {
		return 0, err
	}

	for _, v := range values {
		obj.List.Append(v)
	}
	return obj.List.Len(), nil
}

// InsertAfter never creates the key: there is no node to insert after.
func (d *Database) InsertAfter(key string, index int, value string) (bool, error) {
	obj, found, err := d.lookup(key, ObjList)
	if err != nil || !found {
		return false, err
	}
	return obj.List.InsertAfter(index, value), nil
}

func (d *Database) Pop(key string) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjList)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.List.Pop()
	d.dropIfEmpty(key, obj)
	return value, ok, nil
}

func (d *Database) DeleteLast(key string) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjList)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.List.DeleteLast()
	d.dropIfEmpty(key, obj)
	return value, ok, nil
}

func (d *Database) RemoveAt(key string, index int) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjList)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.List.RemoveAt(index)
	d.dropIfEmpty(key, obj)
	return value, ok, nil
}

func (d *Database) Index(key string, index int) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjList)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.List.At(index)
	return value, ok, nil
}

func (d *Database) Len(key string) (int, error) {
	obj, found, err := d.lookup(key, ObjList)
	if err != nil || !found {
		return 0, err
	}
	return obj.List.Len(), nil
}

func (d *Database) Forward(key string) ([]string, error) {
	obj, found, err := d.lookup(key, ObjList)
	if err != nil || !found {
		return []string{}, err
	}

	values, ok := obj.List.ForwardValues()
	if !ok {
		return []string{}, nil
	}
	return values, nil
}

func (d *Database) Backward(key string) ([]string, error) {
	obj, found, err := d.lookup(key, ObjList)
	if err != nil || !found {
		return []string{}, err
	}

	values, ok := obj.List.BackwardValues()
	if !ok {
		return []string{}, nil
	}
	return values, nil
}

func (d *Database) Render(key string) (string, error) {
	obj, found, err := d.lookup(key, ObjList)
	if err != nil {
		return "", err
	}
	if !found {
		return "Empty List", nil
	}
	return obj.List.String(), nil
}

// Singly linked list commands.

func (d *Database) SPush(key string, values ...string) (int, error) {
	obj, err := d.getOrCreate(key, ObjSList)
	if err != nil {
		return 0, err
	}

	for _, v := range values {
		obj.SList.Push(v)
	}
	return obj.SList.Len(), nil
}

func (d *Database) SAppend(key string, values ...string) (int, error) {
	obj, err := d.getOrCreate(key, ObjSList)
	if err != nil {
		return 0, err
	}

	for _, v := range values {
		obj.SList.Append(v)
	}
	return obj.SList.Len(), nil
}

// SInsertAfter appends when index is out of range, so it may create the key.
func (d *Database) SInsertAfter(key string, index int, value string) (int, error) {
	obj, err := d.getOrCreate(key, ObjSList)
	if err != nil {
		return 0, err
	}

	obj.SList.InsertAfter(index, value)
	return obj.SList.Len(), nil
}

func (d *Database) SPop(key string) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjSList)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.SList.Pop()
	d.dropIfEmpty(key, obj)
	return value, ok, nil
}

func (d *Database) SDeleteLast(key string) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjSList)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.SList.DeleteLast()
	d.dropIfEmpty(key, obj)
	return value, ok, nil
}

func (d *Database) SRemoveAfter(key string, index int) (string, bool, error) {
	obj, found, err := d.lookup(key, ObjSList)
	if err != nil || !found {
		return "", false, err
	}

	value, ok := obj.SList.RemoveAfter(index)
	d.dropIfEmpty(key, obj)
	return value, ok, nil
}

func (d *Database) SValues(key string) ([]string, error) {
	obj, found, err := d.lookup(key, ObjSList)
	if err != nil || !found {
		return []string{}, err
	}
	return obj.SList.Values(), nil
}
