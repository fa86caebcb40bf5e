package types

// DefaultMap is a map that creates missing entries on read.
//
//	m := NewDefaultMap[string](func() []int { return nil })
//	xs := m.Get("key") // creates and stores an empty entry for "key"
//
// It is not safe for concurrent use.
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap returns an empty DefaultMap that builds missing values with defaultFunc.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value for key, storing a fresh default first when key is absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set stores val under key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Delete removes key. The next Get recreates it from the default.
func (d *DefaultMap[K, V]) Delete(key K) {
	delete(d.data, key)
}

// Has reports whether key holds a value, without creating one.
func (d *DefaultMap[K, V]) Has(key K) bool {
	_, ok := d.data[key]
	return ok
}

// Len returns the number of stored keys.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}
