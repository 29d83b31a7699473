package ordmap

// Map is an insertion-ordered generic map structure
type Map[T comparable] struct {
	keys []string
	m    map[string]T
}

// New creates a new instance of Map
func New[T comparable]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by name
func (r *Map[T]) Get(name string) (T, bool) {
	v, ok := r.m[name]
	return v, ok
}

// Set adds or updates an item by name. Updating an existing item keeps its
// position. It reports false when the stored value was already equal.
func (r *Map[T]) Set(name string, value T) bool {
	prev, ok := r.m[name]
	if ok && prev == value {
		return false
	}
	if !ok {
		r.keys = append(r.keys, name)
	}
	r.m[name] = value
	return true
}

// Contains reports whether name is present
func (r *Map[T]) Contains(name string) bool {
	_, ok := r.m[name]
	return ok
}

// Delete removes an item by name
func (r *Map[T]) Delete(name string) bool {
	if _, ok := r.m[name]; !ok {
		return false
	}
	delete(r.m, name)
	for i, k := range r.keys {
		if k == name {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all items
func (r *Map[T]) Clear() {
	r.keys = r.keys[:0]
	clear(r.m)
}

// Len returns number of items
func (r *Map[T]) Len() int {
	return len(r.keys)
}

// Keys returns a copy of all names in insertion order
func (r *Map[T]) Keys() []string {
	ret := make([]string, len(r.keys))
	copy(ret, r.keys)
	return ret
}

// Range calls fn for every item in insertion order until fn returns false.
// fn must not modify the map.
func (r *Map[T]) Range(fn func(name string, value T) bool) {
	for _, k := range r.keys {
		if !fn(k, r.m[k]) {
			return
		}
	}
}

// Clone returns an independent copy
func (r *Map[T]) Clone() *Map[T] {
	ret := &Map[T]{
		keys: r.Keys(),
		m:    make(map[string]T, len(r.m)),
	}
	for k, v := range r.m {
		ret.m[k] = v
	}
	return ret
}
