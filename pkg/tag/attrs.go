package tag

// Attrs is an insertion-ordered string map. Setting an existing key keeps its
// position; new keys are appended. The zero value is ready to use.
type Attrs struct {
	keys   []string
	values map[string]string
}

// Get returns the value for key, or "" when absent.
func (a *Attrs) Get(key string) string {
	return a.values[key]
}

// Lookup returns the value for key and whether it is present.
func (a *Attrs) Lookup(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Set stores value under key.
func (a *Attrs) Set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Remove deletes key. Absent keys are ignored.
func (a *Attrs) Remove(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Has reports whether key is present.
func (a *Attrs) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Len returns the number of attributes.
func (a *Attrs) Len() int {
	return len(a.keys)
}

// Keys returns the keys in insertion order.
func (a *Attrs) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Each calls fn for every attribute in insertion order.
func (a *Attrs) Each(fn func(key, value string)) {
	for _, k := range a.keys {
		fn(k, a.values[k])
	}
}

// Map returns a copy of the attributes as a plain map.
func (a *Attrs) Map() map[string]string {
	out := make(map[string]string, len(a.keys))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}
