package hash

import "fmt"

// Order preserving hash with string keys and arbitrary values. Backs the
// function table and the variable store of a context. A frozen hash
// rejects mutation, which lets a seeded table be shared and copied.

type (
	stringEntry struct {
		key   string
		value interface{}
	}

	StringHash struct {
		entries []*stringEntry
		index   map[string]int
		frozen  bool
	}

	frozenError struct {
		key string
	}
)

func (f *frozenError) Error() string {
	return fmt.Sprintf("attempt to add, modify, or delete key '%s' in a frozen StringHash", f.key)
}

// NewStringHash returns an empty *StringHash initialized with given capacity
func NewStringHash(capacity int) *StringHash {
	return &StringHash{make([]*stringEntry, 0, capacity), make(map[string]int, capacity), false}
}

// Copy returns a shallow copy of this hash, i.e. each key and value is not cloned
func (h *StringHash) Copy() *StringHash {
	entries := make([]*stringEntry, len(h.entries))
	for i, e := range h.entries {
		entries[i] = &stringEntry{e.key, e.value}
	}
	index := make(map[string]int, len(h.index))
	for k, v := range h.index {
		index[k] = v
	}
	return &StringHash{entries, index, false}
}

// Freeze prevents further changes to the hash
func (h *StringHash) Freeze() {
	h.frozen = true
}

// Get returns the value associated with the given key, or false when the
// key is not present
func (h *StringHash) Get(key string) (interface{}, bool) {
	if p, ok := h.index[key]; ok {
		return h.entries[p].value, true
	}
	return nil, false
}

// Includes returns true when the given key is present in this hash
func (h *StringHash) Includes(key string) bool {
	_, ok := h.index[key]
	return ok
}

// Keys returns the keys of this hash in the order they were added
func (h *StringHash) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.key
	}
	return keys
}

// Len returns the number of entries in this hash
func (h *StringHash) Len() int {
	return len(h.entries)
}

// Put associates the given key with the given value, replacing a previous
// association. Put panics when the hash is frozen
func (h *StringHash) Put(key string, value interface{}) {
	if h.frozen {
		panic(&frozenError{key})
	}
	if p, ok := h.index[key]; ok {
		h.entries[p].value = value
		return
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, &stringEntry{key, value})
}

// Delete removes the entry with the given key and returns its value, or
// nil when the key was not present. Delete panics when the hash is frozen
func (h *StringHash) Delete(key string) interface{} {
	if h.frozen {
		panic(&frozenError{key})
	}
	p, ok := h.index[key]
	if !ok {
		return nil
	}
	value := h.entries[p].value
	delete(h.index, key)
	h.entries = append(h.entries[:p], h.entries[p+1:]...)
	for i := p; i < len(h.entries); i++ {
		h.index[h.entries[i].key] = i
	}
	return value
}
