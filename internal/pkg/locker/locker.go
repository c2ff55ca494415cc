// Package locker provides a keyed mutual-exclusion registry: one logical
// mutex per key, created on demand and released when no longer held or
// awaited. It gives the workflow its per-order critical section — transition
// attempts on the same order serialize, while orders with different keys
// proceed fully in parallel with no shared lock.
package locker

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex is an arena of mutexes keyed by string. The zero value is not
// usable; create instances with NewKeyedMutex.
//
// Entries are reference counted and removed once the last holder or waiter
// releases, so the arena does not grow with the total number of keys ever
// seen, only with current contention.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewKeyedMutex creates an empty lock registry.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*entry),
	}
}

// Lock acquires the mutex for the given key, blocking while another holder
// owns it. It returns the unlock function; callers must invoke it exactly
// once, typically via defer.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}
