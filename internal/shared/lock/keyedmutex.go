// Package lock provides in-process locking primitives.
package lock

import "sync"

// KeyedMutex serializes operations per key. Subscription writes use it to
// guarantee the expire-then-insert sequence for one restaurant never
// interleaves with a concurrent purchase for the same restaurant.
//
// Entries are reference counted and removed once the last holder unlocks,
// so the map does not grow with the number of distinct keys seen.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[uint]*keyedMutexEntry
}

type keyedMutexEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates a new KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[uint]*keyedMutexEntry),
	}
}

// Lock acquires the mutex for the given key, blocking until it is available.
func (k *KeyedMutex) Lock(key uint) {
	k.mu.Lock()
	entry, ok := k.entries[key]
	if !ok {
		entry = &keyedMutexEntry{}
		k.entries[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
}

// Unlock releases the mutex for the given key. Calling Unlock for a key that
// is not locked panics, matching sync.Mutex semantics.
func (k *KeyedMutex) Unlock(key uint) {
	k.mu.Lock()
	entry, ok := k.entries[key]
	if !ok {
		k.mu.Unlock()
		panic("lock: unlock of unlocked key")
	}
	entry.refs--
	if entry.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	entry.mu.Unlock()
}
