package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	const iterations = 200
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				km.Lock(1)
				counter++
				km.Unlock(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8*iterations, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock(1)

	done := make(chan struct{})
	go func() {
		// A different key must not block behind key 1.
		km.Lock(2)
		km.Unlock(2)
		close(done)
	}()

	<-done
	km.Unlock(1)
}

func TestKeyedMutex_CleansUpEntries(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock(7)
	km.Unlock(7)

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.entries)
}

func TestKeyedMutex_UnlockWithoutLockPanics(t *testing.T) {
	km := NewKeyedMutex()

	assert.Panics(t, func() {
		km.Unlock(3)
	})
}
