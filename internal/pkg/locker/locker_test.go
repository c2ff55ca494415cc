package locker_test

import (
	"sync"
	"testing"
	"time"

	"atelier/internal/pkg/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("should serialize holders of the same key", func(t *testing.T) {
		locks := locker.NewKeyedMutex()

		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := locks.Lock("order-1")
				defer unlock()
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, counter)
	})

	t.Run("should not block different keys", func(t *testing.T) {
		locks := locker.NewKeyedMutex()

		unlockFirst := locks.Lock("order-1")
		defer unlockFirst()

		done := make(chan struct{})
		go func() {
			unlock := locks.Lock("order-2")
			unlock()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			require.Fail(t, "lock on a different key should not block")
		}
	})

	t.Run("should block second holder until release", func(t *testing.T) {
		locks := locker.NewKeyedMutex()

		unlock := locks.Lock("order-1")

		acquired := make(chan struct{})
		go func() {
			second := locks.Lock("order-1")
			close(acquired)
			second()
		}()

		select {
		case <-acquired:
			require.Fail(t, "second holder acquired the lock before release")
		case <-time.After(50 * time.Millisecond):
		}

		unlock()

		select {
		case <-acquired:
		case <-time.After(time.Second):
			require.Fail(t, "second holder never acquired the lock after release")
		}
	})

	t.Run("should allow reacquiring a released key", func(t *testing.T) {
		locks := locker.NewKeyedMutex()

		unlock := locks.Lock("order-1")
		unlock()

		again := locks.Lock("order-1")
		again()
	})
}
