package fsstore_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"corpus-backend/internal/infrastructure/fsstore"
)

func TestLockSerializesSameWork(t *testing.T) {
	locks := fsstore.NewLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.Lock("satyanusaran")
			counter++
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLockDifferentWorksIndependent(t *testing.T) {
	locks := fsstore.NewLocks()

	releaseA := locks.Lock("work-a")
	defer releaseA()

	// Another work's lock must not block while work-a is held.
	done := make(chan struct{})
	go func() {
		release := locks.Lock("work-b")
		release()
		close(done)
	}()
	<-done
}
