package fsstore

import "sync"

// Locks serializes mutations per work. The store itself has no transaction
// primitive, so "scan existing ids → compute next → persist" and
// read-modify-write sequences must run under the work's lock or two callers
// can mint the same identifier / silently overwrite each other.
type Locks struct {
	mu    sync.Mutex
	works map[string]*sync.Mutex
}

func NewLocks() *Locks {
	return &Locks{works: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for one work and returns the release func.
//
//	defer locks.Lock(workID)()
func (l *Locks) Lock(workID string) func() {
	l.mu.Lock()
	m, ok := l.works[workID]
	if !ok {
		m = &sync.Mutex{}
		l.works[workID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
