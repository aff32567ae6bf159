package service

import (
	"sync"

	"github.com/google/uuid"
)

// entityLocks serializes workflow operations per entity id within this
// process. Cross-process races are caught by the version check on commit;
// the local lock just keeps the common single-instance case free of
// version-conflict retries.
type entityLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newEntityLocks() *entityLocks {
	return &entityLocks{locks: make(map[uuid.UUID]*lockEntry)}
}

// lock acquires the mutex for id and returns its release function.
func (l *entityLocks) lock(id uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &lockEntry{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
