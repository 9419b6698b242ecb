package timesheet

import (
	"fmt"
	"sync"

	"github.com/worklog-zero/backend/internal/types"
)

// monthLocks serializes all mutations of one (user, month). SQLite gives
// us no row locks to lean on, so the engine brings its own.
var monthLocks = struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}{
	locks: make(map[string]*sync.Mutex),
}

// lockMonth acquires the mutex for a (user, month) and returns the
// matching unlock function.
func lockMonth(user string, month types.Month) func() {
	key := fmt.Sprintf("%s|%s", user, month)

	monthLocks.mu.Lock()
	lock, ok := monthLocks.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		monthLocks.locks[key] = lock
	}
	monthLocks.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
