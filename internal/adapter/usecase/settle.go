package usecase

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"campaign-autopilot/internal/core/domain"
)

// settleAll runs fn for every index in [0, n) concurrently and returns once
// all calls have returned. A limit <= 0 runs every call at once. fn records
// its own outcome; one call never cancels another.
func settleAll(n, limit int, fn func(i int)) {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// keyLock serialises work per autopilot key inside one process.
type keyLock struct {
	mu   sync.Mutex
	held map[domain.AutopilotKey]*keyEntry
}

type keyEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{held: make(map[domain.AutopilotKey]*keyEntry)}
}

// Lock blocks until k is free and returns the matching unlock func.
func (l *keyLock) Lock(k domain.AutopilotKey) func() {
	l.mu.Lock()
	e, ok := l.held[k]
	if !ok {
		e = &keyEntry{}
		l.held[k] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.held, k)
		}
		l.mu.Unlock()
	}
}
