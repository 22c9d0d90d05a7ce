package security

import (
	"fmt"
	"sync"

	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"
)

const reentrancyKey = "locked"

// Guard is the global invocation-scoped reentrancy flag. While one protected entry point is
// in flight every other protected entry point is rejected.
type Guard struct {
	mu     sync.Mutex
	store  repository.Store
	alerts events.Emitter
	clock  utils.Clock
}

// NewGuard creates a guard persisting its flag in store
func NewGuard(store repository.Store, alerts events.Emitter, clock utils.Clock) *Guard {
	return &Guard{store: store, alerts: alerts, clock: clock}
}

// Enter sets the flag for function and returns the func that clears it.
// Callers defer the release so the flag is cleared on every exit path.
func (g *Guard) Enter(caller, function string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	locked, _, err := repository.Load[bool](g.store, repository.GroupReentrancy, reentrancyKey)
	if err != nil {
		return nil, fmt.Errorf("reentrancy guard: %w", err)
	}
	if locked {
		g.alerts.Emit(events.New(events.ReentrancyDetected, g.clock.Now(), map[string]any{
			"caller":   caller,
			"function": function,
		}))
		utils.Warn("reentrancy detected", map[string]any{"caller": caller, "function": function})
		return nil, fmt.Errorf("%s: %w", function, settlementerrors.ErrReentrancyDetected)
	}

	if err := repository.Save(g.store, repository.GroupReentrancy, reentrancyKey, true); err != nil {
		return nil, fmt.Errorf("reentrancy guard: %w", err)
	}

	var once sync.Once
	return func() {
		once.Do(func() { g.release(function) })
	}, nil
}

// Execute runs fn with the flag held
func (g *Guard) Execute(caller, function string, fn func() error) error {
	release, err := g.Enter(caller, function)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}

// IsLocked reports whether a protected entry point is in flight
func (g *Guard) IsLocked() (bool, error) {
	locked, _, err := repository.Load[bool](g.store, repository.GroupReentrancy, reentrancyKey)
	return locked, err
}

// Reset clears a flag left set by a process that stopped mid-invocation. It reports whether
// a stale flag was found. Only call it before any invocation is in flight.
func (g *Guard) Reset() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	locked, _, err := repository.Load[bool](g.store, repository.GroupReentrancy, reentrancyKey)
	if err != nil || !locked {
		return false, err
	}
	if err := repository.Save(g.store, repository.GroupReentrancy, reentrancyKey, false); err != nil {
		return false, fmt.Errorf("reentrancy guard: %w", err)
	}
	return true, nil
}

func (g *Guard) release(function string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := repository.Save(g.store, repository.GroupReentrancy, reentrancyKey, false); err != nil {
		utils.Error("reentrancy guard: failed to clear flag", map[string]any{"function": function, "error": err.Error()})
	}
}

// FunctionLock guards one named operation against re-entry while leaving others callable
type FunctionLock struct {
	mu    sync.Mutex
	store repository.Store
}

// NewFunctionLock creates a lock table persisted in store
func NewFunctionLock(store repository.Store) *FunctionLock {
	return &FunctionLock{store: store}
}

// Lock takes the lock named key and returns its release func
func (l *FunctionLock) Lock(key, caller string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	held, _, err := repository.Load[bool](l.store, repository.GroupFunctionLocks, key)
	if err != nil {
		return nil, fmt.Errorf("function lock %s: %w", key, err)
	}
	if held {
		utils.Warn("function lock already held", map[string]any{"function": key, "caller": caller})
		return nil, fmt.Errorf("%s: %w", key, settlementerrors.ErrReentrancyDetected)
	}
	if err := repository.Save(l.store, repository.GroupFunctionLocks, key, true); err != nil {
		return nil, fmt.Errorf("function lock %s: %w", key, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if err := repository.Save(l.store, repository.GroupFunctionLocks, key, false); err != nil {
				utils.Error("function lock: failed to release", map[string]any{"function": key, "error": err.Error()})
			}
		})
	}, nil
}

// Execute runs fn with the named lock held
func (l *FunctionLock) Execute(key, caller string, fn func() error) error {
	release, err := l.Lock(key, caller)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}

// IsLocked reports whether the named lock is held
func (l *FunctionLock) IsLocked(key string) (bool, error) {
	held, _, err := repository.Load[bool](l.store, repository.GroupFunctionLocks, key)
	return held, err
}

// Reset releases every held lock and returns the keys it released. Only call it before any
// invocation is in flight.
func (l *FunctionLock) Reset() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	keys, err := l.store.Keys(repository.GroupFunctionLocks)
	if err != nil {
		return nil, fmt.Errorf("function locks: %w", err)
	}
	var released []string
	for _, key := range keys {
		held, _, err := repository.Load[bool](l.store, repository.GroupFunctionLocks, key)
		if err != nil {
			return released, fmt.Errorf("function lock %s: %w", key, err)
		}
		if !held {
			continue
		}
		if err := repository.Save(l.store, repository.GroupFunctionLocks, key, false); err != nil {
			return released, fmt.Errorf("function lock %s: %w", key, err)
		}
		released = append(released, key)
	}
	return released, nil
}
