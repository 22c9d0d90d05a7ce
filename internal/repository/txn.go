package repository

import (
	"fmt"
	"sort"
)

// Txn stages writes against a base store so an invocation either commits all of them or none.
type Txn struct {
	base   Store
	staged map[string]map[string]*Mutation
	order  []*Mutation
	done   bool
}

// NewTxn opens a transaction over base
func NewTxn(base Store) *Txn {
	return &Txn{
		base:   base,
		staged: make(map[string]map[string]*Mutation),
	}
}

// Get reads staged writes first, then the base store
func (t *Txn) Get(group, key string) ([]byte, bool, error) {
	if m, ok := t.staged[group][key]; ok {
		if m.Delete {
			return nil, false, nil
		}
		return append([]byte(nil), m.Value...), true, nil
	}
	return t.base.Get(group, key)
}

// Set stages a write
func (t *Txn) Set(group, key string, value []byte) error {
	t.stage(group, key, append([]byte(nil), value...), false)
	return nil
}

// Remove stages a deletion
func (t *Txn) Remove(group, key string) error {
	t.stage(group, key, nil, true)
	return nil
}

// Keys merges the base keys with staged writes, in ascending order
func (t *Txn) Keys(group string) ([]string, error) {
	base, err := t.base.Keys(group)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(base))
	for _, k := range base {
		set[k] = struct{}{}
	}
	for k, m := range t.staged[group] {
		if m.Delete {
			delete(set, k)
		} else {
			set[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Commit flushes staged writes to the base store, atomically when the base is a Batcher
func (t *Txn) Commit() error {
	if t.done {
		return fmt.Errorf("txn: already finished")
	}
	t.done = true

	mutations := make([]Mutation, 0, len(t.order))
	for _, m := range t.order {
		mutations = append(mutations, *m)
	}
	if len(mutations) == 0 {
		return nil
	}

	if b, ok := t.base.(Batcher); ok {
		if err := b.Apply(mutations); err != nil {
			return fmt.Errorf("txn: commit: %w", err)
		}
		return nil
	}

	for _, m := range mutations {
		var err error
		if m.Delete {
			err = t.base.Remove(m.Group, m.Key)
		} else {
			err = t.base.Set(m.Group, m.Key, m.Value)
		}
		if err != nil {
			return fmt.Errorf("txn: commit %s/%s: %w", m.Group, m.Key, err)
		}
	}
	return nil
}

// Rollback discards staged writes
func (t *Txn) Rollback() {
	t.done = true
	t.staged = make(map[string]map[string]*Mutation)
	t.order = nil
}

// Pending returns the number of distinct records touched
func (t *Txn) Pending() int {
	return len(t.order)
}

func (t *Txn) stage(group, key string, value []byte, del bool) {
	g, ok := t.staged[group]
	if !ok {
		g = make(map[string]*Mutation)
		t.staged[group] = g
	}
	if m, ok := g[key]; ok {
		m.Value = value
		m.Delete = del
		return
	}
	m := &Mutation{Group: group, Key: key, Value: value, Delete: del}
	g[key] = m
	t.order = append(t.order, m)
}
