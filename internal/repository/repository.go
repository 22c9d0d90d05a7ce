package repository

import (
	"fmt"
	"sort"
	"sync"

	"marketplace-settlement/internal/settlementerrors"
)

// Record groups of the shared settlement store
const (
	GroupAuctions        = "auctions"
	GroupAuctionBids     = "auction_bids"
	GroupDutchAuctions   = "dutch_auctions"
	GroupDisputes        = "disputes"
	GroupArbitrators     = "arbitrators"
	GroupConfig          = "config"
	GroupAccumulatedFees = "accumulated_fees"
	GroupUserVolumes     = "user_volumes"
	GroupCommitments     = "commitments"
	GroupReentrancy      = "reentrancy"
	GroupFunctionLocks   = "function_locks"
	GroupCounters        = "counters"
)

// Store is the keyed record storage every settlement component reads and writes.
// It provides no concurrency control beyond single calls; invocations are serialized by the caller.
type Store interface {
	Get(group, key string) ([]byte, bool, error)
	Set(group, key string, value []byte) error
	Remove(group, key string) error
	Keys(group string) ([]string, error)
}

// Mutation is one staged write
type Mutation struct {
	Group  string
	Key    string
	Value  []byte
	Delete bool
}

// Batcher is implemented by stores that can apply a set of mutations atomically
type Batcher interface {
	Apply(mutations []Mutation) error
}

// MemoryStore is a concurrency-safe in-memory implementation of Store
type MemoryStore struct {
	mu     sync.RWMutex
	groups map[string]map[string][]byte // key: group -> key -> encoded record
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		groups: make(map[string]map[string][]byte),
	}
}

// Get returns a copy of the record stored under group/key
func (s *MemoryStore) Get(group, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.groups[group][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set stores value under group/key
func (s *MemoryStore) Set(group, key string, value []byte) error {
	if group == "" || key == "" {
		return fmt.Errorf("set %s/%s: %w - empty group or key", group, key, settlementerrors.ErrInvalidState)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(group, key, value)
	return nil
}

// Remove deletes group/key; removing a missing record is not an error
func (s *MemoryStore) Remove(group, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(group, key)
	return nil
}

// Keys returns the keys of a group in ascending order
func (s *MemoryStore) Keys(group string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.groups[group]))
	for k := range s.groups[group] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Apply executes all mutations under one lock
func (s *MemoryStore) Apply(mutations []Mutation) error {
	for _, m := range mutations {
		if m.Group == "" || m.Key == "" {
			return fmt.Errorf("apply %s/%s: %w - empty group or key", m.Group, m.Key, settlementerrors.ErrInvalidState)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range mutations {
		if m.Delete {
			s.remove(m.Group, m.Key)
			continue
		}
		s.set(m.Group, m.Key, m.Value)
	}
	return nil
}

func (s *MemoryStore) set(group, key string, value []byte) {
	g, ok := s.groups[group]
	if !ok {
		g = make(map[string][]byte)
		s.groups[group] = g
	}
	g[key] = append([]byte(nil), value...)
}

func (s *MemoryStore) remove(group, key string) {
	if g, ok := s.groups[group]; ok {
		delete(g, key)
		if len(g) == 0 {
			delete(s.groups, group)
		}
	}
}
