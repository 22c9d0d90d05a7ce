package repository

import (
	"fmt"
	"strconv"
)

// Load reads and decodes group/key. found is false when the record does not exist.
func Load[T any](s Store, group, key string) (T, bool, error) {
	var v T
	data, ok, err := s.Get(group, key)
	if err != nil {
		return v, false, fmt.Errorf("load %s/%s: %w", group, key, err)
	}
	if !ok {
		return v, false, nil
	}
	if err := Decode(data, &v); err != nil {
		return v, false, fmt.Errorf("load %s/%s: %w", group, key, err)
	}
	return v, true, nil
}

// Save encodes and writes v under group/key
func Save(s Store, group, key string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return fmt.Errorf("save %s/%s: %w", group, key, err)
	}
	if err := s.Set(group, key, data); err != nil {
		return fmt.Errorf("save %s/%s: %w", group, key, err)
	}
	return nil
}

// NextID allocates the next id of a counter. Ids start at 1 and never repeat.
func NextID(s Store, counter string) (uint64, error) {
	current, ok, err := Load[uint64](s, GroupCounters, counter)
	if err != nil {
		return 0, err
	}
	if !ok {
		current = 1
	}
	if err := Save(s, GroupCounters, counter, current+1); err != nil {
		return 0, err
	}
	return current, nil
}

// IDKey renders a numeric id as a fixed-width key so Keys returns ids in numeric order
func IDKey(id uint64) string {
	return fmt.Sprintf("%020d", id)
}

// ParseIDKey reverses IDKey
func ParseIDKey(key string) (uint64, error) {
	return strconv.ParseUint(key, 10, 64)
}
