// Package storage is the key-value persistence boundary. Values are opaque JSON documents.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/logger"
)

// Store is a fallible string key-value store. Get reports found=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// BatchSetter is implemented by stores that can write several keys atomically
type BatchSetter interface {
	SetMany(ctx context.Context, entries map[string]string) error
}

// SetAll writes entries in one batch when s supports it, otherwise key by key in sorted order
func SetAll(ctx context.Context, s Store, entries map[string]string) error {
	if b, ok := s.(BatchSetter); ok {
		return b.SetMany(ctx, entries)
	}
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		if err := s.Set(ctx, key, entries[key]); err != nil {
			return err
		}
	}
	return nil
}

// Memory is an in-process Store used for tests and the "memory" driver
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty Memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// SetMany writes every entry under a single lock
func (m *Memory) SetMany(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	maps.Copy(m.data, entries)
	return nil
}

// Snapshot copies the current contents
func (m *Memory) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.data)
}

// LoadJSON decodes key into a T. A missing key, a store error or corrupt JSON yields fallback;
// failures are logged and never returned, so callers continue with a usable value.
func LoadJSON[T any](ctx context.Context, s Store, key string, fallback T) T {
	log := logger.FromContext(ctx)

	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		log.Error(LogMsgLoadFailed, "key", key, "error", err)
		return fallback
	}
	if !ok || raw == "" {
		return fallback
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Error(LogMsgDecodeFailed, "key", key, "error", err)
		return fallback
	}
	return v
}

// SaveJSON encodes v under key. The error wraps domain.ErrPersistence and is also logged;
// callers that follow last-write-wins semantics may ignore it.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(v)
	if err != nil {
		log.Error(LogMsgEncodeFailed, "key", key, "error", err)
		return fmt.Errorf("%w: encode %s: %v", domain.ErrPersistence, key, err)
	}
	if err := s.Set(ctx, key, string(data)); err != nil {
		log.Error(LogMsgSaveFailed, "key", key, "error", err)
		return fmt.Errorf("%w: set %s: %v", domain.ErrPersistence, key, err)
	}
	return nil
}

// RemoveKey deletes key, logging any failure
func RemoveKey(ctx context.Context, s Store, key string) error {
	if err := s.Remove(ctx, key); err != nil {
		logger.FromContext(ctx).Error(LogMsgRemoveFailed, "key", key, "error", err)
		return fmt.Errorf("%w: remove %s: %v", domain.ErrPersistence, key, err)
	}
	return nil
}

// SaveAllJSON encodes every value and writes them together with SetAll.
// Nothing is written when any value fails to encode.
func SaveAllJSON(ctx context.Context, s Store, values map[string]any) error {
	log := logger.FromContext(ctx)

	entries := make(map[string]string, len(values))
	for key, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			log.Error(LogMsgEncodeFailed, "key", key, "error", err)
			return fmt.Errorf("%w: encode %s: %v", domain.ErrPersistence, key, err)
		}
		entries[key] = string(data)
	}
	if err := SetAll(ctx, s, entries); err != nil {
		log.Error(LogMsgSaveFailed, "keys", slices.Sorted(maps.Keys(entries)), "error", err)
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
