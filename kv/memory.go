package kv

import (
	"context"
	"sync"
)

// Memory is an in-memory Store.
//
// Like browser local storage it can be given a quota: the total size of keys
// and values it accepts.
type Memory struct {
	mu    sync.Mutex
	data  map[string]string
	quota int
}

// NewMemory returns an empty Memory with no quota.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// SetQuota limits the total number of bytes of keys and values. 0 removes
// the limit.
func (m *Memory) SetQuota(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quota = n
}

func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotExist
	}
	return v, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.quota > 0 {
		size := len(key) + len(value)
		for k, v := range m.data {
			if k != key {
				size += len(k) + len(v)
			}
		}
		if size > m.quota {
			return ErrQuotaExceeded
		}
	}
	m.data[key] = value
	return nil
}

// Close does nothing.
func (m *Memory) Close() error { return nil }
