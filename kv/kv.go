// Package kv provides the string key-value stores a ledger can be persisted
// to.
//
// A Store only has to hold a handful of keys with fairly large values, the
// whole ledger is written under a single key.
package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrNotExist is returned by Get when the key has never been set.
	ErrNotExist = errors.New("key does not exist")
	// ErrQuotaExceeded is returned by Set when the value does not fit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key or ErrNotExist.
	Get(ctx context.Context, key string) (string, error)
	// Set replaces the value for key.
	Set(ctx context.Context, key, value string) error
}

// Backend is a Store holding resources.
type Backend interface {
	Store
	Close() error
}

// Supported backend kinds for Open.
const (
	KindMemory = "memory"
	KindDir    = "dir"
	KindSQLite = "sqlite"
	KindRedis  = "redis"
)

// Kinds lists the backend kinds accepted by Open.
var Kinds = []string{KindDir, KindSQLite, KindRedis, KindMemory}

// Open opens a backend of the given kind.
//
// The meaning of dsn depends on the kind: a directory for "dir", a database
// file for "sqlite", a redis URL (redis://host:port/db) for "redis". It is
// ignored for "memory".
func Open(ctx context.Context, kind, dsn string) (Backend, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindDir:
		return NewDir(dsn)
	case KindSQLite:
		return OpenSQLite(ctx, dsn)
	case KindRedis:
		return DialRedis(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage backend %q, want one of %v", kind, Kinds)
	}
}

// Peek reads key from the backend of the given kind without creating
// anything: a missing storage directory or database file reads as
// ErrNotExist.
func Peek(ctx context.Context, kind, dsn, key string) (string, error) {
	var path string
	switch kind {
	case KindDir:
		path = dsn
		if path == "" {
			path = "."
		}
	case KindSQLite:
		path = dsn
		if path == "" {
			path = defaultSQLiteFile
		}
	}
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotExist
		}
	}

	b, err := Open(ctx, kind, dsn)
	if err != nil {
		return "", err
	}
	defer b.Close()
	return b.Get(ctx, key)
}
