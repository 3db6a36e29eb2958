package kv

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/redis/go-redis/v9"
)

const defaultRedisURL = "redis://localhost:6379/0"

// Redis is a Store backed by plain redis strings. Keys never expire.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an existing client. Every key is prefixed with prefix.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// DialRedis connects to the redis server at rawURL and checks it answers.
//
// A prefix query parameter, as in redis://host:6379/0?prefix=mm:, is removed
// from the URL and prepended to every key.
func DialRedis(ctx context.Context, rawURL string) (*Redis, error) {
	if rawURL == "" {
		rawURL = defaultRedisURL
	}
	rawURL, prefix, err := splitPrefix(rawURL)
	if err != nil {
		return nil, err
	}
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedis(client, prefix), nil
}

// splitPrefix takes the prefix parameter out of a redis URL, which go-redis
// would reject as unknown.
func splitPrefix(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("parse redis url: %w", err)
	}
	q := u.Query()
	if !q.Has("prefix") {
		return rawURL, "", nil
	}
	prefix := q.Get("prefix")
	q.Del("prefix")
	u.RawQuery = q.Encode()
	return u.String(), prefix, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotExist
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Close closes the client.
func (r *Redis) Close() error { return r.client.Close() }
