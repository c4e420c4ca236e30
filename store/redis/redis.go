// Package redis provides a core.Store backed by Redis, plus a Connect helper
// that retries until the server is ready.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes keys when none is configured.
const DefaultNamespace = "AnalyticsSDK"

// Options configures a Redis Store.
type Options struct {
	// Namespace prefixes every key as "<namespace>:<key>".
	Namespace string
	// OpTimeout bounds each Get/Put/Remove call. Zero disables the bound.
	OpTimeout time.Duration
}

// Store maps core.Store calls onto Redis strings.
type Store struct {
	client    redis.UniversalClient
	namespace string
	timeout   time.Duration
}

// New wraps an existing client. The caller keeps ownership of the client
// unless it closes the Store.
func New(client redis.UniversalClient, optFns ...func(o *Options)) *Store {
	opts := Options{Namespace: DefaultNamespace, OpTimeout: 3 * time.Second}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	return &Store{client: client, namespace: opts.Namespace, timeout: opts.OpTimeout}
}

func (s *Store) key(k string) string { return s.namespace + ":" + k }

func (s *Store) ctx() (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.Background(), func() {}
	}
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

// Put stores (or overwrites) value under key without expiration.
func (s *Store) Put(key, value string) error {
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Missing keys are ignored.
func (s *Store) Remove(key string) error {
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
