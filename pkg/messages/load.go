package messages

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// LoadFile reads and parses a catalog file. The format follows the extension.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	format, err := FormatForFile(path)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	var content []byte
	var readErr error
	go func() {
		content, readErr = os.ReadFile(path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCatalog, path)
	}
	return Parse(ctx, content, format)
}

// HashReader is the subset of a Redis client needed to load a catalog.
// *redis.Client and *redis.ClusterClient satisfy it.
type HashReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// LoadRedis reads a catalog stored as a Redis hash (field = key, value = message).
func LoadRedis(ctx context.Context, client HashReader, hash string) (*Catalog, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}

	entries, err := client.HGetAll(ctx, hash).Result()
	if err != nil {
		return nil, errors.Join(ErrFailedToReadRedis, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: redis hash %q", ErrEmptyCatalog, hash)
	}
	return New(entries), nil
}

// HashWriter is the subset of a Redis client needed to store a catalog.
type HashWriter interface {
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
}

// SaveRedis replaces the Redis hash with the catalog entries.
func SaveRedis(ctx context.Context, client HashWriter, hash string, catalog *Catalog) error {
	if client == nil {
		return ErrNilRedisClient
	}
	if catalog == nil || catalog.Len() == 0 {
		return ErrEmptyCatalog
	}

	if err := client.Del(ctx, hash).Err(); err != nil {
		return errors.Join(ErrFailedToWriteRedis, err)
	}
	values := make(map[string]any, catalog.Len())
	for key, msg := range catalog.entries {
		values[key] = msg
	}
	if err := client.HSet(ctx, hash, values).Err(); err != nil {
		return errors.Join(ErrFailedToWriteRedis, err)
	}
	return nil
}
