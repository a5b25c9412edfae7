// Package cache keeps generated mazes in Redis, keyed by their generation
// options.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key holds no maze.
var ErrCacheMiss = i.ErrCacheMiss

const lockSuffix = ":generate_lock"

// cachedMaze carries the fields the API representation hides.
type cachedMaze struct {
	*dmn.MazeRecord
	File string `json:"file"`
}

// RedisMazeCache stores mazes in Redis with a TTL and guards generation with
// a distributed lock.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (*RedisMazeCache, error) {
	if client == nil {
		return nil, errors.New("redis maze cache: nil client")
	}
	cache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get loads the maze stored under key.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (*dmn.MazeRecord, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	cm := cachedMaze{MazeRecord: &dmn.MazeRecord{}}
	if err := json.Unmarshal(raw, &cm); err != nil {
		return nil, fmt.Errorf("decoding cached maze %s: %w", key, err)
	}
	cm.MazeRecord.Key = key
	cm.MazeRecord.File = cm.File
	return cm.MazeRecord, nil
}

// Set stores maze under key. A non-positive TTL keeps it forever.
func (c *RedisMazeCache) Set(ctx context.Context, key string, maze *dmn.MazeRecord) error {
	raw, err := json.Marshal(cachedMaze{MazeRecord: maze, File: maze.File})
	if err != nil {
		return err
	}
	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

// Delete forgets key.
func (c *RedisMazeCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Lock acquires the generation lock for key.
func (c *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
