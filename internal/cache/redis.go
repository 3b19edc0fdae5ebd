package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gideongeny/dailynews/internal/news"
)

// keyPrefix namespaces our entries on shared Redis instances.
const keyPrefix = "dailynews:"

// Redis is a Cache backed by a Redis instance. Article sequences are
// stored as JSON with the TTL enforced by Redis itself.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	ctx    context.Context
}

// NewRedis connects to the given address and verifies the connection.
func NewRedis(addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}

	return &Redis{client: client, ttl: ttl, ctx: ctx}, nil
}

func (r *Redis) Get(key string) ([]news.Article, bool) {
	val, err := r.client.Get(r.ctx, keyPrefix+key).Result()
	if err != nil {
		return nil, false
	}
	var articles []news.Article
	if err := json.Unmarshal([]byte(val), &articles); err != nil {
		return nil, false
	}
	return articles, true
}

func (r *Redis) Set(key string, articles []news.Article) {
	data, err := json.Marshal(articles)
	if err != nil {
		return
	}
	r.client.Set(r.ctx, keyPrefix+key, data, r.ttl)
}

func (r *Redis) Clear() {
	iter := r.client.Scan(r.ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(r.ctx) {
		r.client.Del(r.ctx, iter.Val())
	}
}

func (r *Redis) Size() int {
	count := 0
	iter := r.client.Scan(r.ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(r.ctx) {
		count++
	}
	return count
}

// Close releases the underlying connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
