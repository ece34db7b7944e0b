package index

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ragforge/docqa"
)

// DefaultRedisPrefix namespaces the index keys in Redis.
const DefaultRedisPrefix = "docqa:"

// Redis persists an index in a Redis list and scores client-side. Entries
// are kept in document order so tie-breaking matches the in-memory index.
// A build replaces the stored list wholesale; there is no incremental
// update.
type Redis struct {
	client *redis.Client
	key    string

	entries []entry
	dim     int
	metric  Metric
}

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

type redisEntry struct {
	DocumentID string    `json:"document_id"`
	Content    string    `json:"content"`
	Start      int       `json:"start"`
	Pos        int       `json:"pos"`
	Vector     []float32 `json:"vector"`
}

// NewRedisClient creates a go-redis client from options. Callers that
// already hold a client can pass it to BuildRedis or OpenRedis directly.
func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

func redisIndexKey(name string) string {
	return fmt.Sprintf("%sindex:%s", DefaultRedisPrefix, name)
}

// BuildRedis validates the chunk/vector pairs, replaces the named index in
// Redis and returns a searchable handle over the freshly written entries.
func BuildRedis(ctx context.Context, client *redis.Client, name string, chunks []docqa.Chunk, vectors [][]float32, opts ...Option) (*Redis, error) {
	o := applyOptions(opts)

	entries, dim, err := buildEntries(chunks, vectors)
	if err != nil {
		return nil, err
	}

	key := redisIndexKey(name)
	pipe := client.TxPipeline()
	pipe.Del(ctx, key)
	for _, e := range entries {
		data, err := json.Marshal(redisEntry{
			DocumentID: e.chunk.DocumentID,
			Content:    e.chunk.Content,
			Start:      e.chunk.Start,
			Pos:        e.chunk.Pos,
			Vector:     e.vector,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal index entry: %w", err)
		}
		pipe.RPush(ctx, key, data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, docqa.WrapExternal("redis", "build index", err)
	}

	return &Redis{client: client, key: key, entries: entries, dim: dim, metric: o.metric}, nil
}

// OpenRedis loads a previously built index from Redis. Opening a name that
// was never built yields an empty index; searching it returns ErrEmptyIndex.
func OpenRedis(ctx context.Context, client *redis.Client, name string, opts ...Option) (*Redis, error) {
	o := applyOptions(opts)
	key := redisIndexKey(name)

	raw, err := client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, docqa.WrapExternal("redis", "open index", err)
	}

	entries := make([]entry, 0, len(raw))
	dim := 0
	for _, item := range raw {
		var re redisEntry
		if err := json.Unmarshal([]byte(item), &re); err != nil {
			return nil, fmt.Errorf("failed to unmarshal index entry: %w", err)
		}
		if dim == 0 {
			dim = len(re.Vector)
		}
		if len(re.Vector) != dim {
			return nil, &docqa.DimensionMismatchError{Want: dim, Got: len(re.Vector)}
		}
		entries = append(entries, entry{
			chunk: docqa.Chunk{
				DocumentID: re.DocumentID,
				Content:    re.Content,
				Start:      re.Start,
				Pos:        re.Pos,
			},
			vector: re.Vector,
		})
	}

	return &Redis{client: client, key: key, entries: entries, dim: dim, metric: o.metric}, nil
}

// Len reports the number of indexed chunks.
func (r *Redis) Len() int { return len(r.entries) }

// Dimension reports the vector dimension, or 0 for an empty index.
func (r *Redis) Dimension() int { return r.dim }

// Search scores the loaded entries against the query and returns the top
// k, ordered by descending score with ties resolved by chunk position.
func (r *Redis) Search(ctx context.Context, query []float32, k int) ([]docqa.ScoredChunk, error) {
	return rank(r.entries, r.metric, r.dim, query, k)
}

// Drop removes the stored index from Redis.
func (r *Redis) Drop(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return docqa.WrapExternal("redis", "drop index", err)
	}
	r.entries = nil
	r.dim = 0
	return nil
}
