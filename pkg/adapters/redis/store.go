package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/formgate/formgate/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.SchemaStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored schemas. Useful for draft schemas
// that should age out; zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for schemas.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "formgate:schema:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(schemaID string) string {
	return s.prefix + schemaID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the schema to Redis. The JSON value and the index entry are
// written in one pipeline so Get and List stay consistent.
func (s *Store) Save(ctx context.Context, schema *domain.FormSchema) error {
	data, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	pipe := s.client.Pipeline()

	pipe.Set(ctx, s.key(schema.SchemaID), data, s.ttl)

	// Index score is the expiry instant so List can prune lazily.
	// Schemas without a TTL get a far-future score.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}

	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: schema.SchemaID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Get retrieves the schema from Redis.
func (s *Store) Get(ctx context.Context, schemaID string) (*domain.FormSchema, error) {
	val, err := s.client.Get(ctx, s.key(schemaID)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrSchemaNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var schema domain.FormSchema
	if err := json.Unmarshal([]byte(val), &schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	return &schema, nil
}

// Delete removes the schema.
func (s *Store) Delete(ctx context.Context, schemaID string) error {
	deleted, err := s.client.Del(ctx, s.key(schemaID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	if deleted == 0 {
		return domain.ErrSchemaNotFound
	}

	if err := s.client.ZRem(ctx, s.indexKey(), schemaID).Err(); err != nil {
		return fmt.Errorf("failed to remove from index: %w", err)
	}
	return nil
}

// List returns all stored schemas.
func (s *Store) List(ctx context.Context) ([]*domain.FormSchema, error) {
	return s.ListBy(ctx, func(*domain.FormSchema) bool { return true })
}

// ListBy returns the schemas matching the predicate. Expired index entries
// are pruned lazily before reading.
func (s *Store) ListBy(ctx context.Context, match func(*domain.FormSchema) bool) ([]*domain.FormSchema, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired schemas: %w", err)
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}

	out := make([]*domain.FormSchema, 0, len(ids))
	for _, id := range ids {
		schema, err := s.Get(ctx, id)
		if err != nil {
			// Value expired between prune and read; the next List prunes it.
			if err == domain.ErrSchemaNotFound {
				continue
			}
			return nil, err
		}
		if match(schema) {
			out = append(out, schema)
		}
	}
	return out, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
