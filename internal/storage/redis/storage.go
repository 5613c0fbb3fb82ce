package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aspect/anchor/internal/model"
	"github.com/aspect/anchor/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Account bytes are stored raw under one key per address.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveAccount(ctx context.Context, addr model.Address, data []byte) error {
	return s.client.Set(ctx, accountKey(addr), data, s.cfg.AccountTTL).Err()
}

func (s *Storage) GetAccount(ctx context.Context, addr model.Address) ([]byte, error) {
	data, err := s.client.Get(ctx, accountKey(addr)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRecordNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Storage) AccountExists(ctx context.Context, addr model.Address) (bool, error) {
	exists, err := s.client.Exists(ctx, accountKey(addr)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
