package memory

import (
	"context"
	"sync"

	"github.com/aspect/anchor/internal/model"
	"github.com/aspect/anchor/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu       sync.RWMutex
	accounts map[model.Address][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts: make(map[model.Address][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveAccount(ctx context.Context, addr model.Address, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Copy so callers can't mutate stored bytes afterwards.
	stored := make([]byte, len(data))
	copy(stored, data)
	s.accounts[addr] = stored
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, addr model.Address) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.accounts[addr]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *Storage) AccountExists(ctx context.Context, addr model.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[addr]
	return ok, nil
}
