package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aspect/anchor/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func testAddress(b byte) model.Address {
	var a model.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func (s *StorageSuite) TestSaveAndGetAccount() {
	addr := testAddress(1)
	data := []byte{1, 2, 3, 4}

	err := s.storage.SaveAccount(s.ctx, addr, data)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, addr)
	s.Require().NoError(err)
	s.Equal(data, retrieved)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, testAddress(9))
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *StorageSuite) TestAccountExists() {
	addr := testAddress(2)

	exists, err := s.storage.AccountExists(s.ctx, addr)
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveAccount(s.ctx, addr, []byte{1})

	exists, err = s.storage.AccountExists(s.ctx, addr)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestSaveOverwrites() {
	addr := testAddress(3)
	_ = s.storage.SaveAccount(s.ctx, addr, []byte{1, 1})
	_ = s.storage.SaveAccount(s.ctx, addr, []byte{2, 2, 2})

	retrieved, err := s.storage.GetAccount(s.ctx, addr)
	s.Require().NoError(err)
	s.Equal([]byte{2, 2, 2}, retrieved)
}

func (s *StorageSuite) TestStoredBytesAreIsolated() {
	addr := testAddress(4)
	data := []byte{1, 2, 3}
	_ = s.storage.SaveAccount(s.ctx, addr, data)

	// Mutating the caller's slice must not affect stored bytes.
	data[0] = 99

	retrieved, err := s.storage.GetAccount(s.ctx, addr)
	s.Require().NoError(err)
	s.Equal([]byte{1, 2, 3}, retrieved)

	// And mutating a retrieved slice must not affect later reads.
	retrieved[1] = 99

	again, err := s.storage.GetAccount(s.ctx, addr)
	s.Require().NoError(err)
	s.Equal([]byte{1, 2, 3}, again)
}
