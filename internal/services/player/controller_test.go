package player

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aspect/anchor/internal/model"
	"github.com/aspect/anchor/internal/storage/memory"
	"github.com/aspect/anchor/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.controller = NewController(s.storage, 0, testutil.NopLogger())
	s.ctx = context.Background()
}

func authority(b byte) model.Authority {
	var a model.Authority
	for i := range a {
		a[i] = b
	}
	return a
}

func address(b byte) model.Address {
	var a model.Address
	for i := range a {
		a[i] = b
	}
	return a
}

// Initialize tests

func (s *ControllerSuite) TestInitializeSucceeds() {
	record, err := s.controller.Initialize(s.ctx, authority(1), address(1),
		"Alice", model.Up{}, model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed})
	s.Require().NoError(err)

	s.Equal(authority(1), record.Authority)
	s.Equal("Alice", record.Name)
	s.Equal(model.Up{}, record.Location)
	s.Equal(model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed}, record.Car)
}

func (s *ControllerSuite) TestInitializeIsPersisted() {
	_, err := s.controller.Initialize(s.ctx, authority(1), address(1),
		"Alice", model.Point{X: 1, Y: 2}, model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen})
	s.Require().NoError(err)

	retrieved, err := s.controller.Get(s.ctx, address(1))
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.Name)
	s.Equal(model.Point{X: 1, Y: 2}, retrieved.Location)
}

func (s *ControllerSuite) TestInitializeAddressOccupied() {
	_, err := s.controller.Initialize(s.ctx, authority(1), address(1),
		"Alice", model.Up{}, model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen})
	s.Require().NoError(err)

	_, err = s.controller.Initialize(s.ctx, authority(2), address(1),
		"Mallory", model.Down{}, model.Hatchback{Model: "Golf", Price: 1, Color: model.ColorRed})
	s.ErrorIs(err, model.ErrAddressOccupied)

	// The existing record is unchanged after the failed attempt.
	retrieved, err := s.controller.Get(s.ctx, address(1))
	s.Require().NoError(err)
	s.Equal(authority(1), retrieved.Authority)
	s.Equal("Alice", retrieved.Name)
	s.Equal(model.Up{}, retrieved.Location)
}

func (s *ControllerSuite) TestInitializeCapacityExceeded() {
	longName := strings.Repeat("a", 1500)
	longModel := strings.Repeat("b", 1500)

	_, err := s.controller.Initialize(s.ctx, authority(1), address(1),
		longName, model.Up{}, model.Suv{Model: longModel, Price: 1, Color: model.ColorRed})
	s.ErrorIs(err, model.ErrCapacityExceeded)

	// No partial record is stored.
	_, err = s.controller.Get(s.ctx, address(1))
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *ControllerSuite) TestInitializeCustomCapacity() {
	tight := NewController(s.storage, 64, testutil.NopLogger())

	_, err := tight.Initialize(s.ctx, authority(1), address(1),
		strings.Repeat("a", 40), model.Up{}, model.Suv{Model: "m", Price: 1, Color: model.ColorRed})
	s.ErrorIs(err, model.ErrCapacityExceeded)

	_, err = tight.Initialize(s.ctx, authority(1), address(1),
		"ok", model.Up{}, model.Suv{Model: "m", Price: 1, Color: model.ColorRed})
	s.Require().NoError(err)
}

// Get tests

func (s *ControllerSuite) TestGetNotFound() {
	_, err := s.controller.Get(s.ctx, address(9))
	s.ErrorIs(err, model.ErrRecordNotFound)
}

// UpdateLocation tests

func (s *ControllerSuite) TestUpdateLocationSucceeds() {
	_, err := s.controller.Initialize(s.ctx, authority(1), address(1),
		"Alice", model.Up{}, model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed})
	s.Require().NoError(err)

	record, err := s.controller.UpdateLocation(s.ctx, authority(1), address(1), model.Point{X: 7, Y: 8})
	s.Require().NoError(err)
	s.Equal(model.Point{X: 7, Y: 8}, record.Location)

	// Name, car and authority are unchanged.
	retrieved, err := s.controller.Get(s.ctx, address(1))
	s.Require().NoError(err)
	s.Equal(model.Point{X: 7, Y: 8}, retrieved.Location)
	s.Equal("Alice", retrieved.Name)
	s.Equal(model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed}, retrieved.Car)
	s.Equal(authority(1), retrieved.Authority)
}

func (s *ControllerSuite) TestUpdateLocationUnauthorized() {
	_, err := s.controller.Initialize(s.ctx, authority(1), address(1),
		"Alice", model.Up{}, model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed})
	s.Require().NoError(err)

	_, err = s.controller.UpdateLocation(s.ctx, authority(2), address(1), model.Down{})
	s.ErrorIs(err, model.ErrUnauthorized)

	// Location is unchanged after the rejected update.
	retrieved, err := s.controller.Get(s.ctx, address(1))
	s.Require().NoError(err)
	s.Equal(model.Up{}, retrieved.Location)
}

func (s *ControllerSuite) TestUpdateLocationNotFound() {
	_, err := s.controller.UpdateLocation(s.ctx, authority(1), address(9), model.Down{})
	s.ErrorIs(err, model.ErrRecordNotFound)
}

// UpdateCar tests

func (s *ControllerSuite) TestUpdateCarSucceeds() {
	_, err := s.controller.Initialize(s.ctx, authority(1), address(1),
		"Alice", model.Up{}, model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed})
	s.Require().NoError(err)

	record, err := s.controller.UpdateCar(s.ctx, authority(1), address(1),
		model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen})
	s.Require().NoError(err)
	s.Equal(model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen}, record.Car)
}

func (s *ControllerSuite) TestUpdateCarUnauthorized() {
	_, err := s.controller.Initialize(s.ctx, authority(1), address(1),
		"Alice", model.Up{}, model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed})
	s.Require().NoError(err)

	_, err = s.controller.UpdateCar(s.ctx, authority(2), address(1),
		model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen})
	s.ErrorIs(err, model.ErrUnauthorized)

	retrieved, err := s.controller.Get(s.ctx, address(1))
	s.Require().NoError(err)
	s.Equal(model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed}, retrieved.Car)
}

func (s *ControllerSuite) TestUpdateCarNotFound() {
	_, err := s.controller.UpdateCar(s.ctx, authority(1), address(9),
		model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen})
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *ControllerSuite) TestUpdateCarCapacityExceeded() {
	tight := NewController(s.storage, 64, testutil.NopLogger())

	_, err := tight.Initialize(s.ctx, authority(1), address(1),
		"Alice", model.Up{}, model.Suv{Model: "m", Price: 1, Color: model.ColorRed})
	s.Require().NoError(err)

	// Growing the model string past the reserved capacity is rejected and
	// the stored record keeps its old car.
	_, err = tight.UpdateCar(s.ctx, authority(1), address(1),
		model.Suv{Model: strings.Repeat("x", 100), Price: 1, Color: model.ColorRed})
	s.ErrorIs(err, model.ErrCapacityExceeded)

	retrieved, err := tight.Get(s.ctx, address(1))
	s.Require().NoError(err)
	s.Equal(model.Suv{Model: "m", Price: 1, Color: model.ColorRed}, retrieved.Car)
}

// End-to-end scenario

func (s *ControllerSuite) TestInitializeThenUpdateCarThenRead() {
	caller := authority(0xA)
	addr := address(0x50)

	_, err := s.controller.Initialize(s.ctx, caller, addr,
		"Alice", model.Up{}, model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed})
	s.Require().NoError(err)

	_, err = s.controller.UpdateCar(s.ctx, caller, addr,
		model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen})
	s.Require().NoError(err)

	record, err := s.controller.Get(s.ctx, addr)
	s.Require().NoError(err)
	s.Equal("Alice", record.Name)
	s.Equal(model.Up{}, record.Location)
	s.Equal(model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen}, record.Car)
	s.Equal(caller, record.Authority)
}
