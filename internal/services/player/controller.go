package player

import (
	"context"
	"log/slog"

	"github.com/aspect/anchor/internal/codec"
	"github.com/aspect/anchor/internal/model"
	"github.com/aspect/anchor/internal/storage"
)

// Controller implements the record transition operations. Every mutation
// checks its preconditions before anything is written, so a failed operation
// leaves the stored account untouched.
//
// The caller identity passed to each method is trusted to be a verified
// signer; proving control of the key is the invoking harness's job. This
// layer only compares identities byte-for-byte against the stored authority.
type Controller struct {
	storage  storage.Storage
	capacity int
	logger   *slog.Logger
}

// NewController creates a new record controller. capacity is the reserved
// byte budget for a record's encoding; zero selects the default.
func NewController(storage storage.Storage, capacity int, logger *slog.Logger) *Controller {
	if capacity <= 0 {
		capacity = codec.DefaultCapacity
	}
	return &Controller{
		storage:  storage,
		capacity: capacity,
		logger:   logger,
	}
}

// Initialize creates a record at addr owned by caller. The caller becomes the
// authority; no proof is required here because the authority is being
// established, not asserted.
func (c *Controller) Initialize(ctx context.Context, caller model.Authority, addr model.Address, name string, loc model.Location, car model.Car) (*model.Player, error) {
	exists, err := c.storage.AccountExists(ctx, addr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrAddressOccupied
	}

	player := model.NewPlayer(caller, name, loc, car)
	if err := c.store(ctx, addr, player); err != nil {
		return nil, err
	}

	c.logger.Info("record initialized",
		slog.String("address", addr.String()),
		slog.String("authority", caller.String()),
	)

	return player, nil
}

// Get returns the decoded record at addr. Reads are unrestricted.
func (c *Controller) Get(ctx context.Context, addr model.Address) (*model.Player, error) {
	data, err := c.storage.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	return codec.DecodeAccount(data)
}

// UpdateLocation replaces the location field of the record at addr. The
// caller must match the record's authority; name, car and authority are
// unchanged.
func (c *Controller) UpdateLocation(ctx context.Context, caller model.Authority, addr model.Address, loc model.Location) (*model.Player, error) {
	player, err := c.loadOwned(ctx, caller, addr)
	if err != nil {
		return nil, err
	}

	player.Location = loc
	if err := c.store(ctx, addr, player); err != nil {
		return nil, err
	}

	c.logger.Info("location updated", slog.String("address", addr.String()))
	return player, nil
}

// UpdateCar replaces the car field of the record at addr, symmetric to
// UpdateLocation.
func (c *Controller) UpdateCar(ctx context.Context, caller model.Authority, addr model.Address, car model.Car) (*model.Player, error) {
	player, err := c.loadOwned(ctx, caller, addr)
	if err != nil {
		return nil, err
	}

	player.Car = car
	if err := c.store(ctx, addr, player); err != nil {
		return nil, err
	}

	c.logger.Info("car updated", slog.String("address", addr.String()))
	return player, nil
}

// loadOwned fetches and decodes the record at addr, then enforces that
// caller is its authority.
func (c *Controller) loadOwned(ctx context.Context, caller model.Authority, addr model.Address) (*model.Player, error) {
	data, err := c.storage.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	player, err := codec.DecodeAccount(data)
	if err != nil {
		return nil, err
	}
	if player.Authority != caller {
		return nil, model.ErrUnauthorized
	}
	return player, nil
}

// store checks the capacity bound, encodes and writes the record. The bound
// applies to updates as well as creation: a longer car model string can grow
// the encoding past the reserved space.
func (c *Controller) store(ctx context.Context, addr model.Address, player *model.Player) error {
	if codec.EncodedSize(player) > c.capacity {
		return model.ErrCapacityExceeded
	}
	data, err := codec.EncodeAccount(player)
	if err != nil {
		return err
	}
	if err := c.storage.SaveAccount(ctx, addr, data); err != nil {
		c.logger.Error("failed to save account",
			slog.String("address", addr.String()),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
