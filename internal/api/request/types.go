package request

import (
	"fmt"

	"github.com/aspect/anchor/internal/model"
)

// Location is the wire form of a location variant. Kind selects the arm;
// x and y are only meaningful for "point".
type Location struct {
	Kind string `json:"kind"`
	X    uint32 `json:"x,omitempty"`
	Y    uint32 `json:"y,omitempty"`
}

// ToModel converts a wire location to its model form
func (l Location) ToModel() (model.Location, error) {
	switch l.Kind {
	case "up":
		return model.Up{}, nil
	case "down":
		return model.Down{}, nil
	case "left":
		return model.Left{}, nil
	case "right":
		return model.Right{}, nil
	case "point":
		return model.Point{X: l.X, Y: l.Y}, nil
	default:
		return nil, fmt.Errorf("unknown location kind %q", l.Kind)
	}
}

// Car is the wire form of a car variant. Kind is "suv" or "hatchback";
// color is "red" or "green".
type Car struct {
	Kind  string `json:"kind"`
	Model string `json:"model"`
	Price uint32 `json:"price"`
	Color string `json:"color"`
}

// ToModel converts a wire car to its model form
func (c Car) ToModel() (model.Car, error) {
	color, err := parseColor(c.Color)
	if err != nil {
		return nil, err
	}
	switch c.Kind {
	case "suv":
		return model.Suv{Model: c.Model, Price: c.Price, Color: color}, nil
	case "hatchback":
		return model.Hatchback{Model: c.Model, Price: c.Price, Color: color}, nil
	default:
		return nil, fmt.Errorf("unknown car kind %q", c.Kind)
	}
}

func parseColor(s string) (model.Color, error) {
	switch s {
	case "red":
		return model.ColorRed, nil
	case "green":
		return model.ColorGreen, nil
	default:
		return 0, fmt.Errorf("unknown color %q", s)
	}
}

// InitializeRequest is the request body for creating a record
type InitializeRequest struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Car      Car      `json:"car"`
}

// UpdateLocationRequest is the request body for replacing a record's location
type UpdateLocationRequest struct {
	Location Location `json:"location"`
}

// UpdateCarRequest is the request body for replacing a record's car
type UpdateCarRequest struct {
	Car Car `json:"car"`
}
