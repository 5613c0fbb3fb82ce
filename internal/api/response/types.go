package response

import (
	"github.com/aspect/anchor/internal/model"
)

// Location is the wire form of a location variant in responses
type Location struct {
	Kind string `json:"kind"`
	X    uint32 `json:"x,omitempty"`
	Y    uint32 `json:"y,omitempty"`
}

// LocationFromModel converts a model.Location to its response form
func LocationFromModel(loc model.Location) Location {
	switch l := loc.(type) {
	case model.Up:
		return Location{Kind: "up"}
	case model.Down:
		return Location{Kind: "down"}
	case model.Left:
		return Location{Kind: "left"}
	case model.Right:
		return Location{Kind: "right"}
	case model.Point:
		return Location{Kind: "point", X: l.X, Y: l.Y}
	}
	return Location{}
}

// Car is the wire form of a car variant in responses
type Car struct {
	Kind  string `json:"kind"`
	Model string `json:"model"`
	Price uint32 `json:"price"`
	Color string `json:"color"`
}

// CarFromModel converts a model.Car to its response form
func CarFromModel(car model.Car) Car {
	switch c := car.(type) {
	case model.Suv:
		return Car{Kind: "suv", Model: c.Model, Price: c.Price, Color: c.Color.String()}
	case model.Hatchback:
		return Car{Kind: "hatchback", Model: c.Model, Price: c.Price, Color: c.Color.String()}
	}
	return Car{}
}

// Record represents a stored record in API responses
type Record struct {
	Authority string   `json:"authority"`
	Name      string   `json:"name"`
	Location  Location `json:"location"`
	Car       Car      `json:"car"`
}

// RecordFromModel converts a model.Player to a response Record
func RecordFromModel(p *model.Player) Record {
	return Record{
		Authority: p.Authority.String(),
		Name:      p.Name,
		Location:  LocationFromModel(p.Location),
		Car:       CarFromModel(p.Car),
	}
}
