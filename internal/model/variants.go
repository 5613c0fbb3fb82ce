package model

// Color is a unit-only variant: a player's car is red or green.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	}
	return "unknown"
}

// Location is a tagged union of the places a player can be.
// Exactly one arm is held at a time; only Point carries data.
type Location interface {
	isLocation()
}

type Up struct{}
type Down struct{}
type Left struct{}
type Right struct{}

// Point is a coordinate pair on the grid.
type Point struct {
	X uint32
	Y uint32
}

func (Up) isLocation()    {}
func (Down) isLocation()  {}
func (Left) isLocation()  {}
func (Right) isLocation() {}
func (Point) isLocation() {}

// Car is a tagged union of the vehicle kinds a player can own.
// Both arms share the same field shape but remain distinct tags.
type Car interface {
	isCar()
}

type Suv struct {
	Model string
	Price uint32
	Color Color
}

type Hatchback struct {
	Model string
	Price uint32
	Color Color
}

func (Suv) isCar()       {}
func (Hatchback) isCar() {}
