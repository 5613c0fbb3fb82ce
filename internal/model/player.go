package model

// Player is the persistent record. It is owned by an authority, which is the
// only identity allowed to mutate it after creation. Name is set once at
// creation; only Location and Car have update paths.
type Player struct {
	Authority Authority
	Name      string
	Location  Location
	Car       Car
}

// NewPlayer constructs a record. No validation happens here; the codec
// enforces the encoded-size bound when the record is written.
func NewPlayer(authority Authority, name string, loc Location, car Car) *Player {
	return &Player{
		Authority: authority,
		Name:      name,
		Location:  loc,
		Car:       car,
	}
}
