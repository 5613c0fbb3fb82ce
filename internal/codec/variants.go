package codec

import (
	"fmt"

	"github.com/aspect/anchor/internal/model"
)

// Tag bytes follow declaration order in the model package.
const (
	tagLocationUp = iota
	tagLocationDown
	tagLocationLeft
	tagLocationRight
	tagLocationPoint
)

const (
	tagCarSuv = iota
	tagCarHatchback
)

// AppendColor appends the encoding of c to b.
func AppendColor(b []byte, c model.Color) ([]byte, error) {
	if c > model.ColorGreen {
		return nil, fmt.Errorf("color %d: %w", c, model.ErrUnknownVariant)
	}
	return append(b, byte(c)), nil
}

// AppendLocation appends the encoding of loc to b.
func AppendLocation(b []byte, loc model.Location) ([]byte, error) {
	switch l := loc.(type) {
	case model.Up:
		return append(b, tagLocationUp), nil
	case model.Down:
		return append(b, tagLocationDown), nil
	case model.Left:
		return append(b, tagLocationLeft), nil
	case model.Right:
		return append(b, tagLocationRight), nil
	case model.Point:
		b = append(b, tagLocationPoint)
		b = appendU32(b, l.X)
		return appendU32(b, l.Y), nil
	default:
		return nil, fmt.Errorf("location %T: %w", loc, model.ErrUnknownVariant)
	}
}

// AppendCar appends the encoding of car to b.
func AppendCar(b []byte, car model.Car) ([]byte, error) {
	switch c := car.(type) {
	case model.Suv:
		b = append(b, tagCarSuv)
		return appendCarFields(b, c.Model, c.Price, c.Color)
	case model.Hatchback:
		b = append(b, tagCarHatchback)
		return appendCarFields(b, c.Model, c.Price, c.Color)
	default:
		return nil, fmt.Errorf("car %T: %w", car, model.ErrUnknownVariant)
	}
}

func appendCarFields(b []byte, m string, price uint32, color model.Color) ([]byte, error) {
	b = appendString(b, m)
	b = appendU32(b, price)
	return AppendColor(b, color)
}

// EncodeColor returns the encoding of c.
func EncodeColor(c model.Color) ([]byte, error) {
	return AppendColor(nil, c)
}

// EncodeLocation returns the encoding of loc.
func EncodeLocation(loc model.Location) ([]byte, error) {
	return AppendLocation(nil, loc)
}

// EncodeCar returns the encoding of car.
func EncodeCar(car model.Car) ([]byte, error) {
	return AppendCar(nil, car)
}

// DecodeColor decodes a Color from the front of b, returning the value and
// the number of bytes consumed.
func DecodeColor(b []byte) (model.Color, int, error) {
	r := &reader{buf: b}
	c, err := readColor(r)
	return c, r.off, err
}

// DecodeLocation decodes a Location from the front of b, returning the value
// and the number of bytes consumed.
func DecodeLocation(b []byte) (model.Location, int, error) {
	r := &reader{buf: b}
	loc, err := readLocation(r)
	return loc, r.off, err
}

// DecodeCar decodes a Car from the front of b, returning the value and the
// number of bytes consumed.
func DecodeCar(b []byte) (model.Car, int, error) {
	r := &reader{buf: b}
	car, err := readCar(r)
	return car, r.off, err
}

func readColor(r *reader) (model.Color, error) {
	tag, err := r.u8()
	if err != nil {
		return 0, err
	}
	if tag > byte(model.ColorGreen) {
		return 0, fmt.Errorf("color tag %d: %w", tag, model.ErrUnknownVariant)
	}
	return model.Color(tag), nil
}

func readLocation(r *reader) (model.Location, error) {
	tag, err := r.u8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagLocationUp:
		return model.Up{}, nil
	case tagLocationDown:
		return model.Down{}, nil
	case tagLocationLeft:
		return model.Left{}, nil
	case tagLocationRight:
		return model.Right{}, nil
	case tagLocationPoint:
		x, err := r.u32()
		if err != nil {
			return nil, err
		}
		y, err := r.u32()
		if err != nil {
			return nil, err
		}
		return model.Point{X: x, Y: y}, nil
	default:
		return nil, fmt.Errorf("location tag %d: %w", tag, model.ErrUnknownVariant)
	}
}

func readCar(r *reader) (model.Car, error) {
	tag, err := r.u8()
	if err != nil {
		return nil, err
	}
	if tag != tagCarSuv && tag != tagCarHatchback {
		return nil, fmt.Errorf("car tag %d: %w", tag, model.ErrUnknownVariant)
	}
	m, err := r.str()
	if err != nil {
		return nil, err
	}
	price, err := r.u32()
	if err != nil {
		return nil, err
	}
	color, err := readColor(r)
	if err != nil {
		return nil, err
	}
	if tag == tagCarSuv {
		return model.Suv{Model: m, Price: price, Color: color}, nil
	}
	return model.Hatchback{Model: m, Price: price, Color: color}, nil
}
