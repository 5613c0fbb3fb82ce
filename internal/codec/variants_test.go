package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aspect/anchor/internal/model"
)

func TestColorRoundTrip(t *testing.T) {
	for _, c := range []model.Color{model.ColorRed, model.ColorGreen} {
		encoded, err := EncodeColor(c)
		require.NoError(t, err)

		decoded, n, err := DecodeColor(encoded)
		require.NoError(t, err)
		require.Equal(t, c, decoded)
		require.Equal(t, len(encoded), n)
	}
}

func TestLocationRoundTrip(t *testing.T) {
	locations := []model.Location{
		model.Up{},
		model.Down{},
		model.Left{},
		model.Right{},
		model.Point{X: 1, Y: 2},
		model.Point{X: 0, Y: 0},
		model.Point{X: 4294967295, Y: 42},
	}

	for _, loc := range locations {
		encoded, err := EncodeLocation(loc)
		require.NoError(t, err)

		decoded, n, err := DecodeLocation(encoded)
		require.NoError(t, err)
		require.Equal(t, loc, decoded)
		require.Equal(t, len(encoded), n)
	}
}

func TestCarRoundTrip(t *testing.T) {
	cars := []model.Car{
		model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen},
		model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed},
		model.Suv{Model: "", Price: 0, Color: model.ColorRed},
	}

	for _, car := range cars {
		encoded, err := EncodeCar(car)
		require.NoError(t, err)

		decoded, n, err := DecodeCar(encoded)
		require.NoError(t, err)
		require.Equal(t, car, decoded)
		require.Equal(t, len(encoded), n)
	}
}

func TestDiscriminantStability(t *testing.T) {
	// Tag bytes are fixed by declaration order; Up is always the single
	// byte 0x00, across calls.
	for i := 0; i < 3; i++ {
		encoded, err := EncodeLocation(model.Up{})
		require.NoError(t, err)
		require.Equal(t, []byte{0}, encoded)
	}

	down, err := EncodeLocation(model.Down{})
	require.NoError(t, err)
	require.Equal(t, []byte{1}, down)

	left, err := EncodeLocation(model.Left{})
	require.NoError(t, err)
	require.Equal(t, []byte{2}, left)

	right, err := EncodeLocation(model.Right{})
	require.NoError(t, err)
	require.Equal(t, []byte{3}, right)
}

func TestPointEncodingLayout(t *testing.T) {
	encoded, err := EncodeLocation(model.Point{X: 1, Y: 2})
	require.NoError(t, err)
	require.Equal(t, []byte{4, 1, 0, 0, 0, 2, 0, 0, 0}, encoded)
}

func TestCarEncodingLayout(t *testing.T) {
	encoded, err := EncodeCar(model.Suv{Model: "X", Price: 5, Color: model.ColorGreen})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 0, 0, 0, 'X', 5, 0, 0, 0, 1}, encoded)
}

func TestDecodeUnknownDiscriminant(t *testing.T) {
	// One past the last declared arm for each enum.
	_, _, err := DecodeColor([]byte{2})
	require.ErrorIs(t, err, model.ErrUnknownVariant)

	_, _, err = DecodeLocation([]byte{5})
	require.ErrorIs(t, err, model.ErrUnknownVariant)

	_, _, err = DecodeCar([]byte{2})
	require.ErrorIs(t, err, model.ErrUnknownVariant)
}

func TestDecodeTruncatedPayload(t *testing.T) {
	encoded, err := EncodeLocation(model.Point{X: 1, Y: 2})
	require.NoError(t, err)

	_, _, err = DecodeLocation(encoded[:len(encoded)-1])
	require.ErrorIs(t, err, model.ErrTruncatedInput)

	_, _, err = DecodeLocation(nil)
	require.ErrorIs(t, err, model.ErrTruncatedInput)
}

func TestDecodeTruncatedCarString(t *testing.T) {
	encoded, err := EncodeCar(model.Hatchback{Model: "Civic", Price: 20000, Color: model.ColorRed})
	require.NoError(t, err)

	// Cut inside the model string bytes.
	_, _, err = DecodeCar(encoded[:6])
	require.ErrorIs(t, err, model.ErrTruncatedInput)
}

func TestDecodeConsumesExactly(t *testing.T) {
	encoded, err := EncodeCar(model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen})
	require.NoError(t, err)

	// Decoding with trailing bytes present consumes only the car.
	withTrailing := append(append([]byte{}, encoded...), 0xAA, 0xBB)
	decoded, n, err := DecodeCar(withTrailing)
	require.NoError(t, err)
	require.Equal(t, model.Suv{Model: "RAV4", Price: 28000, Color: model.ColorGreen}, decoded)
	require.Equal(t, len(encoded), n)
}
