package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/anybitmap/internal/geometry"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

func TestAddBorder(t *testing.T) {
	pb := createSolidBuffer(t, 10, 6, red)

	result, err := AddBorder(pb, blue, 3)
	require.NoError(t, err)
	require.Equal(t, 16, result.Width())
	require.Equal(t, 12, result.Height())

	for _, p := range [][2]int{{0, 0}, {15, 0}, {0, 11}, {15, 11}, {2, 5}, {13, 5}, {7, 2}, {7, 9}} {
		assert.Equal(t, blue, colorAt(result, p[0], p[1]), "border pixel %v", p)
	}
	for _, p := range [][2]int{{3, 3}, {12, 3}, {3, 8}, {12, 8}, {7, 5}} {
		assertColorNear(t, red, colorAt(result, p[0], p[1]), "interior pixel %v", p)
	}
}

func TestAddBorder_ZeroWidth(t *testing.T) {
	pb := createPatternBuffer(t, 12, 8)

	result, err := AddBorder(pb, blue, 0)
	require.NoError(t, err)
	assert.True(t, pb.Equal(result))
}

func TestAddBorder_TransparentSourceShowsBorderColor(t *testing.T) {
	pb := createSolidBuffer(t, 4, 4, geometry.Transparent)
	c := geometry.Color{R: 10, G: 20, B: 30, A: 255}

	result, err := AddBorder(pb, c, 1)
	require.NoError(t, err)
	for _, s := range result.Samples() {
		require.Equal(t, c, geometry.ColorFromPacked(s))
	}
}

func TestAddBorder_Errors(t *testing.T) {
	pb := createSolidBuffer(t, 10, 10, red)

	_, err := AddBorder(pb, blue, -1)
	assert.ErrorIs(t, err, imgerr.ErrInvalidArgument)

	_, err = AddBorder(nil, blue, 1)
	assert.ErrorIs(t, err, imgerr.ErrInvalidArgument)

	SetMaxPixels(150)
	t.Cleanup(func() { SetMaxPixels(0) })

	_, err = AddBorder(pb, blue, 1)
	assert.NoError(t, err)
	_, err = AddBorder(pb, blue, 2)
	assert.ErrorIs(t, err, imgerr.ErrResourceExhausted)
}
