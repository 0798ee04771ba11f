package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/anybitmap/internal/geometry"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// whiteWithMarks returns a white width x height buffer with black pixels at
// the given points.
func whiteWithMarks(t *testing.T, width, height int, marks ...[2]int) *PixelBuffer {
	t.Helper()
	pix := make([]uint32, width*height)
	for i := range pix {
		pix[i] = geometry.White.Packed()
	}
	for _, m := range marks {
		pix[m[1]*width+m[0]] = geometry.Black.Packed()
	}
	pb, err := NewPixelBuffer(width, height, pix)
	require.NoError(t, err)
	return pb
}

func TestTrim_NoWhiteBorder(t *testing.T) {
	pb := createSolidBuffer(t, 10, 10, red)

	result, err := Trim(pb)
	require.NoError(t, err)
	assert.True(t, pb.Equal(result))
}

func TestTrim_AllWhite(t *testing.T) {
	pb := createSolidBuffer(t, 10, 10, geometry.White)

	result, err := Trim(pb)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Width())
	assert.Equal(t, 10, result.Height())
	assert.True(t, pb.Equal(result))
}

func TestTrim_RemovesMargin(t *testing.T) {
	var marks [][2]int
	for y := 3; y <= 12; y++ {
		for x := 5; x <= 9; x++ {
			marks = append(marks, [2]int{x, y})
		}
	}
	pb := whiteWithMarks(t, 20, 20, marks...)

	result, err := Trim(pb)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Width())
	assert.Equal(t, 10, result.Height())
	for _, s := range result.Samples() {
		require.Equal(t, geometry.Black.Packed(), s)
	}
}

func TestTrim_SinglePixel(t *testing.T) {
	pb := whiteWithMarks(t, 9, 9, [2]int{4, 7})

	result, err := Trim(pb)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Width())
	assert.Equal(t, 1, result.Height())
	assert.Equal(t, geometry.Black, colorAt(result, 0, 0))
}

func TestTrim_RefinesEdgesFromInteriorRows(t *testing.T) {
	pb := whiteWithMarks(t, 20, 20,
		[2]int{5, 2},  // first hit: top
		[2]int{3, 6},  // widens left during refinement
		[2]int{12, 8}, // widens right during refinement
		[2]int{7, 10}, // last hit: bottom
	)

	result, err := Trim(pb)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Width())
	assert.Equal(t, 9, result.Height())
	assert.Equal(t, geometry.Black, colorAt(result, 2, 0))
	assert.Equal(t, geometry.Black, colorAt(result, 0, 4))
	assert.Equal(t, geometry.Black, colorAt(result, 9, 6))
	assert.Equal(t, geometry.Black, colorAt(result, 4, 8))
}

func TestTrim_TopAndBottomRowsUseFirstHitOnly(t *testing.T) {
	// The second mark on the top row is never visited: findTop stops at the
	// first hit and refinement skips the top and bottom rows.
	pb := whiteWithMarks(t, 20, 20,
		[2]int{2, 2},
		[2]int{15, 2},
		[2]int{5, 10},
	)

	result, err := Trim(pb)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Width())
	assert.Equal(t, 9, result.Height())
}

func TestTrim_IgnoresAlpha(t *testing.T) {
	pix := make([]uint32, 5*5)
	for i := range pix {
		pix[i] = 0x00FFFFFF // transparent white is still white
	}
	pix[2*5+2] = 0x00000000 // transparent black is not
	pb, err := NewPixelBuffer(5, 5, pix)
	require.NoError(t, err)

	result, err := Trim(pb)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Width())
	assert.Equal(t, 1, result.Height())
}

func TestTrim_NeverGrows(t *testing.T) {
	for _, pb := range []*PixelBuffer{
		createPatternBuffer(t, 30, 20),
		whiteWithMarks(t, 13, 7, [2]int{0, 0}, [2]int{12, 6}),
		whiteWithMarks(t, 13, 7, [2]int{12, 0}, [2]int{0, 6}),
	} {
		result, err := Trim(pb)
		require.NoError(t, err)
		assert.LessOrEqual(t, result.Width(), pb.Width())
		assert.LessOrEqual(t, result.Height(), pb.Height())
	}
}

func TestTrim_NilBuffer(t *testing.T) {
	_, err := Trim(nil)
	assert.ErrorIs(t, err, imgerr.ErrInvalidArgument)
}
