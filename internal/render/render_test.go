package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/aria-lang/centerstar-go/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	rows := []string{"AC-T", "AGGT", "AC-T"}
	img, err := Draw([]string{"s1", "s2", "s3"}, rows)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, Gutter+4*CellSize, b.Dx())
	assert.Equal(t, 2*Padding+3*CellSize, b.Dy())

	// Sample a corner pixel inside each cell, away from outline and glyph.
	at := func(row, col int) [4]uint8 {
		c := img.RGBAAt(Gutter+col*CellSize+2, Padding+row*CellSize+2)
		return [4]uint8{c.R, c.G, c.B, c.A}
	}
	rgba := func(c interface{ RGBA() (r, g, b, a uint32) }) [4]uint8 {
		r, g, bl, a := c.RGBA()
		return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}
	}

	assert.Equal(t, rgba(MatchColor), at(0, 0))
	assert.Equal(t, rgba(MismatchColor), at(1, 1))
	assert.Equal(t, rgba(GapColor), at(2, 2))
	assert.Equal(t, rgba(OutlineColor), rgba(img.RGBAAt(Gutter, Padding)))
}

func TestDrawErrors(t *testing.T) {
	_, err := Draw([]string{"a"}, []string{"AC", "A"})
	require.Error(t, err)

	_, err = Draw([]string{"a", "b"}, []string{"AC", "A"})
	require.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, []string{"x", "y"}, []string{"ACGT", "ACG-"}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Gutter+4*CellSize, img.Bounds().Dx())
}

func TestColumnColor(t *testing.T) {
	assert.Equal(t, MatchColor, ColumnColor(stats.Match))
	assert.Equal(t, MismatchColor, ColumnColor(stats.Mismatch))
	assert.Equal(t, GapColor, ColumnColor(stats.GapColumn))
	assert.Equal(t, GapColor, ColumnColor(stats.AllGap))
}
