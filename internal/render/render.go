// Package render draws a multiple alignment as a coloured block view.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/aria-lang/centerstar-go/internal/stats"
)

const (
	// CellSize is the width and height of one residue cell in pixels.
	CellSize = 20
	// Gutter is the width of the label column on the left.
	Gutter = 100
	// Padding is the margin above and below the rows.
	Padding = 10

	fontSize = 12
	// Go Mono advances 0.6 em per glyph.
	glyphWidth = 7
)

// Cell colours by column class.
var (
	MatchColor    = color.RGBA{0xc8, 0xe6, 0xc9, 0xff}
	MismatchColor = color.RGBA{0xff, 0xcd, 0xd2, 0xff}
	GapColor      = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	OutlineColor  = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(gomono.TTF)
})

// ColumnColor returns the fill colour for a column class. Columns holding
// any gap are drawn in the gap colour.
func ColumnColor(c stats.ColumnClass) color.RGBA {
	switch c {
	case stats.Match:
		return MatchColor
	case stats.Mismatch:
		return MismatchColor
	default:
		return GapColor
	}
}

// Draw renders one labelled row per sequence. Each cell shows its residue
// on the colour of its column class.
func Draw(ids, rows []string) (*image.RGBA, error) {
	if len(ids) != len(rows) {
		return nil, fmt.Errorf("got %d identifiers for %d rows", len(ids), len(rows))
	}

	classes, err := stats.Profile(rows)
	if err != nil {
		return nil, err
	}

	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}

	width := Gutter + len(classes)*CellSize
	height := 2*Padding + len(rows)*CellSize
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	c.SetHinting(font.HintingFull)

	for i, row := range rows {
		y := Padding + i*CellSize
		baseline := y + CellSize/2 + fontSize/3

		if _, err := c.DrawString(ids[i], freetype.Pt(5, baseline)); err != nil {
			return nil, err
		}

		for j := 0; j < len(row); j++ {
			x := Gutter + j*CellSize
			cell := image.Rect(x, y, x+CellSize, y+CellSize)
			draw.Draw(img, cell, &image.Uniform{C: ColumnColor(classes[j])}, image.Point{}, draw.Src)
			outline(img, cell)

			if _, err := c.DrawString(string(row[j]), freetype.Pt(x+(CellSize-glyphWidth)/2, baseline)); err != nil {
				return nil, err
			}
		}
	}

	return img, nil
}

// WritePNG renders the alignment and encodes it as PNG.
func WritePNG(w io.Writer, ids, rows []string) error {
	img, err := Draw(ids, rows)
	if err != nil {
		return err
	}
	return Encode(w, img)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func outline(img *image.RGBA, r image.Rectangle) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, OutlineColor)
		img.SetRGBA(x, r.Max.Y-1, OutlineColor)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, OutlineColor)
		img.SetRGBA(r.Max.X-1, y, OutlineColor)
	}
}
