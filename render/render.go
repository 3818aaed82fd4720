// Package render draws boards as PNG diagrams.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/game"
)

var (
	lightSquare = color.RGBA{0xf0, 0xd9, 0xb5, 0xff}
	darkSquare  = color.RGBA{0xb5, 0x88, 0x63, 0xff}
	background  = color.RGBA{0x30, 0x2e, 0x2b, 0xff}
	labelColor  = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	whiteToken  = color.RGBA{0xfa, 0xfa, 0xfa, 0xff}
	blackToken  = color.RGBA{0x22, 0x22, 0x22, 0xff}
)

// Options control the diagram layout.
type Options struct {
	SquareSize int  // pixels per square
	Flip       bool // draw from black's side
}

func DefaultOptions() Options {
	return Options{SquareSize: 48}
}

const margin = 16

// Image draws the board. Files and ranks are labelled in the margin.
func Image(b *game.Board, opts Options) *image.RGBA {
	if opts.SquareSize < 16 {
		opts.SquareSize = 16
	}
	sq := opts.SquareSize
	size := game.RowNum*sq + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for row := 0; row < game.RowNum; row++ {
		for col := 0; col < game.ColNum; col++ {
			x, y := col, row
			if opts.Flip {
				x, y = game.ColNum-1-col, game.RowNum-1-row
			}
			r := image.Rect(margin+x*sq, margin+y*sq, margin+(x+1)*sq, margin+(y+1)*sq)

			c := lightSquare
			if (row+col)%2 == 1 {
				c = darkSquare
			}
			draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)

			p := b.At(row, col)
			if p.IsEmpty() {
				continue
			}
			token, ink := whiteToken, blackToken
			if p.Color == game.Black {
				token, ink = blackToken, whiteToken
			}
			inset := sq / 5
			draw.Draw(img, r.Inset(inset), image.NewUniform(token), image.Point{}, draw.Src)
			centerText(img, face, string(p.Letter()), r, ink)
		}
	}

	// labels
	for i := 0; i < game.ColNum; i++ {
		col, row := i, i
		if opts.Flip {
			col, row = game.ColNum-1-i, game.RowNum-1-i
		}
		square := game.ToAlgebraicNotation(row, col)
		file, rank := square[:1], square[1:]

		bottom := image.Rect(margin+i*sq, size-margin, margin+(i+1)*sq, size)
		centerText(img, face, file, bottom, labelColor)
		left := image.Rect(0, margin+i*sq, margin, margin+(i+1)*sq)
		centerText(img, face, rank, left, labelColor)
	}
	return img
}

// PNG encodes the diagram of b into w.
func PNG(w io.Writer, b *game.Board, opts Options) error {
	return errors.Wrap(png.Encode(w, Image(b, opts)), "encode board png")
}

func centerText(dst draw.Image, face font.Face, s string, r image.Rectangle, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(s)
	m := face.Metrics()
	height := m.Ascent + m.Descent

	x := fixed.I(r.Min.X) + (fixed.I(r.Dx())-width)/2
	y := fixed.I(r.Min.Y) + (fixed.I(r.Dy())-height)/2 + m.Ascent
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(s)
}
