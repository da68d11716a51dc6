// This file is part of Bensim.
//
// Bensim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bensim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bensim.  If not, see <https://www.gnu.org/licenses/>.

package lcd

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Dimensions of the rendered image.
const (
	border     = 6
	cellWidth  = 8
	cellHeight = 16

	ImageWidth  = border*2 + Columns*cellWidth
	ImageHeight = border*2 + Rows*cellHeight
)

// colours of the rendered image.
var (
	BackgroundColor = color.RGBA{R: 0x18, G: 0x38, B: 0xd0, A: 0xff}
	CellColor       = color.RGBA{R: 0x24, G: 0x48, B: 0xe8, A: 0xff}
	InkColor        = color.RGBA{R: 0xf0, G: 0xf4, B: 0xff, A: 0xff}
)

type renderer struct {
	img *image.RGBA
	ink *image.Uniform
	bg  *image.Uniform
}

func newRenderer() *renderer {
	return &renderer{
		img: image.NewRGBA(image.Rect(0, 0, ImageWidth, ImageHeight)),
		ink: image.NewUniform(InkColor),
		bg:  image.NewUniform(CellColor),
	}
}

func cellRect(row int, column int) image.Rectangle {
	x := border + column*cellWidth
	y := border + row*cellHeight
	return image.Rect(x, y, x+cellWidth-1, y+cellHeight-1)
}

// render the frame to the renderer's image. the same image is returned on
// every call.
func (r *renderer) render(lcd *LCD, f Frame) *image.RGBA {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)

	if !f.DisplayOn {
		return r.img
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			cell := cellRect(row, col)
			ink := r.ink

			if f.BlinkOn && row == f.CursorRow && col == f.CursorColumn {
				draw.Draw(r.img, cell, r.ink, image.Point{}, draw.Src)
				ink = r.bg
			} else {
				draw.Draw(r.img, cell, r.bg, image.Point{}, draw.Src)
			}

			code := f.Codes[row][col]
			if IsUserDefined(code) {
				r.pattern(cell, lcd.Pattern(code), ink)
			} else {
				d := font.Drawer{
					Dst:  r.img,
					Src:  ink,
					Face: basicfont.Face7x13,
					Dot:  fixed.P(cell.Min.X, cell.Min.Y+basicfont.Face7x13.Ascent+1),
				}
				d.DrawString(string(CharacterRune(code)))
			}

			if f.CursorOn && row == f.CursorRow && col == f.CursorColumn {
				u := image.Rect(cell.Min.X, cell.Max.Y-1, cell.Max.X, cell.Max.Y)
				draw.Draw(r.img, u, ink, image.Point{}, draw.Src)
			}
		}
	}

	return r.img
}

// pattern draws a user defined character. each line of the pattern is five
// dots wide.
func (r *renderer) pattern(cell image.Rectangle, p [8]uint8, ink *image.Uniform) {
	x := cell.Min.X + 1
	y := cell.Min.Y + 3
	for l, bits := range p {
		for d := 0; d < 5; d++ {
			if bits&(0x10>>d) != 0 {
				r.img.Set(x+d, y+l, ink.C)
			}
		}
	}
}
