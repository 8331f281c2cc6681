// This file is part of sacnmonitor.
//
// sacnmonitor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sacnmonitor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sacnmonitor.  If not, see <https://www.gnu.org/licenses/>.

package sdlmonitor

import (
	"strconv"

	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/gui"
)

// pixel format of the texture is ARGB8888. in memory on a little-endian
// machine this is stored as blue, green, red, alpha.
const pixelDepth = 4

type colour struct {
	r, g, b uint8
}

var (
	colourBackground = colour{r: 26, g: 26, b: 26}
	colourLabel      = colour{r: 38, g: 38, b: 38}
	colourNumber     = colour{r: 230, g: 230, b: 230}
	colourLevel      = colour{r: 179, g: 179, b: 179}
)

func levelColour(l dmx.Level) colour {
	r, g, b := gui.LevelColour(l)
	return colour{r: r, g: g, b: b}
}

// canvas is a rectangle of pixels. drawing outside of the canvas is ignored.
type canvas struct {
	pixels []byte
	pitch  int
	w, h   int
}

func (c canvas) set(x, y int, col colour) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := y*c.pitch + x*pixelDepth
	c.pixels[i] = col.b
	c.pixels[i+1] = col.g
	c.pixels[i+2] = col.r
	c.pixels[i+3] = 0xff
}

func (c canvas) fill(x, y, w, h int, col colour) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.set(i, j, col)
		}
	}
}

// text draws the string with the digit glyphs. characters without a glyph
// are drawn as a space. returns the width of the text in pixels.
func (c canvas) text(x, y, scale int, s string, col colour) int {
	for _, r := range s {
		if g, ok := glyphs[r]; ok {
			for row := range glyphHeight {
				for bit := range glyphWidth {
					if g[row]&(1<<(glyphWidth-1-bit)) != 0 {
						c.fill(x+bit*scale, y+row*scale, scale, scale, col)
					}
				}
			}
		}
		x += (glyphWidth + 1) * scale
	}
	return textWidth(s, scale)
}

func textWidth(s string, scale int) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	return (n*(glyphWidth+1) - 1) * scale
}

// paintCell draws a cell on a canvas the size of the cell. the output number
// is drawn at the top, the level below it (but only if it is not zero) and
// a bar showing the level along the bottom.
func paintCell(c canvas, o dmx.Output, l dmx.Level) {
	size := min(c.w, c.h)
	scale := max(1, size/16)

	c.fill(0, 0, c.w, c.h, colourBackground)

	// body of the cell with the corners cut off
	bg := levelColour(l)
	c.fill(1, 2, c.w-2, c.h-4, bg)
	c.fill(2, 1, c.w-4, c.h-2, bg)

	s := strconv.Itoa(o.Display())
	c.text((c.w-textWidth(s, scale))/2, 2*scale, scale, s, colourNumber)

	if l != 0 {
		s = strconv.Itoa(int(l))
		c.text((c.w-textWidth(s, scale))/2, (3+glyphHeight)*scale, scale, s, colourLevel)
	}

	// level bar
	bw := (c.w - 4) * int(l) / 255
	c.fill(2, c.h-2-scale, bw, scale, colourLevel)
}

// paintLabel draws the label for a universe.
func paintLabel(c canvas, u dmx.Universe) {
	c.fill(0, 0, c.w, c.h, colourLabel)
	scale := max(1, (c.h-2)/glyphHeight)
	c.text(scale*2, (c.h-glyphHeight*scale)/2, scale, "U"+strconv.Itoa(int(u)), colourNumber)
}
