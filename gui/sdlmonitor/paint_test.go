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
	"testing"

	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/test"
)

func TestLevelColour(t *testing.T) {
	test.ExpectEquality(t, levelColour(0), colour{r: 77, g: 77, b: 77})
	test.ExpectEquality(t, levelColour(255), colour{r: 128, g: 77, b: 0})

	// red increases and blue decreases with level
	for l := 1; l < 256; l++ {
		a := levelColour(dmx.Level(l - 1))
		b := levelColour(dmx.Level(l))
		if !test.ExpectSuccess(t, b.r >= a.r && b.b <= a.b, l) {
			break // for loop
		}
	}
}

func TestLayout(t *testing.T) {
	lay := newLayout(32, 3)
	test.ExpectEquality(t, lay.width(), 1024)
	test.ExpectEquality(t, lay.labelHeight, 16)
	test.ExpectEquality(t, lay.universeHeight(), 16+16*32)
	test.ExpectEquality(t, lay.height(), 3*lay.universeHeight())

	test.ExpectEquality(t, lay.cell(0, 0), rect{x: 0, y: 16, w: 32, h: 32})
	test.ExpectEquality(t, lay.cell(0, 33), rect{x: 32, y: 48, w: 32, h: 32})
	test.ExpectEquality(t, lay.cell(1, 511), rect{x: 31 * 32, y: lay.universeHeight() + 16 + 15*32, w: 32, h: 32})
	test.ExpectEquality(t, lay.label(2), rect{x: 0, y: 2 * lay.universeHeight(), w: 1024, h: 16})

	// small cells still leave room for the label text
	lay = newLayout(4, 1)
	test.ExpectEquality(t, lay.labelHeight, glyphHeight+2)
}

func newCanvas(w, h int) canvas {
	return canvas{
		pixels: make([]byte, w*h*pixelDepth),
		pitch:  w * pixelDepth,
		w:      w,
		h:      h,
	}
}

func (c canvas) get(x, y int) colour {
	i := y*c.pitch + x*pixelDepth
	return colour{b: c.pixels[i], g: c.pixels[i+1], r: c.pixels[i+2]}
}

func TestCanvasClipping(t *testing.T) {
	c := newCanvas(4, 4)

	// drawing outside the canvas does not panic and does not wrap
	c.fill(-2, -2, 10, 1, colourNumber)
	c.fill(3, 0, 4, 4, colourNumber)
	test.ExpectEquality(t, c.get(0, 0), colour{})
	test.ExpectEquality(t, c.get(3, 0), colourNumber)
	test.ExpectEquality(t, c.get(2, 0), colour{})
}

func TestTextWidth(t *testing.T) {
	test.ExpectEquality(t, textWidth("", 1), 0)
	test.ExpectEquality(t, textWidth("1", 1), 3)
	test.ExpectEquality(t, textWidth("512", 2), 22)
}

func TestPaintCell(t *testing.T) {
	c := newCanvas(32, 32)

	paintCell(c, 0, 0)

	// corners are background and the body is the colour of the level
	test.ExpectEquality(t, c.get(0, 0), colourBackground)
	test.ExpectEquality(t, c.get(2, 16), levelColour(0))

	// no level bar at zero
	test.ExpectEquality(t, c.get(2, 28), levelColour(0))

	paintCell(c, 0, 255)
	test.ExpectEquality(t, c.get(2, 16), levelColour(255))
	test.ExpectEquality(t, c.get(2, 28), colourLevel)
	test.ExpectEquality(t, c.get(29, 28), colourLevel)
}
