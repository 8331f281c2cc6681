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

// Package sdlmonitor displays levels in an SDL window. Each universe has a
// label followed by a grid of 512 cells.
//
// Cells are drawn into a streaming texture. Only the cells that have been
// marked with RequestRedraw() are drawn when the display is serviced. The
// texture is then copied to the window.
//
// All SDL functions must be called from the main thread. This includes
// NewSdlMonitor(), Service() and Destroy().
package sdlmonitor

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sacnmonitor/sacnmonitor/curated"
	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/gui"
	"github.com/sacnmonitor/sacnmonitor/logger"
	"github.com/sacnmonitor/sacnmonitor/performance"
	"github.com/sacnmonitor/sacnmonitor/performance/limiter"
)

// SDLError is the error pattern for all errors from the SDL display.
const SDLError = "sdl: %v"

const windowTitle = "sACN monitor"

// how often the window title is updated.
const titlePeriod = time.Second

// Config for a new SdlMonitor.
type Config struct {
	// frame rate of the display
	FPS int

	// size in pixels of each cell
	CellSize int

	// status shown in the window title. can be nil
	Status gui.StatusFunc
}

// SdlMonitor is an SDL implementation of the gui.GUI interface.
type SdlMonitor struct {
	queue  *gui.TaskQueue
	cells  *gui.Cells
	lay    layout
	events chan gui.Event
	status gui.StatusFunc

	lmtr *limiter.FpsLimiter

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// set by Quit(). the display stops drawing once set
	quit atomic.Bool

	// frames presented since the title was last updated
	frames    int
	titleTime time.Time
}

// NewSdlMonitor is the preferred method of initialisation for the SdlMonitor
// type. Must be called from the main thread.
func NewSdlMonitor(universes []dmx.Universe, cfg Config) (*SdlMonitor, error) {
	mon := &SdlMonitor{
		queue:     gui.NewTaskQueue(),
		cells:     gui.NewCells(universes),
		lay:       newLayout(cfg.CellSize, len(universes)),
		events:    make(chan gui.Event, 10),
		status:    cfg.Status,
		titleTime: time.Now(),
	}

	var err error

	mon.lmtr, err = limiter.NewFPSLimiter(cfg.FPS)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		mon.lmtr.Close()
		return nil, curated.Errorf(SDLError, err)
	}

	// window is no larger than the display. the renderer's logical size keeps
	// the aspect ratio of the texture when it is scaled to the window
	w, h := int32(mon.lay.width()), int32(mon.lay.height())
	if bounds, err := sdl.GetDisplayBounds(0); err == nil {
		mw := bounds.W * 9 / 10
		mh := bounds.H * 9 / 10
		if w > mw || h > mh {
			s := min(float32(mw)/float32(w), float32(mh)/float32(h))
			w = int32(float32(w) * s)
			h = int32(float32(h) * s)
		}
	}

	mon.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		mon.destroy(nil)
		return nil, curated.Errorf(SDLError, err)
	}

	mon.renderer, err = sdl.CreateRenderer(mon.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		mon.destroy(nil)
		return nil, curated.Errorf(SDLError, err)
	}

	err = mon.renderer.SetLogicalSize(int32(mon.lay.width()), int32(mon.lay.height()))
	if err != nil {
		mon.destroy(nil)
		return nil, curated.Errorf(SDLError, err)
	}

	mon.texture, err = mon.renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(mon.lay.width()),
		int32(mon.lay.height()),
	)
	if err != nil {
		mon.destroy(nil)
		return nil, curated.Errorf(SDLError, err)
	}

	// the whole texture is drawn once at the start. after that only dirty
	// cells are drawn
	for row, u := range universes {
		if err := mon.paint(mon.lay.label(row), func(c canvas) { paintLabel(c, u) }); err != nil {
			mon.destroy(nil)
			return nil, curated.Errorf(SDLError, err)
		}
	}
	mon.cells.MarkAllDirty()

	logger.Logf(logger.Allow, "sdl", "display of %d universes (%dx%d)", len(universes), mon.lay.width(), mon.lay.height())

	return mon, nil
}

// SetLevel implements the gui.RenderSink interface.
func (mon *SdlMonitor) SetLevel(u dmx.Universe, o dmx.Output, l dmx.Level) {
	mon.cells.Set(u, o, l)
}

// RequestRedraw implements the gui.RenderSink interface.
func (mon *SdlMonitor) RequestRedraw(u dmx.Universe, o dmx.Output) {
	mon.cells.MarkDirty(u, o)
}

// Schedule implements the gui.Scheduler interface.
func (mon *SdlMonitor) Schedule(task func()) {
	mon.queue.Push(task)
}

// Events implements the gui.GUI interface.
func (mon *SdlMonitor) Events() <-chan gui.Event {
	return mon.events
}

// Quit implements the gui.GUI interface.
func (mon *SdlMonitor) Quit() {
	mon.quit.Store(true)
}

// paint locks the area of the texture and calls draw with a canvas covering
// that area.
func (mon *SdlMonitor) paint(r rect, draw func(canvas)) error {
	sr := &sdl.Rect{X: int32(r.x), Y: int32(r.y), W: int32(r.w), H: int32(r.h)}
	pixels, pitch, err := mon.texture.Lock(sr)
	if err != nil {
		return err
	}
	draw(canvas{pixels: pixels, pitch: pitch, w: r.w, h: r.h})
	mon.texture.Unlock()
	return nil
}

// Service implements the gui.GUI interface. Must be called from the main
// thread.
func (mon *SdlMonitor) Service() {
	mon.serviceEvents()

	if mon.quit.Load() {
		return
	}

	mon.lmtr.Wait()

	// run tasks scheduled since the last service. this updates the cells and
	// marks them for redrawing
	mon.queue.Drain()

	var err error
	mon.cells.Redraw(func(row int, o dmx.Output, l dmx.Level) {
		if err != nil {
			return
		}
		err = mon.paint(mon.lay.cell(row, o), func(c canvas) {
			paintCell(c, o, l)
		})
	})
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}

	_ = mon.renderer.SetDrawColor(0, 0, 0, 255)
	_ = mon.renderer.Clear()
	_ = mon.renderer.Copy(mon.texture, nil, nil)
	mon.renderer.Present()

	mon.frames++
	if t := time.Since(mon.titleTime); t >= titlePeriod {
		mon.updateTitle(performance.CalcFPS(mon.frames, t))
		mon.frames = 0
		mon.titleTime = time.Now()
	}
}

func (mon *SdlMonitor) updateTitle(fps float64) {
	title := fmt.Sprintf("%s  [%.0f fps]", windowTitle, fps)
	if mon.status != nil {
		title = fmt.Sprintf("%s  %s", title, mon.status())
	}
	mon.window.SetTitle(title)
}

func (mon *SdlMonitor) serviceEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			gui.SendEvent(mon.events, gui.EventQuit{Reason: "window closed"})

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				break // switch
			}

			if ev.Keysym.Sym == sdl.K_ESCAPE {
				gui.SendEvent(mon.events, gui.EventQuit{Reason: "escape key"})
				break // switch
			}

			mod := gui.KeyModNone
			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = gui.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = gui.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = gui.KeyModCtrl
			}

			gui.SendEvent(mon.events, gui.EventKeyboard{
				Key: sdl.GetKeyName(ev.Keysym.Sym),
				Mod: mod,
			})
		}
	}
}

// Destroy releases the SDL resources. Must be called from the main thread.
func (mon *SdlMonitor) Destroy(output io.Writer) {
	mon.destroy(output)
}

func (mon *SdlMonitor) destroy(output io.Writer) {
	report := func(err error) {
		if err != nil && output != nil {
			fmt.Fprintln(output, curated.Errorf(SDLError, err))
		}
	}

	if mon.texture != nil {
		report(mon.texture.Destroy())
		mon.texture = nil
	}
	if mon.renderer != nil {
		report(mon.renderer.Destroy())
		mon.renderer = nil
	}
	if mon.window != nil {
		report(mon.window.Destroy())
		mon.window = nil
	}
	if mon.lmtr != nil {
		mon.lmtr.Close()
		mon.lmtr = nil
	}

	sdl.Quit()
}
