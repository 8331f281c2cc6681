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

// Package termmonitor displays levels in a terminal. It is built with the
// bubbletea and lipgloss packages.
//
// Each universe has a heading followed by a grid of cells. A cell shows the
// level of the output, or nothing if the level is zero, on a background
// coloured by the level. The grid is as wide as the terminal allows and can
// be scrolled with the cursor keys.
//
// The text of a cell is rendered only when the cell has been marked with
// RequestRedraw(). The rest of the display is assembled from the cached cell
// text.
package termmonitor

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sacnmonitor/sacnmonitor/curated"
	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/gui"
	"github.com/sacnmonitor/sacnmonitor/logger"
)

// TermError is the error pattern for all errors from the terminal display.
const TermError = "term: %v"

// width of a cell in characters.
const cellWidth = 4

// how often the status line is refreshed.
const statusPeriod = time.Second

// Config for a new TermMonitor.
type Config struct {
	// status shown at the top of the display. can be nil
	Status gui.StatusFunc

	// number of log lines shown at the bottom of the display
	LogLines int
}

// TermMonitor is a terminal implementation of the gui.GUI interface.
type TermMonitor struct {
	queue   *gui.TaskQueue
	events  chan gui.Event
	program *tea.Program
	model   *model
}

// NewTermMonitor is the preferred method of initialisation for the
// TermMonitor type.
func NewTermMonitor(universes []dmx.Universe, cfg Config) *TermMonitor {
	tm := &TermMonitor{
		queue:  gui.NewTaskQueue(),
		events: make(chan gui.Event, 10),
	}
	tm.model = newModel(tm.queue, tm.events, universes, cfg)
	tm.program = tea.NewProgram(tm.model, tea.WithAltScreen())
	return tm
}

// SetLevel implements the gui.RenderSink interface. Must only be called from
// a task run by the display.
func (tm *TermMonitor) SetLevel(u dmx.Universe, o dmx.Output, l dmx.Level) {
	tm.model.cells.Set(u, o, l)
}

// RequestRedraw implements the gui.RenderSink interface. Must only be called
// from a task run by the display.
func (tm *TermMonitor) RequestRedraw(u dmx.Universe, o dmx.Output) {
	tm.model.cells.MarkDirty(u, o)
}

// Schedule implements the gui.Scheduler interface.
func (tm *TermMonitor) Schedule(task func()) {
	tm.queue.Push(task)
}

// Events implements the gui.GUI interface.
func (tm *TermMonitor) Events() <-chan gui.Event {
	return tm.events
}

// Service implements the gui.GUI interface. It runs the terminal UI and
// blocks until Quit() is called or the terminal UI fails.
func (tm *TermMonitor) Service() {
	logger.Log(logger.Allow, "term", "starting terminal display")
	if _, err := tm.program.Run(); err != nil {
		logger.Log(logger.Allow, "term", curated.Errorf(TermError, err))
	}
}

// Quit implements the gui.GUI interface. Safe to call from any goroutine
// once Service() has been called.
func (tm *TermMonitor) Quit() {
	tm.program.Quit()
}

// wakeMsg is sent when there are tasks waiting in the queue.
type wakeMsg struct{}

// statusMsg is sent periodically to refresh the status line.
type statusMsg struct{}

// listenForWake returns a tea.Cmd that blocks until the task queue has work,
// then delivers a wakeMsg.
func listenForWake(wake <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-wake
		return wakeMsg{}
	}
}

func scheduleStatus() tea.Cmd {
	return tea.Tick(statusPeriod, func(time.Time) tea.Msg {
		return statusMsg{}
	})
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e6e6e6"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#b3b3b3"))
	logStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// model is the bubbletea model of the display. it is only used by the
// bubbletea event loop and by tasks from the queue, which are run by the
// event loop.
type model struct {
	queue  *gui.TaskQueue
	events chan gui.Event
	status gui.StatusFunc

	cells *gui.Cells

	// rendered text of every cell, in the same order as the levels in cells.
	// a cell is re-rendered when it is redrawn
	text []string

	// current status line
	statusLine string

	logLines int

	width  int
	height int

	// first line of the grid shown at the top of the terminal
	scroll int
}

func newModel(queue *gui.TaskQueue, events chan gui.Event, universes []dmx.Universe, cfg Config) *model {
	m := &model{
		queue:    queue,
		events:   events,
		status:   cfg.Status,
		cells:    gui.NewCells(universes),
		text:     make([]string, len(universes)*dmx.NumOutputs),
		logLines: cfg.LogLines,
		width:    80,
		height:   24,
	}
	for i := range m.text {
		m.text[i] = renderCell(0)
	}
	m.refreshStatus()
	return m
}

// renderCell returns the text of a cell at the given level.
func renderCell(l dmx.Level) string {
	r, g, b := gui.LevelColour(l)
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))).
		Foreground(lipgloss.Color("#e6e6e6"))
	if l == 0 {
		return style.Render(strings.Repeat(" ", cellWidth-1)) + " "
	}
	return style.Render(fmt.Sprintf("%3d", l)) + " "
}

func (m *model) refreshStatus() {
	if m.status != nil {
		m.statusLine = m.status()
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return tea.Batch(listenForWake(m.queue.Wake()), scheduleStatus())
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wakeMsg:
		m.drain()
		return m, listenForWake(m.queue.Wake())

	case statusMsg:
		m.refreshStatus()
		return m, scheduleStatus()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			gui.SendEvent(m.events, gui.EventQuit{Reason: fmt.Sprintf("%s key", msg.String())})
		case "up", "k":
			m.scroll--
		case "down", "j":
			m.scroll++
		case "pgup":
			m.scroll -= m.gridHeight()
		case "pgdown", " ":
			m.scroll += m.gridHeight()
		case "home", "g":
			m.scroll = 0
		case "end", "G":
			m.scroll = len(m.gridLines())
		default:
			gui.SendEvent(m.events, gui.EventKeyboard{Key: msg.String()})
		}
		m.clampScroll()
	}

	return m, nil
}

// drain runs the tasks in the queue and re-renders the cells that the tasks
// marked for redrawing.
func (m *model) drain() {
	m.queue.Drain()
	m.cells.Redraw(func(row int, o dmx.Output, l dmx.Level) {
		m.text[row*dmx.NumOutputs+int(o)] = renderCell(l)
	})
}

// number of cells in each line of the grid.
func (m *model) columns() int {
	return max(1, m.width/cellWidth)
}

// number of terminal lines available for the grid. one line is used by the
// status and the remainder by the log.
func (m *model) gridHeight() int {
	return max(1, m.height-1-m.logLines)
}

func (m *model) clampScroll() {
	m.scroll = min(m.scroll, len(m.gridLines())-m.gridHeight())
	m.scroll = max(m.scroll, 0)
}

// gridLines returns every line of the grid, including universe headings.
func (m *model) gridLines() []string {
	cols := m.columns()

	var lines []string
	var s strings.Builder
	for row, u := range m.cells.Universes() {
		lines = append(lines, headingStyle.Render(fmt.Sprintf("Universe %d", u)))
		for o := 0; o < dmx.NumOutputs; o += cols {
			s.Reset()
			for _, t := range m.text[row*dmx.NumOutputs+o : row*dmx.NumOutputs+min(o+cols, dmx.NumOutputs)] {
				s.WriteString(t)
			}
			lines = append(lines, s.String())
		}
	}
	return lines
}

// View implements tea.Model.
func (m *model) View() string {
	var s strings.Builder

	s.WriteString(statusStyle.Render(m.statusLine))
	s.WriteString("\n")

	lines := m.gridLines()
	end := min(m.scroll+m.gridHeight(), len(lines))
	for _, l := range lines[m.scroll:end] {
		s.WriteString(l)
		s.WriteString("\n")
	}

	if m.logLines > 0 {
		var b bytes.Buffer
		logger.Tail(&b, m.logLines)
		s.WriteString(logStyle.Render(strings.TrimRight(b.String(), "\n")))
	}

	return s.String()
}
