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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/gui"
	"github.com/sacnmonitor/sacnmonitor/gui/sdlmonitor"
	"github.com/sacnmonitor/sacnmonitor/gui/termmonitor"
	"github.com/sacnmonitor/sacnmonitor/logger"
	"github.com/sacnmonitor/sacnmonitor/modalflag"
	"github.com/sacnmonitor/sacnmonitor/monitor"
	"github.com/sacnmonitor/sacnmonitor/performance"
	"github.com/sacnmonitor/sacnmonitor/prefs"
	"github.com/sacnmonitor/sacnmonitor/receiver"
	"github.com/sacnmonitor/sacnmonitor/statsview"
	"github.com/sacnmonitor/sacnmonitor/universe"
	"github.com/sacnmonitor/sacnmonitor/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// main thread stops handling the interrupt signal. used when the mode
	// handles the interrupt signal itself so that it can shut down in order.
	// the mode must register its own handler before making the request.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// how long the main thread sleeps when there is no gui to service.
const idlePeriod = 10 * time.Millisecond

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including creation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// creator() returns a nil pointer of a concrete type on error.
				// stored in the interface that is not the same as nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				releaseInterrupt(intChan, state.args)
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				time.Sleep(idlePeriod)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// releaseInterrupt is called by the main thread on a reqNoIntSig request.
// only the main thread's channel is unregistered. other handlers of the
// interrupt signal are unaffected.
func releaseInterrupt(intChan chan os.Signal, args interface{}) {
	signal.Stop(intChan)
	if args != nil {
		panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
	}
}

// takeInterrupt registers a new channel for the interrupt signal and then
// asks the main thread to stop handling it. the interrupt signal is always
// handled by at least one of the two channels.
func takeInterrupt(sync *mainSync) chan os.Signal {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	sync.state <- stateRequest{req: reqNoIntSig}
	return intChan
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("SDL", "TERM", "VERSION")
	md.AdditionalHelp("sacnmonitor shows the levels of sACN (E1.31) universes as they are received")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "SDL":
		err = sdlMode(md, sync)

	case "TERM":
		err = termMode(md, sync)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to the SDL and TERM modes.
type commonFlags struct {
	universes *string
	itf       *string
	prefs     *string
	profile   *string
	log       *bool
	stats     *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		universes: md.AddString("universes", "", "universes to monitor. eg. 1,2,4 or 1-3,10 (default from preferences)"),
		itf:       md.AddString("interface", "", "network interface to receive on (default from preferences)"),
		prefs:     md.AddString("prefs", "", "preference values. eg. \"sdl.fps::60; sdl.cellsize::24\""),
		profile:   md.AddString("profile", "none", "run with profiling: cpu, mem, all, none"),
		log:       md.AddBool("log", false, "echo debugging log"),
		stats:     md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
	}
}

// prefsFromFlags returns a string suitable for prefs.PushCommandLineStack()
// containing the -prefs flag and every flag that was set on the command line
// that has an equivalent preference.
func prefsFromFlags(md *modalflag.Modes, flags commonFlags, extra map[string]string) string {
	var s []string
	if *flags.prefs != "" {
		s = append(s, *flags.prefs)
	}

	md.Visit(func(flag string) {
		switch flag {
		case "universes":
			s = append(s, fmt.Sprintf("monitor.universes::%s", *flags.universes))
		case "interface":
			s = append(s, fmt.Sprintf("monitor.interface::%s", *flags.itf))
		default:
			if v, ok := extra[flag]; ok {
				s = append(s, v)
			}
		}
	})

	return strings.Join(s, "; ")
}

// loadPreferences pushes the command line preferences and loads the
// preferences file.
func loadPreferences(cl string) (*monitor.Preferences, []dmx.Universe, error) {
	prefs.PushCommandLineStack(cl)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences on command line: %s", unused)
		}
	}()

	p, err := monitor.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	err = p.Load()
	if err != nil {
		return nil, nil, err
	}

	universes, err := p.ParsedUniverses()
	if err != nil {
		return nil, nil, err
	}

	return p, universes, nil
}

// statusFunc returns a gui.StatusFunc that reports the statistics of the
// monitor once it has been created.
func statusFunc(mon *atomic.Pointer[monitor.Monitor]) gui.StatusFunc {
	return func() string {
		if m := mon.Load(); m != nil {
			return m.Stats().String()
		}
		return ""
	}
}

// launchStatsview starts the stats server if requested. the returned function
// stops it.
func launchStatsview(stats bool) func() {
	if !stats {
		return func() {}
	}
	if !statsview.Available() {
		fmt.Println("* statsview not available in this build")
		return func() {}
	}
	return statsview.Launch(os.Stdout)
}

func sdlMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flags := addCommonFlags(md)
	fps := md.AddInt("fps", monitor.DefaultFPS, "frame rate of the display (default from preferences)")
	cellSize := md.AddInt("cellsize", monitor.DefaultCellSize, "size of each cell in pixels (default from preferences)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(md.RemainingArgs(), " "))
	}

	// set debugging log echo
	if *flags.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	cl := prefsFromFlags(md, flags, map[string]string{
		"fps":      fmt.Sprintf("sdl.fps::%d", *fps),
		"cellsize": fmt.Sprintf("sdl.cellsize::%d", *cellSize),
	})

	pref, universes, err := loadPreferences(cl)
	if err != nil {
		return err
	}

	profile, err := performance.ParseProfileString(*flags.profile)
	if err != nil {
		return err
	}

	stop := launchStatsview(*flags.stats)
	defer stop()

	var mon atomic.Pointer[monitor.Monitor]

	// create gui on the main thread
	sync.creator <- func() (GuiCreator, error) {
		return sdlmonitor.NewSdlMonitor(universes, sdlmonitor.Config{
			FPS:      pref.FPS.Get().(int),
			CellSize: pref.CellSize.Get().(int),
			Status:   statusFunc(&mon),
		})
	}

	// wait for creator result
	var scr *sdlmonitor.SdlMonitor
	select {
	case g := <-sync.creation:
		scr = g.(*sdlmonitor.SdlMonitor)
	case err := <-sync.creationError:
		return err
	}

	return performance.RunProfiler(profile, "sacnmonitor", func() error {
		return run(scr, pref, universes, &mon, sync, nil)
	})
}

func termMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flags := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(md.RemainingArgs(), " "))
	}

	// the terminal is used by the display so the log is shown at the bottom
	// of the display rather than echoed
	logger.SetEcho(nil)
	logLines := 0
	if *flags.log {
		logLines = 3
	}

	pref, universes, err := loadPreferences(prefsFromFlags(md, flags, nil))
	if err != nil {
		return err
	}

	profile, err := performance.ParseProfileString(*flags.profile)
	if err != nil {
		return err
	}

	stop := launchStatsview(*flags.stats)
	defer stop()

	var mon atomic.Pointer[monitor.Monitor]

	tm := termmonitor.NewTermMonitor(universes, termmonitor.Config{
		Status:   statusFunc(&mon),
		LogLines: logLines,
	})

	return performance.RunProfiler(profile, "sacnmonitor", func() error {
		done := make(chan struct{})
		go func() {
			tm.Service()
			close(done)
		}()

		err := run(tm, pref, universes, &mon, sync, done)

		// wait for the terminal to be restored before returning
		<-done

		return err
	})
}

// run the monitor until the display asks to quit, the display ends or an
// interrupt signal is received. the receiver is stopped before the display.
func run(g gui.GUI, pref *monitor.Preferences, universes []dmx.Universe,
	mon *atomic.Pointer[monitor.Monitor], sync *mainSync, done <-chan struct{}) error {

	reg, err := universe.NewRegistry(universes...)
	if err != nil {
		g.Quit()
		return err
	}

	m := monitor.NewMonitor(reg, g, g)
	mon.Store(m)

	recv, err := receiver.NewReceiver(pref.Interface.String(), reg.AllUniverses(), m.HandleFrame)
	if err != nil {
		g.Quit()
		return err
	}

	// handle interrupt signal here so that the receiver is stopped before
	// the display
	intChan := takeInterrupt(sync)
	defer signal.Stop(intChan)

	recv.Start()
	logger.Logf(logger.Allow, "sacnmonitor", "monitoring %s", receiver.UniverseList(reg.AllUniverses()))

	for running := true; running; {
		select {
		case ev := <-g.Events():
			switch ev := ev.(type) {
			case gui.EventQuit:
				logger.Logf(logger.Allow, "sacnmonitor", "quit: %s", ev.Reason)
				running = false
			case gui.EventKeyboard:
				logger.Logf(logger.Allow, "sacnmonitor", "unhandled key: %s", ev.Key)
			}
		case <-intChan:
			logger.Log(logger.Allow, "sacnmonitor", "interrupt signal")
			running = false
		case <-done:
			running = false
		}
	}

	recv.Stop()
	g.Quit()

	logger.Log(logger.Allow, "sacnmonitor", m.Stats())

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Printf("%s (%s)\n", v, r)
	} else {
		fmt.Println(v)
	}

	return nil
}
