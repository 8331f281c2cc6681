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

package monitor

import (
	"github.com/sacnmonitor/sacnmonitor/curated"
	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/logger"
	"github.com/sacnmonitor/sacnmonitor/paths"
	"github.com/sacnmonitor/sacnmonitor/prefs"
	"github.com/sacnmonitor/sacnmonitor/universe"
)

// Default preference values.
const (
	DefaultUniverses = "1,2,4"
	DefaultFPS       = 30
	DefaultCellSize  = 32
)

// PreferencesError is the error pattern for all preferences errors.
const PreferencesError = "monitor: preferences: %v"

// Preferences of the monitor.
type Preferences struct {
	dsk *prefs.Disk

	// list of universes in the format accepted by universe.Parse()
	Universes prefs.String

	// name of the network interface to receive on. empty for the default
	// interface
	Interface prefs.String

	// frame rate of the SDL display
	FPS prefs.Int

	// size in pixels of a cell in the SDL display
	CellSize prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are stored in the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// preferences are stored in the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// the universe list must always be parseable
	p.Universes.SetHookPre(func(v prefs.Value) error {
		_, err := universe.Parse(v.(string))
		return err
	})
	p.FPS.SetRange(1, 240)
	p.CellSize.SetRange(4, 128)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}

	if err := p.dsk.Add("monitor.universes", &p.Universes); err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}
	if err := p.dsk.Add("monitor.interface", &p.Interface); err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}
	if err := p.dsk.Add("sdl.fps", &p.FPS); err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}
	if err := p.dsk.Add("sdl.cellsize", &p.CellSize); err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Universes.Set(DefaultUniverses)
	_ = p.Interface.Set("")
	_ = p.FPS.Set(DefaultFPS)
	_ = p.CellSize.Set(DefaultCellSize)
}

// Load preferences from disk. A missing preferences file is not an error:
// the file is created with the current values.
func (p *Preferences) Load() error {
	err := p.dsk.Load(true)
	if err != nil {
		if curated.Is(err, prefs.NoPrefsFile) {
			logger.Log(logger.Allow, "prefs", err)
			return nil
		}
		return curated.Errorf(PreferencesError, err)
	}
	return nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return curated.Errorf(PreferencesError, err)
	}
	return nil
}

// ParsedUniverses returns the list of universes in the Universes preference.
func (p *Preferences) ParsedUniverses() ([]dmx.Universe, error) {
	return universe.Parse(p.Universes.String())
}
