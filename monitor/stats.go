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

import "fmt"

// Stats is a summary of the work done by the monitor.
type Stats struct {
	// number of frames received, including dropped frames
	Frames uint64

	// number of frames for universes that are not monitored
	Dropped uint64

	// number of frames that changed at least one cell
	ChangedFrames uint64

	// number of cell updates dispatched to the display
	Updates uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("frames: %d  dropped: %d  changed: %d  updates: %d",
		s.Frames, s.Dropped, s.ChangedFrames, s.Updates)
}
