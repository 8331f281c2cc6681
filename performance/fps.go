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

package performance

import "time"

// CalcFPS returns the number of frames per second for a number of frames
// rendered over a duration. Returns zero for a non-positive duration.
func CalcFPS(numFrames int, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numFrames) / duration.Seconds()
}
