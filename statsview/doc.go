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

// Package statsview serves runtime statistics of the monitor over HTTP. It is
// only functional when built with the statsview build tag:
//
//	go build -tags statsview
//
// The charts are provided by github.com/go-echarts/statsview. After launch
// they are viewable at:
//
//	localhost:12631/debug/statsview
//
// Standard Go pprof statistics are available at:
//
//	localhost:12631/debug/pprof/
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview
