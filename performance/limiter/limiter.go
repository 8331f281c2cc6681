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

// Package limiter limits events to a fixed rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(30)
//	defer fps.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		service()
//	}
package limiter

import (
	"fmt"
	"sync"
	"time"
)

// FpsLimiter triggers a fixed number of times per second.
type FpsLimiter struct {
	crit            sync.Mutex
	framesPerSecond int
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter
// type. The frame rate must be positive.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, fmt.Errorf("limiter: frame rate must be positive (%d)", framesPerSecond)
	}
	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(period(framesPerSecond)),
	}
	return lim, nil
}

func period(framesPerSecond int) time.Duration {
	return time.Second / time.Duration(framesPerSecond)
}

// SetLimit changes the rate at which the FpsLimiter triggers. Non-positive
// values are ignored.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond <= 0 {
		return
	}
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.framesPerSecond = framesPerSecond
	lim.ticker.Reset(period(framesPerSecond))
}

// Limit returns the current frame rate.
func (lim *FpsLimiter) Limit() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.framesPerSecond
}

// Wait blocks until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if the trigger has already happened and false if it
// is still yet to happen. Does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Close stops the limiter. Wait() must not be called after Close().
func (lim *FpsLimiter) Close() {
	lim.ticker.Stop()
}
