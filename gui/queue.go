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

package gui

import "sync"

// TaskQueue is an unbounded queue of tasks to be run in the rendering domain.
// Push() can be called from any goroutine and never blocks. Drain() runs the
// queued tasks and must only be called from the rendering domain.
type TaskQueue struct {
	crit  sync.Mutex
	tasks []func()

	// a value is sent on the wake channel when the queue changes from empty
	// to not empty
	wake chan struct{}
}

// NewTaskQueue is the preferred method of initialisation for the TaskQueue
// type.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{
		wake: make(chan struct{}, 1),
	}
}

// Push adds a task to the end of the queue.
func (q *TaskQueue) Push(task func()) {
	q.crit.Lock()
	q.tasks = append(q.tasks, task)
	q.crit.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Schedule implements the Scheduler interface.
func (q *TaskQueue) Schedule(task func()) {
	q.Push(task)
}

// Wake returns a channel that receives a value when tasks are waiting. It is
// possible for a value to be received and for Drain() to find nothing to do.
func (q *TaskQueue) Wake() <-chan struct{} {
	return q.wake
}

// Len returns the number of tasks waiting in the queue.
func (q *TaskQueue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.tasks)
}

// Drain runs every task in the queue, in the order they were pushed. Tasks
// pushed while Drain() is running are also run. Returns the number of tasks
// that were run.
func (q *TaskQueue) Drain() int {
	var n int
	for {
		q.crit.Lock()
		tasks := q.tasks
		q.tasks = nil
		q.crit.Unlock()

		if len(tasks) == 0 {
			return n
		}

		for _, t := range tasks {
			t()
		}
		n += len(tasks)
	}
}
