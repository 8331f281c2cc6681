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

package gui_test

import (
	"sync"
	"testing"
	"time"

	"github.com/sacnmonitor/sacnmonitor/assert"
	"github.com/sacnmonitor/sacnmonitor/gui"
	"github.com/sacnmonitor/sacnmonitor/test"
)

func TestTaskQueueOrder(t *testing.T) {
	q := gui.NewTaskQueue()
	test.ExpectImplements(t, q, (*gui.Scheduler)(nil))

	var order []int
	for i := range 10 {
		q.Push(func() {
			order = append(order, i)
		})
	}
	test.ExpectEquality(t, q.Len(), 10)

	test.ExpectEquality(t, q.Drain(), 10)
	test.ExpectEquality(t, q.Len(), 0)
	test.DemandEquality(t, len(order), 10)
	for i := range order {
		test.ExpectEquality(t, order[i], i)
	}

	// nothing left to do
	test.ExpectEquality(t, q.Drain(), 0)
}

func TestTaskQueueWake(t *testing.T) {
	q := gui.NewTaskQueue()

	select {
	case <-q.Wake():
		t.Errorf("unexpected wake on empty queue")
	default:
	}

	q.Push(func() {})
	q.Push(func() {})

	select {
	case <-q.Wake():
	default:
		t.Errorf("expected wake after push")
	}

	test.ExpectEquality(t, q.Drain(), 2)
}

func TestTaskQueueNested(t *testing.T) {
	q := gui.NewTaskQueue()

	// tasks pushed by a running task are run by the same call to Drain()
	var ran []string
	q.Push(func() {
		ran = append(ran, "a")
		q.Push(func() {
			ran = append(ran, "c")
		})
	})
	q.Push(func() {
		ran = append(ran, "b")
	})

	test.ExpectEquality(t, q.Drain(), 3)
	test.DemandEquality(t, len(ran), 3)
	test.ExpectEquality(t, ran[0], "a")
	test.ExpectEquality(t, ran[1], "b")
	test.ExpectEquality(t, ran[2], "c")
}

func TestTaskQueueNonBlocking(t *testing.T) {
	q := gui.NewTaskQueue()

	const producers = 8
	const tasks = 1000

	// nothing drains the queue while the producers run. if Push() ever blocked
	// the test would time out
	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for range producers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range tasks {
					q.Push(func() {})
				}
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("push blocked")
	}

	test.ExpectEquality(t, q.Drain(), producers*tasks)
}

func TestTaskQueuePerProducerOrder(t *testing.T) {
	q := gui.NewTaskQueue()

	const tasks = 500

	// tasks from a single producer are run in the order pushed even when other
	// producers are pushing at the same time
	last := []int{-1, -1}
	var wg sync.WaitGroup
	for p := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				q.Push(func() {
					if i != last[p]+1 {
						t.Errorf("producer %d: task %d ran after %d", p, i, last[p])
					}
					last[p] = i
				})
			}
		}()
	}
	wg.Wait()

	q.Drain()
	test.ExpectEquality(t, last[0], tasks-1)
	test.ExpectEquality(t, last[1], tasks-1)
}

func TestTaskQueueRunsOnDrainingGoroutine(t *testing.T) {
	q := gui.NewTaskQueue()
	render := assert.NewGoroutine()

	// tasks pushed from other goroutines run on the goroutine calling Drain()
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Push(func() {
				if !render.Current() {
					t.Errorf("task not run on the draining goroutine")
				}
			})
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, q.Drain(), 4)
}
