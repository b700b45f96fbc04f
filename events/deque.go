// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Queue is a FIFO of events. Window callbacks [Queue.Send] into it while
// the window library processes its native events, and the polling loop
// [Queue.Drain]s it afterwards on the same thread, so it is not
// synchronized.
type Queue struct {
	events []Event
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain removes and returns all pending events in order.
// It returns nil if the queue is empty.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	evs := q.events
	q.events = nil
	return evs
}
