// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package progressive

import (
	"context"
	"sort"
	"sync"
	"time"
)

// A Loop is a single goroutine event loop.
// All posted tasks,
// and all the timers,
// are executed in the goroutine
// that calls Run.
type Loop struct {
	tasks chan func()
	quit  chan struct{}
	once  sync.Once
}

// NewLoop returns a new event loop.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 256),
		quit:  make(chan struct{}),
	}
}

// Post adds a task to the loop.
// It can be called from any goroutine.
func (l *Loop) Post(f func()) {
	select {
	case l.tasks <- f:
	case <-l.quit:
	}
}

// Quit stops the loop.
// It can be called from any goroutine.
func (l *Loop) Quit() {
	l.once.Do(func() { close(l.quit) })
}

// Run executes the tasks of the loop
// until Quit is called
// or the context is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.quit:
			return nil
		case f := <-l.tasks:
			f()
		}
	}
}

// Now returns the current time.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// AfterFunc posts f into the loop
// after the indicated duration.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() { l.Post(f) })
}

// A Stepper is a host with a virtual clock.
// Timers only fire when the stepper is stepped,
// in order of expiration.
type Stepper struct {
	now    time.Time
	seq    int
	timers []*stepTimer
}

type stepTimer struct {
	s    *Stepper
	when time.Time
	seq  int
	f    func()
}

// Stop removes the timer.
func (t *stepTimer) Stop() bool {
	return t.s.remove(t)
}

// NewStepper returns a new stepper
// with its clock at the indicated time.
func NewStepper(start time.Time) *Stepper {
	return &Stepper{now: start}
}

// Now returns the time of the virtual clock.
func (s *Stepper) Now() time.Time {
	return s.now
}

// Advance moves the virtual clock,
// without firing any timer.
func (s *Stepper) Advance(d time.Duration) {
	s.now = s.now.Add(d)
}

// AfterFunc adds a timer.
func (s *Stepper) AfterFunc(d time.Duration, f func()) Timer {
	t := &stepTimer{
		s:    s,
		when: s.now.Add(d),
		seq:  s.seq,
		f:    f,
	}
	s.seq++
	s.timers = append(s.timers, t)
	sort.SliceStable(s.timers, func(i, j int) bool {
		a, b := s.timers[i], s.timers[j]
		if a.when.Equal(b.when) {
			return a.seq < b.seq
		}
		return a.when.Before(b.when)
	})
	return t
}

func (s *Stepper) remove(t *stepTimer) bool {
	for i, o := range s.timers {
		if o == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of pending timers.
func (s *Stepper) Pending() int {
	return len(s.timers)
}

// Step fires the earliest timer,
// moving the clock to its expiration time
// if it is in the future.
// It returns false if there are no pending timers.
func (s *Stepper) Step() bool {
	if len(s.timers) == 0 {
		return false
	}
	t := s.timers[0]
	s.timers = s.timers[1:]
	if t.when.After(s.now) {
		s.now = t.when
	}
	t.f()
	return true
}

// Run fires timers until there are no pending timers,
// and returns the number of fired timers.
func (s *Stepper) Run() int {
	n := 0
	for s.Step() {
		n++
	}
	return n
}
