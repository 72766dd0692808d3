// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package progressive implements a scheduler
// that draws large ensembles
// in small time slices,
// so the host event loop is never blocked
// for a long time.
//
// A render job draws the realizations of each case
// in the declared order.
// After each realization,
// the job checks the time budget of the current tick,
// and when it is exhausted,
// it yields to the host
// and resumes,
// after a short delay,
// at the next realization.
//
// Starting a new job stops the job in progress:
// the old job never draws again
// once the new job starts.
//
// All the operations of a scheduler,
// and all of its jobs,
// must run in the same goroutine
// (the goroutine of the host event loop).
package progressive

import "time"

// Default scheduling parameters.
const (
	DefaultBudget = 10 * time.Millisecond
	DefaultDelay  = 15 * time.Millisecond
)

// A Timer is a pending function call.
type Timer interface {
	// Stop prevents the timer from firing.
	// It returns false if the timer
	// has already fired or been stopped.
	Stop() bool
}

// A Host is the event loop
// that runs the scheduler.
type Host interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc schedules f to run
	// in the host event loop
	// after the indicated duration.
	AfterFunc(d time.Duration, f func()) Timer
}

// Work is an ordered set of cases,
// each one with an ordered set of realizations.
type Work interface {
	// Cases returns the number of cases.
	Cases() int

	// Realizations returns the number of realizations
	// of a case.
	Realizations(c int) int

	// Draw draws a single realization of a case.
	Draw(c, r int)
}

// Status is the state of a job.
type Status int

// Valid job states.
const (
	Idle Status = iota
	Running
	Done
	Stopped
)

var statusNames = map[Status]string{
	Idle:    "idle",
	Running: "running",
	Done:    "done",
	Stopped: "stopped",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// A Job is a progressive render in execution.
type Job struct {
	sched *Scheduler
	work  Work
	done  func()

	caseIndex   int
	realization int
	cancelled   bool

	timer  Timer
	status Status
	ticks  int
}

// Status returns the current status of the job.
func (j *Job) Status() Status {
	return j.status
}

// Ticks returns the number of ticks
// executed by the job.
func (j *Job) Ticks() int {
	return j.ticks
}

// Position returns the next case and realization
// to be drawn.
func (j *Job) Position() (c, r int) {
	return j.caseIndex, j.realization
}

// advance moves the job to the next case
// with realizations to draw.
// It returns false if there is no more work.
func (j *Job) advance() bool {
	for j.caseIndex < j.work.Cases() {
		if j.realization < j.work.Realizations(j.caseIndex) {
			return true
		}
		j.caseIndex++
		j.realization = 0
	}
	return false
}

func (j *Job) tick() {
	j.timer = nil
	if j.cancelled {
		j.status = Stopped
		return
	}

	s := j.sched
	j.ticks++
	start := s.Host.Now()
	drawn := 0
	for j.advance() {
		j.work.Draw(j.caseIndex, j.realization)
		j.realization++
		drawn++

		// a draw call can start a new job
		if j.cancelled {
			j.status = Stopped
			return
		}
		if !j.advance() {
			break
		}
		if s.Host.Now().Sub(start) >= s.Budget {
			if s.Tick != nil {
				s.Tick(j, drawn, s.Host.Now().Sub(start))
			}
			j.timer = s.Host.AfterFunc(s.Delay, j.tick)
			return
		}
	}

	if s.Tick != nil {
		s.Tick(j, drawn, s.Host.Now().Sub(start))
	}
	j.status = Done
	if j.done != nil {
		j.done()
	}
}

// stop cancels the job.
// If the pending continuation can not be removed,
// the job is stopped
// when the continuation runs.
func (j *Job) stop() {
	if j.status != Running {
		return
	}
	j.cancelled = true
	if j.timer == nil {
		// stopped inside a draw call
		return
	}
	if j.timer.Stop() {
		j.timer = nil
		j.status = Stopped
	}
}

// A Scheduler runs progressive render jobs,
// one at a time.
type Scheduler struct {
	Host Host

	// Budget is the maximum time of a tick.
	Budget time.Duration

	// Delay is the time between ticks.
	Delay time.Duration

	// If defined,
	// Tick is called at the end of each tick
	// with the number of realizations drawn
	// and the duration of the tick.
	Tick func(j *Job, drawn int, elapsed time.Duration)

	current *Job
}

// NewScheduler returns a scheduler
// with the default budget and delay.
func NewScheduler(h Host) *Scheduler {
	return &Scheduler{
		Host:   h,
		Budget: DefaultBudget,
		Delay:  DefaultDelay,
	}
}

// Start starts a new job,
// stopping any job in progress.
// The first tick is executed immediately.
// When the last realization is drawn,
// done is called.
// An empty workload calls done immediately.
func (s *Scheduler) Start(w Work, done func()) *Job {
	s.Stop()

	j := &Job{
		sched:  s,
		work:   w,
		done:   done,
		status: Running,
	}
	s.current = j
	j.tick()
	return j
}

// Stop stops the job in progress,
// if any.
func (s *Scheduler) Stop() {
	if s.current == nil {
		return
	}
	s.current.stop()
	s.current = nil
}

// Current returns the last started job,
// or nil if it was stopped.
func (s *Scheduler) Current() *Job {
	return s.current
}
