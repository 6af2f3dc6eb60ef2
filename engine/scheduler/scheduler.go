package scheduler

import "time"

// DefaultRate is used when a scheduler is built with a non-positive rate.
const DefaultRate = 60.0

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Scheduler paces the frame loop at a fixed target rate.
// It never blocks; the caller waits until the returned deadline before ticking again.
type Scheduler interface {
	// Tick records now as the last update and reports when the next tick is due.
	// The deadline is the previous update plus one interval, so a late tick is not made up.
	//
	// Returns:
	//   - time.Time: previous update + interval
	//   - time.Duration: time elapsed since the previous tick
	Tick() (deadline time.Time, elapsed time.Duration)

	// Interval returns the fixed time between ticks.
	Interval() time.Duration

	// LastUpdate returns the time recorded by the latest Tick, Reset or construction.
	LastUpdate() time.Time

	// Reset records now as the last update without ticking, so time spent before the
	// loop starts is not reported as elapsed.
	Reset()
}

type schedulerImpl struct {
	interval   time.Duration
	lastUpdate time.Time
	clock      Clock
}

var _ Scheduler = &schedulerImpl{}

// NewScheduler creates a Scheduler ticking at targetRateHz.
//
// Parameters:
//   - targetRateHz: ticks per second, values <= 0 fall back to DefaultRate
//   - options: functional options to configure the scheduler
//
// Returns:
//   - Scheduler: the newly created scheduler
func NewScheduler(targetRateHz float64, options ...SchedulerBuilderOption) Scheduler {
	if !(targetRateHz > 0) {
		targetRateHz = DefaultRate
	}
	s := &schedulerImpl{
		interval: time.Duration(float64(time.Second) / targetRateHz),
		clock:    time.Now,
	}
	for _, option := range options {
		option(s)
	}
	if s.interval <= 0 {
		s.interval = time.Nanosecond
	}
	s.lastUpdate = s.clock()
	return s
}

func (s *schedulerImpl) Tick() (time.Time, time.Duration) {
	now := s.clock()
	if !now.After(s.lastUpdate) {
		// keep deadlines strictly increasing when the clock is coarse or stalls
		now = s.lastUpdate.Add(time.Nanosecond)
	}
	deadline := s.lastUpdate.Add(s.interval)
	elapsed := now.Sub(s.lastUpdate)
	s.lastUpdate = now
	return deadline, elapsed
}

func (s *schedulerImpl) Interval() time.Duration {
	return s.interval
}

func (s *schedulerImpl) LastUpdate() time.Time {
	return s.lastUpdate
}

func (s *schedulerImpl) Reset() {
	s.lastUpdate = s.clock()
}
