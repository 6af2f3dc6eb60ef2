package scheduler

type SchedulerBuilderOption func(*schedulerImpl)

// WithClock replaces time.Now as the scheduler's time source.
//
// Parameters:
//   - clock: the time source, ignored if nil
//
// Returns:
//   - SchedulerBuilderOption: a function that sets the clock
func WithClock(clock Clock) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		if clock != nil {
			s.clock = clock
		}
	}
}
