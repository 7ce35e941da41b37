package main

import "time"

// fixedStepper converts elapsed wall-clock time into a whole number of fixed
// simulation steps, carrying the remainder over to the next frame.
type fixedStepper struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

func newFixedStepper(step time.Duration, maxSteps int) *fixedStepper {
	return &fixedStepper{step: step, maxSteps: maxSteps}
}

// advance adds elapsed to the accumulator and returns how many steps to run
// now. At most maxSteps run per call; any further backlog stays in the
// accumulator and is worked off on later calls.
func (s *fixedStepper) advance(elapsed time.Duration) int {
	if elapsed > 0 {
		s.acc += elapsed
	}
	steps := 0
	for s.acc >= s.step {
		s.acc -= s.step
		steps++
		if s.maxSteps > 0 && steps >= s.maxSteps {
			break
		}
	}
	return steps
}

// pending reports how many whole steps are still owed.
func (s *fixedStepper) pending() int {
	return int(s.acc / s.step)
}

