package portal

import "fmt"

// Stepper numbers the progress steps of one run.
type Stepper struct {
	count  int
	report Reporter
}

// NewStepper creates a stepper starting at step 1.
func NewStepper(report Reporter) *Stepper {
	return &Stepper{report: report}
}

// Next reports message as the next step.
func (s *Stepper) Next(message string) {
	s.count++
	s.report.Step(fmt.Sprintf("STEP %d - %s", s.count, message))
}

// Count returns the number of steps taken so far.
func (s *Stepper) Count() int {
	return s.count
}
