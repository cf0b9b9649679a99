package controller

// State is the in-memory state of the control loop.
// A nil field means no pwm value has been written yet.
type State struct {
	LastAdjustedTemp *float64
	LastAdjustedPwm  *int
}

// Adjusted returns the state after pwm has been written at temperature temp
func (s State) Adjusted(temp float64, pwm int) State {
	return State{
		LastAdjustedTemp: &temp,
		LastAdjustedPwm:  &pwm,
	}
}

func (s State) IsUnset() bool {
	return s.LastAdjustedTemp == nil && s.LastAdjustedPwm == nil
}

// Decision is the result of evaluating a temperature reading against the State
type Decision struct {
	// Reevaluate is true if the curve has been evaluated
	Reevaluate bool
	// Target is the pwm value computed from the curve
	Target int
	// Apply is true if Target should be written to the hardware
	Apply bool
}
