package controller

import (
	"context"
	"sync"
	"time"

	"github.com/markusressel/safc/internal/curves"
	"github.com/markusressel/safc/internal/hwmon"
	"github.com/markusressel/safc/internal/ui"
	"github.com/markusressel/safc/internal/util"
)

// PwmDampingThreshold is the largest pwm change that is not written to the hardware
const PwmDampingThreshold = 2

// Hardware is the part of a hwmon.Handle used by the controller
type Hardware interface {
	ReadTemperature() (float64, error)
	WritePwm(value int) error
	SetControlMode(mode hwmon.ControlMode) error
}

type FanController interface {
	// Run executes control cycles until ctx is cancelled or Shutdown is called
	Run(ctx context.Context) error
	// Cycle executes a single control cycle
	Cycle()
	// Shutdown hands fan control back to the driver. Only the first call has an effect.
	Shutdown()
	State() State
}

type fanController struct {
	hardware       Hardware
	curve          curves.FanCurve
	hysteresis     float64
	adjustInterval time.Duration

	// guards hardware writes, stopped and state
	mu           sync.Mutex
	stopped      bool
	state        State
	shutdownOnce sync.Once
}

func NewFanController(hardware Hardware, curve curves.FanCurve, hysteresis float64, adjustInterval time.Duration) FanController {
	return &fanController{
		hardware:       hardware,
		curve:          curve,
		hysteresis:     hysteresis,
		adjustInterval: adjustInterval,
	}
}

func (f *fanController) Run(ctx context.Context) error {
	defer f.Shutdown()

	ui.Info("Starting controller loop (curve: %s, hysteresis: %v°C, interval: %v)",
		f.curve.String(), f.hysteresis, f.adjustInterval)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if f.isStopped() {
			return nil
		}

		f.Cycle()

		timer := time.NewTimer(f.adjustInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func (f *fanController) Cycle() {
	defer func() {
		if r := recover(); r != nil {
			ui.Error("Unexpected error in control cycle: %v", r)
		}
	}()

	ok, err := f.whileRunning(func() error {
		return f.hardware.SetControlMode(hwmon.ControlModeManual)
	})
	if !ok {
		return
	}
	if err != nil {
		ui.Warning("Could not enable manual fan control, trying to continue anyway: %v", err)
	}

	temp, err := f.hardware.ReadTemperature()
	if err != nil {
		ui.Error("Cannot read temperature: %v", err)
		return
	}

	state := f.State()
	decision := Evaluate(state, temp, f.curve, f.hysteresis)
	if !decision.Reevaluate {
		ui.Debug("Temperature %.1f°C is within hysteresis of %.1f°C", temp, *state.LastAdjustedTemp)
		return
	}
	if !decision.Apply {
		ui.Debug("Target PWM %d is too close to current PWM %d", decision.Target, *state.LastAdjustedPwm)
		return
	}

	ok, err = f.whileRunning(func() error {
		err := f.hardware.WritePwm(decision.Target)
		if err == nil {
			f.state = f.state.Adjusted(temp, decision.Target)
		}
		return err
	})
	if !ok {
		return
	}
	if err != nil {
		ui.Error("Cannot set PWM to %d: %v", decision.Target, err)
		return
	}
	ui.Info("Temperature %.1f°C, PWM set to %d", temp, decision.Target)
}

func (f *fanController) Shutdown() {
	f.shutdownOnce.Do(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.stopped = true

		ui.Info("Restoring automatic fan control...")
		err := f.hardware.SetControlMode(hwmon.ControlModeAutomatic)
		if err != nil {
			ui.Error("Unable to restore automatic fan control, make sure the fan is running: %v", err)
			return
		}
		ui.Success("Automatic fan control restored")
	})
}

func (f *fanController) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fanController) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// whileRunning executes fn unless the controller has been shut down.
// Returns false if fn was not executed.
func (f *fanController) whileRunning(fn func() error) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return false, nil
	}
	return true, fn()
}

// Evaluate decides whether the curve is evaluated for the given temperature
// and whether the resulting target pwm is written to the hardware.
func Evaluate(state State, temp float64, curve curves.FanCurve, hysteresis float64) Decision {
	if state.LastAdjustedTemp != nil && util.AbsDiff(temp, *state.LastAdjustedTemp) < hysteresis {
		return Decision{}
	}

	target := curve.Lookup(temp)
	apply := state.LastAdjustedPwm == nil || util.AbsDiff(target, *state.LastAdjustedPwm) > PwmDampingThreshold
	return Decision{
		Reevaluate: true,
		Target:     target,
		Apply:      apply,
	}
}
