package hwmon

import (
	"fmt"
	"strconv"
	"strings"
)

// ControlMode is the value of a pwmX_enable file
type ControlMode int

const (
	// ControlModeDisabled completely disables control, resulting in a 100% PWM signal output
	ControlModeDisabled ControlMode = 0
	// ControlModeManual enables manual, fixed speed control via setting the pwm value
	ControlModeManual ControlMode = 1
	// ControlModeAutomatic gives control back to the driver/firmware
	ControlModeAutomatic ControlMode = 2
)

func (m ControlMode) String() string {
	switch m {
	case ControlModeDisabled:
		return "disabled"
	case ControlModeManual:
		return "manual"
	case ControlModeAutomatic:
		return "automatic"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ParseControlMode accepts the numeric value of a control mode, or one of its names
func ParseControlMode(input string) (ControlMode, error) {
	text := strings.ToLower(strings.TrimSpace(input))
	if value, err := strconv.Atoi(text); err == nil {
		mode := ControlMode(value)
		switch mode {
		case ControlModeDisabled, ControlModeManual, ControlModeAutomatic:
			return mode, nil
		}
		return 0, fmt.Errorf("unknown mode: %d, must be one of 0, 1, 2", value)
	}

	switch text {
	case "disabled":
		return ControlModeDisabled, nil
	case "manual", "pwm":
		return ControlModeManual, nil
	case "auto", "automatic":
		return ControlModeAutomatic, nil
	}
	return 0, fmt.Errorf("unknown mode: %s, must be one of: 'auto', 'manual', 'disabled'", input)
}
