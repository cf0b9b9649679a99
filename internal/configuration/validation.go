package configuration

import (
	"errors"
	"fmt"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if len(config.Card) <= 0 {
		return errors.New("card: must not be empty")
	}
	if config.FanCurve.IsEmpty() {
		return errors.New("fan_curve: must contain at least one entry")
	}
	if config.TempHysteresis < 0 {
		return fmt.Errorf("temp_hysteresis: must be >= 0, but is %v", config.TempHysteresis)
	}
	if config.AdjustInterval <= 0 {
		return fmt.Errorf("adjust_interval: must be > 0, but is %v", config.AdjustInterval)
	}
	return nil
}
