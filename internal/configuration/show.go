package configuration

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type effectiveConfig struct {
	Card           string  `yaml:"card"`
	HwMon          string  `yaml:"hwmon"`
	FanCurve       string  `yaml:"fan_curve"`
	TempHysteresis float64 `yaml:"temp_hysteresis"`
	AdjustInterval string  `yaml:"adjust_interval"`
}

// ToYaml renders the given configuration (including defaults and overrides) as YAML
func ToYaml(config Configuration) (string, error) {
	data, err := yaml.Marshal(map[string]effectiveConfig{
		Section: {
			Card:           config.Card,
			HwMon:          config.HwMon,
			FanCurve:       config.FanCurve.String(),
			TempHysteresis: config.TempHysteresis,
			AdjustInterval: config.AdjustInterval.String(),
		},
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DefaultConfigFileContent returns a commented INI configuration containing all default values
func DefaultConfigFileContent() string {
	return fmt.Sprintf(`[%s]
# DRM card to control, see: ls /sys/class/drm
%s = %s

# hwmon entry below /sys/class/drm/<card>/device/hwmon, empty selects the first one
%s =

# temp1:pwm1,temp2:pwm2,... (°C:0..255), each pwm value is used from its temperature upwards
%s = %s

# temperature change (°C) required to evaluate the curve again
%s = %d

# seconds between two adjustments
%s = %d
`,
		Section,
		KeyCard, DefaultCard,
		KeyHwMon,
		KeyFanCurve, DefaultFanCurve,
		KeyTempHysteresis, DefaultTempHysteresis,
		KeyAdjustInterval, DefaultAdjustInterval,
	)
}
