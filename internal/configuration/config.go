package configuration

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/markusressel/safc/internal/curves"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// Section is the INI section all keys are read from
	Section = "safc"

	ConfigName = "safc"
	ConfigType = "ini"

	KeyCard           = "card"
	KeyFanCurve       = "fan_curve"
	KeyTempHysteresis = "temp_hysteresis"
	KeyAdjustInterval = "adjust_interval"
	KeyHwMon          = "hwmon"

	DefaultCard           = "card0"
	DefaultFanCurve       = "0:77,60:102"
	DefaultTempHysteresis = 3
	DefaultAdjustInterval = 5
)

type Configuration struct {
	// Card is the DRM device to control, f.ex. "card0"
	Card string `json:"card" mapstructure:"card"`
	// FanCurve maps temperatures to pwm values
	FanCurve curves.FanCurve `json:"fan_curve" mapstructure:"fan_curve"`
	// TempHysteresis is the temperature change (in °C) since the last adjustment
	// required to evaluate the curve again
	TempHysteresis float64 `json:"temp_hysteresis" mapstructure:"temp_hysteresis"`
	// AdjustInterval is the time between two control cycles
	AdjustInterval time.Duration `json:"adjust_interval" mapstructure:"adjust_interval"`
	// HwMon optionally selects a specific hwmon entry of the card, f.ex. "hwmon3".
	// If empty, the first entry is used.
	HwMon string `json:"hwmon" mapstructure:"hwmon"`
}

type configFile struct {
	Safc Configuration `mapstructure:"safc"`
}

var CurrentConfig Configuration

// InitConfig sets up viper to read the given config file, or to search
// the default locations if cfgFile is empty. Environment variables like
// SAFC_CARD take precedence over values from the file.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		if filepath.Ext(cfgFile) == "" {
			viper.SetConfigType(ConfigType)
		}
	} else {
		viper.SetConfigName(ConfigName)
		viper.SetConfigType(ConfigType)

		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("couldn't detect home directory: %w", err)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/default/")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
	return nil
}

func key(name string) string {
	return Section + "." + name
}

func setDefaultValues() {
	viper.SetDefault(key(KeyCard), DefaultCard)
	viper.SetDefault(key(KeyFanCurve), DefaultFanCurve)
	viper.SetDefault(key(KeyTempHysteresis), DefaultTempHysteresis)
	viper.SetDefault(key(KeyAdjustInterval), DefaultAdjustInterval)
	viper.SetDefault(key(KeyHwMon), "")
}

// ReadConfigFile reads the configuration file and returns its path.
// A missing configuration file is an error.
func ReadConfigFile() (string, error) {
	if err := viper.ReadInConfig(); err != nil {
		return "", fmt.Errorf("error reading config file: %w", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed(), nil
}

// LoadConfig decodes the current viper state into CurrentConfig
func LoadConfig() error {
	var file configFile
	err := viper.Unmarshal(&file, viper.DecodeHook(decodeHooks()))
	if err != nil {
		return fmt.Errorf("unable to decode configuration: %w", err)
	}
	CurrentConfig = file.Safc
	return nil
}

// DetectAndLoadConfig reads the configuration file, decodes and validates it
func DetectAndLoadConfig() (string, error) {
	path, err := ReadConfigFile()
	if err != nil {
		return "", err
	}
	if err = LoadConfig(); err != nil {
		return path, err
	}
	return path, Validate()
}
