package configuration

import (
	"testing"
	"time"

	"github.com/markusressel/safc/internal/curves"
	"github.com/stretchr/testify/assert"
)

func createValidConfig() Configuration {
	curve, _ := curves.ParseFanCurve(DefaultFanCurve)
	return Configuration{
		Card:           DefaultCard,
		FanCurve:       curve,
		TempHysteresis: DefaultTempHysteresis,
		AdjustInterval: DefaultAdjustInterval * time.Second,
	}
}

func TestValidateConfig(t *testing.T) {
	// GIVEN
	config := createValidConfig()

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateConfig_ZeroHysteresis(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.TempHysteresis = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateConfig_Invalid(t *testing.T) {
	var tests = []struct {
		tn      string
		modify  func(config *Configuration)
		wantErr string
	}{
		{
			tn:      "empty card",
			modify:  func(config *Configuration) { config.Card = "" },
			wantErr: "card: must not be empty",
		},
		{
			tn:      "empty curve",
			modify:  func(config *Configuration) { config.FanCurve = curves.FanCurve{} },
			wantErr: "fan_curve: must contain at least one entry",
		},
		{
			tn:      "negative hysteresis",
			modify:  func(config *Configuration) { config.TempHysteresis = -1 },
			wantErr: "temp_hysteresis: must be >= 0, but is -1",
		},
		{
			tn:      "zero interval",
			modify:  func(config *Configuration) { config.AdjustInterval = 0 },
			wantErr: "adjust_interval: must be > 0, but is 0s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.tn, func(t *testing.T) {
			// GIVEN
			config := createValidConfig()
			tt.modify(&config)

			// WHEN
			err := validateConfig(&config)

			// THEN
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
