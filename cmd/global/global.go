package global

import (
	"github.com/markusressel/safc/internal/configuration"
	"github.com/markusressel/safc/internal/hwmon"
	"github.com/markusressel/safc/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
)

// Version is set at build time using -ldflags "-X ..."
var Version = "dev"

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)

// LoadConfig reads, decodes and validates the configuration file.
// Exits the process on failure.
func LoadConfig() {
	configPath, err := configuration.DetectAndLoadConfig()
	if err != nil {
		ui.Fatal("Config Error: %v", err)
	}
	ui.Debug("Using configuration file at: %s", configPath)
}

// ResolveHandle locates the hwmon entry of the configured card
func ResolveHandle() (*hwmon.Handle, error) {
	config := configuration.CurrentConfig
	return hwmon.ResolveCard(hwmon.DrmClassPath, config.Card, config.HwMon)
}

func TableConfig() *table.Config {
	return &table.Config{
		ShowIndex:       false,
		Color:           !NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}
}
