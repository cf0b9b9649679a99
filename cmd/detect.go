package cmd

import (
	"bytes"
	"strconv"

	"github.com/markusressel/safc/cmd/global"
	"github.com/markusressel/safc/internal/configuration"
	"github.com/markusressel/safc/internal/hwmon"
	"github.com/markusressel/safc/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long:  `Detects all graphics cards with hwmon entries and prints them as a list`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// the configuration is optional here, it is only used to highlight the configured card
		if _, err := configuration.ReadConfigFile(); err == nil {
			if err = configuration.LoadConfig(); err != nil {
				ui.Warning("Ignoring configuration: %v", err)
			}
		}

		cards, err := hwmon.ListCards(hwmon.DrmClassPath)
		if err != nil {
			ui.Fatal("Error detecting devices: %v", err)
		}
		if len(cards) <= 0 {
			ui.Warning("No cards with hwmon entries found in %s", hwmon.DrmClassPath)
			return
		}

		identifiers := hwmon.GetChipIdentifiers()

		for _, card := range cards {
			title := card.Name
			if card.Name == configuration.CurrentConfig.Card {
				title += " (configured)"
			}
			if len(card.Modalias) > 0 {
				title += " [" + card.Modalias + "]"
			}
			ui.Printfln("> %s", title)

			var rows [][]string
			for _, entry := range card.Entries {
				rows = append(rows, createEntryRow(entry, identifiers[entry.Name]))
			}

			tab := table.Table{
				Headers: []string{"Entry", "Driver", "Chip", "Temp", "PWM", "Mode", "Controllable"},
				Rows:    rows,
			}
			var buf bytes.Buffer
			tableErr := tab.WriteTable(&buf, global.TableConfig())
			if tableErr != nil {
				ui.Fatal("Error printing table: %v", tableErr)
			}
			ui.Printfln(buf.String())
		}
	},
}

func createEntryRow(entry hwmon.Entry, identifier string) []string {
	tempText := "N/A"
	pwmText := "N/A"
	modeText := "N/A"

	handle, err := hwmon.NewHandle(entry.Path)
	if err == nil {
		if temp, err := handle.ReadTemperature(); err == nil {
			tempText = strconv.FormatFloat(temp, 'f', 1, 64) + "°C"
		}
		if pwm, err := handle.ReadPwm(); err == nil {
			pwmText = strconv.Itoa(pwm)
		}
		if mode, err := handle.ReadControlMode(); err == nil {
			modeText = mode.String()
		}
	}

	if len(identifier) <= 0 {
		identifier = "N/A"
	}

	return []string{
		entry.Name, entry.Driver, identifier, tempText, pwmText, modeText, strconv.FormatBool(entry.Controllable),
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
