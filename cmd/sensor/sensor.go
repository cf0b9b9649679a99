package sensor

import (
	"errors"
	"time"

	"github.com/markusressel/safc/cmd/global"
	"github.com/markusressel/safc/internal/ui"
	"github.com/markusressel/safc/internal/util"
	"github.com/spf13/cobra"
)

var (
	samples  int
	interval time.Duration
)

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Sample the temperature sensor of the configured card",
	Long: `Reads the temperature input of the configured card a number of times
and prints the current value as well as the avg/min/max of all samples.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if samples <= 0 {
			return errors.New("samples must be > 0")
		}

		global.LoadConfig()
		handle, err := global.ResolveHandle()
		if err != nil {
			return err
		}

		window := util.CreateRollingWindow(samples)
		for i := 0; i < samples; i++ {
			if i > 0 {
				time.Sleep(interval)
			}
			temp, err := handle.ReadTemperature()
			if err != nil {
				return err
			}
			window.Append(temp)
			ui.Printfln("%6.1f°C", temp)
		}

		ui.Printfln("avg: %.1f°C, min: %.1f°C, max: %.1f°C",
			util.GetWindowAvg(window), util.GetWindowMin(window), util.GetWindowMax(window))
		return nil
	},
}

func init() {
	Command.Flags().IntVarP(&samples, "samples", "n", 1, "Number of samples to take")
	Command.Flags().DurationVarP(&interval, "interval", "i", time.Second, "Time between two samples")
}
