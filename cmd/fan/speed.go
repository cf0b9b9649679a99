package fan

import (
	"fmt"
	"strconv"

	"github.com/markusressel/safc/internal/curves"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Get/Set the current speed setting of the fan to the given PWM value ([0..255])",
	Long:  `Setting a value only has an effect if the fan is in manual mode, see 'safc fan mode'.`,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle, err := getHandle()
		if err != nil {
			return err
		}
		pterm.DisableOutput()

		if len(args) > 0 {
			pwmValue, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			if pwmValue < curves.MinPwmValue || pwmValue > curves.MaxPwmValue {
				return fmt.Errorf("pwm value must be in [%d..%d], but is %d", curves.MinPwmValue, curves.MaxPwmValue, pwmValue)
			}
			return handle.WritePwm(pwmValue)
		}

		pwm, err := handle.ReadPwm()
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", pwm)
		return nil
	},
}

func init() {
	Command.AddCommand(speedCmd)
}
