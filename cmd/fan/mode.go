package fan

import (
	"fmt"

	"github.com/markusressel/safc/internal/hwmon"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Get/Set the current pwm control mode of the fan",
	Long:  `Valid modes are 'auto' (2), 'manual' (1) and 'disabled' (0).`,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle, err := getHandle()
		if err != nil {
			return err
		}
		pterm.DisableOutput()

		if len(args) > 0 {
			mode, err := hwmon.ParseControlMode(args[0])
			if err != nil {
				return err
			}
			err = handle.SetControlMode(mode)
			if err != nil {
				return err
			}
		}

		mode, err := handle.ReadControlMode()
		if err != nil {
			return err
		}

		switch mode {
		case hwmon.ControlModeDisabled:
			fmt.Printf("No control, 100%% all the time (%d)\n", mode)
		case hwmon.ControlModeManual:
			fmt.Printf("Manual PWM control, gives safc control (%d)\n", mode)
		case hwmon.ControlModeAutomatic:
			fmt.Printf("Automatic control by the driver (%d)\n", mode)
		default:
			fmt.Printf("Unknown (%d)\n", mode)
		}
		return nil
	},
}

func init() {
	Command.AddCommand(modeCmd)
}
