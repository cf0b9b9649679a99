package config

import (
	"os"

	"github.com/markusressel/safc/internal/configuration"
	"github.com/markusressel/safc/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// note: config file path parameter comes from the root command (-c)
		configPath, err := configuration.DetectAndLoadConfig()
		if len(configPath) > 0 {
			ui.Info("Using configuration file at: %s", configPath)
		}
		if err != nil {
			ui.Error("Validation failed: %v", err)
			os.Exit(1)
		}

		ui.Success("Config looks good! :)")
		return nil
	},
}

func init() {
	Command.AddCommand(validateCmd)
}
