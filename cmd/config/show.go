package config

import (
	"fmt"

	"github.com/markusressel/safc/internal/configuration"
	"github.com/markusressel/safc/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective configuration, including defaults and environment overrides",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := configuration.ReadConfigFile()
		if err != nil {
			return err
		}
		if err = configuration.LoadConfig(); err != nil {
			return err
		}
		ui.Debug("Using configuration file at: %s", configPath)

		if err = configuration.Validate(); err != nil {
			ui.Warning("Configuration is invalid: %v", err)
		}

		text, err := configuration.ToYaml(configuration.CurrentConfig)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	Command.AddCommand(showCmd)
}
