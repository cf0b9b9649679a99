package config

import (
	"fmt"

	"github.com/markusressel/safc/internal/configuration"
	"github.com/markusressel/safc/internal/ui"
	"github.com/markusressel/safc/internal/util"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "/etc/default/safc"

var force bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Writes a configuration file containing the default values",
	Long:  `Writes a configuration file containing the default values to the given path (default is ` + defaultConfigPath + `).`,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath
		if len(args) > 0 {
			path = args[0]
		}

		if util.FileExists(path) && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite it", path)
		}

		err := util.WriteFileAtomic(path, configuration.DefaultConfigFileContent())
		if err != nil {
			return err
		}
		ui.Success("Configuration written to %s", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")
	Command.AddCommand(initCmd)
}
