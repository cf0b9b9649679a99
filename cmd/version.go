package cmd

import (
	"github.com/markusressel/safc/cmd/global"
	"github.com/markusressel/safc/internal/ui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of safc",
	Long:  `All software has versions. This is safc's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln(global.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
