package fan

import (
	"github.com/markusressel/safc/cmd/global"
	"github.com/markusressel/safc/internal/hwmon"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             `Inspect or change the fan of the configured card directly.`,
	TraverseChildren: true,
}

func getHandle() (*hwmon.Handle, error) {
	global.LoadConfig()
	return global.ResolveHandle()
}
