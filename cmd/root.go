package cmd

import (
	"fmt"
	"os"

	"github.com/markusressel/safc/cmd/config"
	"github.com/markusressel/safc/cmd/fan"
	"github.com/markusressel/safc/cmd/global"
	"github.com/markusressel/safc/cmd/sensor"
	"github.com/markusressel/safc/internal"
	"github.com/markusressel/safc/internal/configuration"
	"github.com/markusressel/safc/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "safc",
	Short: "A daemon to control the fan of a graphics card.",
	Long: `safc is a simple daemon that controls the fan
of an (AMD) graphics card based on its temperature sensor,
using a step curve configured in /etc/default/safc.`,
	Args: cobra.NoArgs,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		printHeader()

		configPath, err := configuration.DetectAndLoadConfig()
		if err != nil {
			ui.Error("Config Error: %v", err)
			os.Exit(1)
		}
		ui.Info("Using configuration file at: %s", configPath)

		err = internal.RunDaemon()
		if err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is /etc/default/safc)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(sensor.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("sa", pterm.NewStyle(pterm.FgLightRed)),
		pterm.NewLettersFromStringWithStyle("fc", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("safc")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		setupUi()
		if err := configuration.InitConfig(global.CfgFile); err != nil {
			ui.Fatal("%v", err)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
