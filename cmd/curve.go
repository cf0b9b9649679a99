package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/safc/cmd/global"
	"github.com/markusressel/safc/internal/configuration"
	"github.com/markusressel/safc/internal/curves"
	"github.com/markusressel/safc/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the configured fan curve to console",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		global.LoadConfig()
		curve := configuration.CurrentConfig.FanCurve

		ui.Printfln(curve.String())

		var rows [][]string
		for _, point := range curve.Points() {
			percent := float64(point.Pwm) / curves.MaxPwmValue * 100
			rows = append(rows, []string{
				fmt.Sprintf(">= %d°C", point.Temp),
				strconv.Itoa(point.Pwm),
				fmt.Sprintf("%.0f%%", percent),
			})
		}
		tab := table.Table{
			Headers: []string{"Temperature", "PWM", "Speed"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, global.TableConfig())
		if tableErr != nil {
			ui.Fatal("Error printing table: %v", tableErr)
		}
		ui.Printfln(buf.String())

		values := sampleCurve(curve)
		caption := fmt.Sprintf("PWM / °C (%d..%d)", plotStart(curve), plotEnd(curve))
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Caption(caption))
		ui.Printfln(graph)
	},
}

// maxPlotSamples limits the width of the plot, independent of the temperature range of the curve
const maxPlotSamples = 200

// sampleCurve evaluates the curve between plotStart and plotEnd,
// using a step of one degree or more so that at most maxPlotSamples values are returned.
func sampleCurve(curve curves.FanCurve) []float64 {
	start := plotStart(curve)
	end := plotEnd(curve)
	step := 1
	if end-start >= maxPlotSamples {
		step = (end-start)/(maxPlotSamples-1) + 1
	}

	values := make([]float64, 0, (end-start)/step+1)
	for temp := start; temp <= end; temp += step {
		values = append(values, float64(curve.Lookup(float64(temp))))
	}
	return values
}

func plotStart(curve curves.FanCurve) int {
	points := curve.Points()
	return min(0, points[0].Temp)
}

func plotEnd(curve curves.FanCurve) int {
	points := curve.Points()
	return points[len(points)-1].Temp + 10
}

func init() {
	rootCmd.AddCommand(curveCmd)
}
