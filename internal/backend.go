package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/markusressel/safc/internal/configuration"
	"github.com/markusressel/safc/internal/controller"
	"github.com/markusressel/safc/internal/hwmon"
	"github.com/markusressel/safc/internal/ui"
	"github.com/markusressel/safc/internal/util"
	"github.com/oklog/run"
)

// RunDaemon controls the fan of the configured card until a termination signal is received.
// Errors are only returned for failures before the control loop has been started.
func RunDaemon() error {
	if !util.IsRoot() {
		return errors.New("fan control requires root permissions to be able to modify fan speeds, please run safc as root")
	}

	fanController, err := NewFanController(hwmon.DrmClassPath, configuration.CurrentConfig)
	if err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	err = runGroup(fanController, sig)
	if err != nil {
		return err
	}
	ui.Info("Done.")
	return nil
}

// NewFanController resolves the hwmon entry of the configured card and creates
// a controller for it. No hardware is written to.
func NewFanController(drmClassPath string, config configuration.Configuration) (controller.FanController, error) {
	handle, err := hwmon.ResolveCard(drmClassPath, config.Card, config.HwMon)
	if err != nil {
		return nil, fmt.Errorf("unable to find hardware of %s, run 'safc detect' and check your configuration: %w", config.Card, err)
	}
	ui.Info("Using hwmon entry %s", handle.Path)

	return controller.NewFanController(handle, config.FanCurve, config.TempHysteresis, config.AdjustInterval), nil
}

func runGroup(fanController controller.FanController, sig chan os.Signal) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		// === fan controller
		g.Add(func() error {
			done := make(chan error, 1)
			go func() {
				done <- fanController.Run(ctx)
			}()
			// a cycle that is still blocked on the hardware is abandoned,
			// automatic mode has already been restored by the signal actor
			select {
			case err := <-done:
				ui.Info("Fan controller stopped.")
				return err
			case <-ctx.Done():
				return nil
			}
		}, func(err error) {
			if err != nil {
				ui.Warning("Something went wrong: %v", err)
			}
			cancel()
		})
	}
	{
		// === signal handling
		g.Add(func() error {
			select {
			case s := <-sig:
				// a second signal terminates the process immediately
				signal.Stop(sig)
				ui.Info("Received %s signal, exiting...", s)
				fanController.Shutdown()
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			cancel()
		})
	}

	return g.Run()
}
