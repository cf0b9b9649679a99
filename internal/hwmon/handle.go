package hwmon

import (
	"os"
	"path/filepath"

	"github.com/markusressel/safc/internal/util"
)

const (
	// DrmClassPath is the sysfs directory containing all DRM (graphics) devices
	DrmClassPath = "/sys/class/drm"

	TempInputFile = "temp1_input"
	PwmFile       = "pwm1"
	PwmEnableFile = "pwm1_enable"
)

// Handle gives access to the temperature input, pwm output and pwm control mode
// of a single hwmon entry.
type Handle struct {
	Path      string
	TempInput string
	PwmOutput string
	PwmEnable string
}

// ResolveCard locates the hwmon entry of the given card (e.g. "card0") below drmClassPath
// and creates a Handle for it.
// If entry is empty, the first listed hwmon entry is used.
func ResolveCard(drmClassPath string, card string, entry string) (*Handle, error) {
	hwmonPath, err := FindHwmonPath(drmClassPath, card, entry)
	if err != nil {
		return nil, err
	}
	return NewHandle(hwmonPath)
}

// FindHwmonPath returns the path of the hwmon entry of the given card
func FindHwmonPath(drmClassPath string, card string, entry string) (string, error) {
	basePath := hwmonBasePath(drmClassPath, card)
	info, err := os.Stat(basePath)
	if err != nil || !info.IsDir() {
		return "", &NotFoundError{Path: basePath, Reason: "hwmon directory for card " + card + " not found"}
	}

	if len(entry) > 0 {
		entryPath := filepath.Join(basePath, entry)
		if _, err := os.Stat(entryPath); err != nil {
			return "", &NotFoundError{Path: entryPath, Reason: "hwmon entry " + entry + " for card " + card + " not found"}
		}
		return entryPath, nil
	}

	entries, err := listEntries(basePath)
	if err != nil || len(entries) <= 0 {
		return "", &NotFoundError{Path: basePath, Reason: "hwmon entries for card " + card + " not found"}
	}
	return filepath.Join(basePath, entries[0]), nil
}

// NewHandle creates a Handle for the given hwmon entry path,
// all required files have to exist.
func NewHandle(hwmonPath string) (*Handle, error) {
	handle := &Handle{
		Path:      hwmonPath,
		TempInput: filepath.Join(hwmonPath, TempInputFile),
		PwmOutput: filepath.Join(hwmonPath, PwmFile),
		PwmEnable: filepath.Join(hwmonPath, PwmEnableFile),
	}

	for _, file := range []string{handle.TempInput, handle.PwmOutput, handle.PwmEnable} {
		if !util.FileExists(file) {
			return nil, &NotFoundError{Path: file, Reason: "hwmon file in hwmon path " + hwmonPath + " not found"}
		}
	}

	return handle, nil
}

// ReadTemperature returns the current temperature in °C
func (h *Handle) ReadTemperature() (float64, error) {
	milliDegrees, err := util.ReadIntFromFile(h.TempInput)
	if err != nil {
		return 0, &IoError{Op: "read", Path: h.TempInput, Err: err}
	}
	return float64(milliDegrees) / 1000, nil
}

// ReadPwm returns the current pwm value
func (h *Handle) ReadPwm() (int, error) {
	value, err := util.ReadIntFromFile(h.PwmOutput)
	if err != nil {
		return 0, &IoError{Op: "read", Path: h.PwmOutput, Err: err}
	}
	return value, nil
}

// WritePwm sets the pwm value. This only has an effect in ControlModeManual.
func (h *Handle) WritePwm(value int) error {
	err := util.WriteIntToFile(value, h.PwmOutput)
	if err != nil {
		return &IoError{Op: "write", Path: h.PwmOutput, Err: err}
	}
	return nil
}

func (h *Handle) ReadControlMode() (ControlMode, error) {
	value, err := util.ReadIntFromFile(h.PwmEnable)
	if err != nil {
		return 0, &IoError{Op: "read", Path: h.PwmEnable, Err: err}
	}
	return ControlMode(value), nil
}

// SetControlMode writes the given value to pwm1_enable
func (h *Handle) SetControlMode(mode ControlMode) error {
	err := util.WriteIntToFile(int(mode), h.PwmEnable)
	if err != nil {
		return &IoError{Op: "write", Path: h.PwmEnable, Err: err}
	}
	return nil
}

func hwmonBasePath(drmClassPath string, card string) string {
	return filepath.Join(drmClassPath, card, "device", "hwmon")
}

// listEntries returns the names of all entries in the given directory, in listing order
func listEntries(path string) ([]string, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		result = append(result, dirEntry.Name())
	}
	return result, nil
}
