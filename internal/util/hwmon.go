package util

import (
	"os"
	"path/filepath"
	"strings"
)

// GetDeviceName reads the name of a hwmon entry, f.ex. "amdgpu"
func GetDeviceName(devicePath string) string {
	content, _ := os.ReadFile(filepath.Join(devicePath, "name"))
	return strings.TrimSpace(string(content))
}

// GetDeviceModalias reads the modalias of a device, f.ex. "pci:v00001002d0000731Fsv..."
func GetDeviceModalias(devicePath string) string {
	content, _ := os.ReadFile(filepath.Join(devicePath, "device", "modalias"))
	return strings.TrimSpace(string(content))
}
