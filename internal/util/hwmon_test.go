package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDeviceName(t *testing.T) {
	// GIVEN
	devicePath := t.TempDir()
	_ = os.WriteFile(filepath.Join(devicePath, "name"), []byte("amdgpu\n"), 0644)

	// WHEN
	result := GetDeviceName(devicePath)

	// THEN
	assert.Equal(t, "amdgpu", result)
}

func TestGetDeviceName_Missing(t *testing.T) {
	// WHEN
	result := GetDeviceName(t.TempDir())

	// THEN
	assert.Equal(t, "", result)
}

func TestGetDeviceModalias(t *testing.T) {
	// GIVEN
	devicePath := t.TempDir()
	_ = os.MkdirAll(filepath.Join(devicePath, "device"), 0755)
	_ = os.WriteFile(filepath.Join(devicePath, "device", "modalias"), []byte("pci:v00001002d0000731F\n"), 0644)

	// WHEN
	result := GetDeviceModalias(devicePath)

	// THEN
	assert.Equal(t, "pci:v00001002d0000731F", result)
}
