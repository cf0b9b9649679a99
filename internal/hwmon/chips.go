package hwmon

import (
	"fmt"
	"path/filepath"

	"github.com/md14454/gosensors"
)

// libsensors bus types
const (
	BusTypeI2c     = 0
	BusTypeIsa     = 1
	BusTypePci     = 2
	BusTypeVirtual = 4
	BusTypeAcpi    = 5
)

// GetChipIdentifiers returns the libsensors identifier (f.ex. "amdgpu-pci-0300")
// of all detected chips, keyed by the name of their hwmon entry (f.ex. "hwmon3").
func GetChipIdentifiers() map[string]string {
	gosensors.Init()
	defer gosensors.Cleanup()

	result := map[string]string{}
	for _, chip := range gosensors.GetDetectedChips() {
		if len(chip.Path) <= 0 {
			continue
		}
		result[filepath.Base(chip.Path)] = computeIdentifier(chip)
	}
	return result
}

func computeIdentifier(chip gosensors.Chip) string {
	name := chip.Prefix
	if len(name) <= 0 {
		name = filepath.Base(chip.Path)
	}

	switch chip.Bus.Type {
	case BusTypeI2c:
		return fmt.Sprintf("%s-i2c-%d-%02x", name, chip.Bus.Nr, chip.Addr)
	case BusTypeIsa:
		return fmt.Sprintf("%s-isa-%04x", name, chip.Addr)
	case BusTypePci:
		return fmt.Sprintf("%s-pci-%04x", name, chip.Addr)
	case BusTypeVirtual:
		return fmt.Sprintf("%s-virtual-%x", name, chip.Addr)
	case BusTypeAcpi:
		return fmt.Sprintf("%s-acpi-%x", name, chip.Addr)
	default:
		return name
	}
}
