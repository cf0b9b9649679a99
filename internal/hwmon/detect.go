package hwmon

import (
	"path/filepath"
	"regexp"

	"github.com/markusressel/safc/internal/util"
)

var cardNamePattern = regexp.MustCompile(`^card\d+$`)

// Card is a DRM device together with its hwmon entries
type Card struct {
	Name string
	Path string
	// Modalias identifies the vendor and model of the card
	Modalias string
	Entries  []Entry
}

// Entry is a single hwmon entry of a card
type Entry struct {
	Name string
	Path string
	// Driver is the content of the "name" file, f.ex. "amdgpu"
	Driver string
	// Controllable indicates that all files required for fan control exist
	Controllable bool
}

// ListCards lists all cards below drmClassPath that have a hwmon directory.
// Connectors like "card0-DP-1" are ignored.
func ListCards(drmClassPath string) ([]Card, error) {
	names, err := listEntries(drmClassPath)
	if err != nil {
		return nil, err
	}

	var cards []Card
	for _, name := range names {
		if !cardNamePattern.MatchString(name) {
			continue
		}

		basePath := hwmonBasePath(drmClassPath, name)
		entryNames, err := listEntries(basePath)
		if err != nil {
			continue
		}

		cardPath := filepath.Join(drmClassPath, name)
		card := Card{
			Name:     name,
			Path:     cardPath,
			Modalias: util.GetDeviceModalias(cardPath),
		}
		for _, entryName := range entryNames {
			entryPath := filepath.Join(basePath, entryName)
			_, handleErr := NewHandle(entryPath)
			card.Entries = append(card.Entries, Entry{
				Name:         entryName,
				Path:         entryPath,
				Driver:       util.GetDeviceName(entryPath),
				Controllable: handleErr == nil,
			})
		}
		cards = append(cards, card)
	}

	return cards, nil
}
