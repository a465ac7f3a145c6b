package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrUnknownLevel = errors.New("levels: unknown level")

// Order is the campaign sequence.
var Order = []string{"map1", "map2", "map3"}

// Level is a decoded map: its bounds, countdown and spawn records.
type Level struct {
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Timer    int      `json:"timer"`
	Entities []Entity `json:"entities,omitempty"`
}

// Entity is one spawn record. X/Y are the authored top-left corner except
// for player and zombie records, which mark the feet position.
type Entity struct {
	Type    string                 `json:"type"`
	Subtype string                 `json:"subtype,omitempty"`
	X       float64                `json:"x"`
	Y       float64                `json:"y"`
	W       float64                `json:"w,omitempty"`
	H       float64                `json:"h,omitempty"`
	Props   map[string]interface{} `json:"props,omitempty"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	clean := strings.TrimSuffix(name, ".json") + ".json"
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
		}
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return Decode(data)
}

// Decode parses a level document.
func Decode(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("levels: level %q has no bounds", lvl.Name)
	}
	return &lvl, nil
}

// Next returns the level after name, or false when name is the last one.
func Next(name string) (string, bool) {
	for i, n := range Order {
		if n == name && i+1 < len(Order) {
			return Order[i+1], true
		}
	}
	return "", false
}
