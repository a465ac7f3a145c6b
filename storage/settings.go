package storage

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shifty/ecs/system"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// Settings is the player's saved preferences. Keys maps a control name to
// an ebiten key name, e.g. "jump": "W".
type Settings struct {
	Keys         map[string]string `yaml:"keys,omitempty"`
	SoundEnabled bool              `yaml:"sound_enabled"`
	Muted        []string          `yaml:"muted,omitempty"`
	Volume       float64           `yaml:"volume"`
	GunUpgrade   bool              `yaml:"gun_upgrade"`
}

func DefaultSettings() *Settings {
	return &Settings{SoundEnabled: true, Volume: 1}
}

// SettingsStore loads and saves Settings. A nil manager keeps everything in
// memory.
type SettingsStore struct {
	manager  *gdata.Manager
	settings *Settings
}

func NewSettingsStore(m *gdata.Manager) *SettingsStore {
	s := &SettingsStore{manager: m, settings: DefaultSettings()}
	if err := s.Load(); err != nil {
		log.Warn("failed to load settings, using defaults", "error", err)
	}
	return s
}

// OpenSettings opens the platform data dir for appName.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: open settings: %w", err)
	}
	return NewSettingsStore(m), nil
}

func (s *SettingsStore) Load() error {
	s.settings = DefaultSettings()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("storage: load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("storage: unmarshal settings: %w", err)
	}
	if loaded.Volume < 0 || loaded.Volume > 1 {
		loaded.Volume = 1
	}
	s.settings = loaded
	return nil
}

func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("storage: marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("storage: save settings: %w", err)
	}
	return nil
}

// Settings returns the live preferences; edits take effect on Save.
func (s *SettingsStore) Settings() *Settings {
	return s.settings
}

func (s *SettingsStore) SoundEnabled(name string) bool {
	if !s.settings.SoundEnabled {
		return false
	}
	for _, m := range s.settings.Muted {
		if m == name {
			return false
		}
	}
	return true
}

func (s *SettingsStore) Volume() float64 {
	return s.settings.Volume
}

// Bindings overlays the saved key names on defaults. Unknown controls and
// key names are logged and ignored.
func (s *SettingsStore) Bindings(defaults system.KeyBindings) system.KeyBindings {
	b := defaults
	slots := map[string]*ebiten.Key{
		"left":     &b.Left,
		"right":    &b.Right,
		"jump":     &b.Jump,
		"slide":    &b.Slide,
		"shoot":    &b.Shoot,
		"interact": &b.Interact,
		"open":     &b.Open,
		"pause":    &b.Pause,
	}
	for control, name := range s.settings.Keys {
		slot, ok := slots[control]
		if !ok {
			log.Warn("unknown control in settings", "control", control)
			continue
		}
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			log.Warn("unknown key in settings", "control", control, "key", name)
			continue
		}
		*slot = key
	}
	return b
}
