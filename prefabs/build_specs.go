package prefabs

import "gopkg.in/yaml.v3"

// ColliderSpec is the authored box of an entity kind. Level records that
// carry their own size override it.
type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Anchor string  `yaml:"anchor"`
	Radius float64 `yaml:"radius"`
}

type SpriteSpec struct {
	Sheet string `yaml:"sheet"`
	Frame string `yaml:"frame"`
}

// EntityBuildSpec describes how one spawn type is assembled.
type EntityBuildSpec struct {
	Collider ColliderSpec `yaml:"collider"`
	Sprite   SpriteSpec   `yaml:"sprite"`
	Layer    int          `yaml:"layer"`
	Sounds   []string     `yaml:"sounds"`
}

const EntitiesFile = "entities.yaml"

// LoadEntityBuildSpecs reads the per-type entity table.
func LoadEntityBuildSpecs() (map[string]EntityBuildSpec, error) {
	return LoadSpec[map[string]EntityBuildSpec](EntitiesFile)
}

// DecodeComponentSpec re-decodes a loosely typed value (level props) into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}
