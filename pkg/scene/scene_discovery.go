package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Short description
}

type builtin struct {
	info   SceneInfo
	create func(GeneratorConfig) *Scene
}

var builtins = map[string]builtin{
	"default": {
		info: SceneInfo{
			ID:          "default",
			Name:        "Orbiting Spheres",
			Description: "Randomly placed spheres; the second one orbits the first",
		},
		create: NewDefaultScene,
	},
	"single": {
		info: SceneInfo{
			ID:          "single",
			Name:        "Single Sphere",
			Description: "One sphere of radius 2 at the origin with one light",
		},
		create: func(GeneratorConfig) *Scene { return NewSingleSphereScene() },
	},
	"shadow": {
		info: SceneInfo{
			ID:          "shadow",
			Name:        "Shadow",
			Description: "A small sphere casting a shadow onto a large one",
		},
		create: func(GeneratorConfig) *Scene { return NewShadowScene() },
	},
	"empty": {
		info: SceneInfo{
			ID:          "empty",
			Name:        "Empty",
			Description: "No spheres; renders an all-background frame",
		},
		create: func(GeneratorConfig) *Scene { return NewScene() },
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create builds the named scene, using config for procedural scenes
func Create(id string, config GeneratorConfig) (*Scene, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", id)
	}
	s := b.create(config)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", id, err)
	}
	return s, nil
}
