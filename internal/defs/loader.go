// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"go-arena-survival/internal/component"
	"go-arena-survival/pkg/utils"
)

// WaveFile is the YAML layout of a wave pattern file.
type WaveFile struct {
	Waves []WaveDefinition `yaml:"waves"`
}

// WaveDefinition describes one wave in a wave file.
type WaveDefinition struct {
	Name   string            `yaml:"name"`
	Groups []GroupDefinition `yaml:"groups"`
}

// GroupDefinition describes one spawner. Enemies are library IDs.
type GroupDefinition struct {
	Radius    float64     `yaml:"radius"`
	SpawnTime float64     `yaml:"spawnTime,omitempty"`
	Position  *utils.Vec2 `yaml:"position,omitempty"`
	Enemies   []string    `yaml:"enemies"`
}

// LoadWaves reads a YAML wave file.
func LoadWaves(path string) ([]component.Wave, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave file: %w", err)
	}

	waves, err := ParseWaves(data)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %d waves from %s", len(waves), path)
	return waves, nil
}

// ParseWaves decodes and validates a wave pattern.
func ParseWaves(data []byte) ([]component.Wave, error) {
	var file WaveFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse wave file: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wave file: %w", err)
	}

	waves := make([]component.Wave, 0, len(file.Waves))
	for _, def := range file.Waves {
		wave := component.Wave{Name: def.Name}
		for _, g := range def.Groups {
			group := component.WaveGroup{
				SpawnGroup: component.SpawnGroup{Radius: g.Radius},
				Position:   g.Position,
				SpawnTime:  g.SpawnTime,
			}
			for _, id := range g.Enemies {
				info, _ := Enemy(id)
				group.Enemies = append(group.Enemies, info)
			}
			wave.Groups = append(wave.Groups, group)
		}
		waves = append(waves, wave)
	}
	return waves, nil
}

// Validate reports every problem in the file at once.
func (f *WaveFile) Validate() error {
	if len(f.Waves) == 0 {
		return errors.New("no waves defined")
	}
	var errs []error
	for i, wave := range f.Waves {
		name := wave.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		if len(wave.Groups) == 0 {
			errs = append(errs, fmt.Errorf("wave %s: no groups", name))
		}
		for j, g := range wave.Groups {
			if len(g.Enemies) == 0 {
				errs = append(errs, fmt.Errorf("wave %s group %d: no enemies", name, j+1))
			}
			if g.Radius < 0 {
				errs = append(errs, fmt.Errorf("wave %s group %d: radius must not be negative, received: %v", name, j+1, g.Radius))
			}
			if g.SpawnTime < 0 {
				errs = append(errs, fmt.Errorf("wave %s group %d: spawn time must not be negative, received: %v", name, j+1, g.SpawnTime))
			}
			for _, id := range g.Enemies {
				if _, ok := EnemyLibrary[id]; !ok {
					errs = append(errs, fmt.Errorf("wave %s group %d: unknown enemy %q", name, j+1, id))
				}
			}
		}
	}
	return errors.Join(errs...)
}
