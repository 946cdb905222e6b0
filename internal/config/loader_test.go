package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Tuning)
	}{
		{
			name: "partial file keeps defaults",
			yamlContent: `
player:
  speed: 55
physics:
  bounciness: 0.9
`,
			validate: func(t *testing.T, cfg *Tuning) {
				assert.Equal(t, 55.0, cfg.Player.Speed)
				assert.Equal(t, 0.9, cfg.Physics.Bounciness)
				assert.Equal(t, DefaultTuning().Player.HeadSpeed, cfg.Player.HeadSpeed)
				assert.Equal(t, DefaultTuning().Arena, cfg.Arena)
			},
		},
		{
			name: "arena bounds",
			yamlContent: `
arena:
  min: {x: -10, y: -5}
  max: {x: 10, y: 5}
`,
			validate: func(t *testing.T, cfg *Tuning) {
				assert.Equal(t, -10.0, cfg.Arena.Min.X)
				assert.Equal(t, 5.0, cfg.Arena.Max.Y)
			},
		},
		{
			name:        "bounciness out of range",
			yamlContent: "physics:\n  bounciness: 1.5\n",
			wantErr:     true,
			errContains: "bounciness must be in range",
		},
		{
			name:        "inverted arena",
			yamlContent: "arena:\n  min: {x: 10, y: 0}\n  max: {x: -10, y: 5}\n",
			wantErr:     true,
			errContains: "arena bounds invalid",
		},
		{
			name:        "zero radius",
			yamlContent: "player:\n  bodyRadius: 0\n",
			wantErr:     true,
			errContains: "radii must be positive",
		},
		{
			name:        "zero head swing angle",
			yamlContent: "player:\n  headSwingAngle: 0\n",
			wantErr:     true,
			errContains: "head swing angle must be positive",
		},
		{
			name:        "malformed yaml",
			yamlContent: "player: [",
			wantErr:     true,
			errContains: "failed to parse tuning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseTuning([]byte(tt.yamlContent))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadTuningFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("waves:\n  spawnerTime: 3.5\n"), 0o644))

	cfg, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.Waves.SpawnerTime)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read tuning file")
}

func TestBundledTuningFileMatchesDefaults(t *testing.T) {
	cfg, err := LoadTuning(filepath.Join("..", "..", "assets", "tuning.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), cfg)
}
