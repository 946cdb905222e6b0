package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-survival/internal/component"
	"go-arena-survival/pkg/utils"
)

func TestEnemyReturnsIndependentClone(t *testing.T) {
	a, err := Enemy(EnemyShooter)
	require.NoError(t, err)
	b, err := Enemy(EnemyShooter)
	require.NoError(t, err)

	a.Type.(*component.Attacker).Attack.AttackTime.Kill()

	assert.True(t, b.Type.(*component.Attacker).Attack.AttackTime.IsAlive())
	assert.True(t, EnemyLibrary[EnemyShooter].Type.(*component.Attacker).Attack.AttackTime.IsAlive())
}

func TestEnemyUnknownID(t *testing.T) {
	_, err := Enemy("dragon")
	assert.ErrorContains(t, err, `unknown enemy "dragon"`)
}

func TestLibraryIsConsistent(t *testing.T) {
	for _, id := range EnemyIDs() {
		info := EnemyLibrary[id]
		assert.Equal(t, id, info.Name)
		assert.Positive(t, info.Health, id)
		assert.Positive(t, info.Mass, id)
		assert.Positive(t, info.Size, id)
		assert.NotNil(t, info.Type, id)
		if attacker, ok := info.Type.(*component.Attacker); ok {
			if shoot, ok := attacker.Attack.Type.(*component.Shoot); ok {
				assert.GreaterOrEqual(t, shoot.Projectile.MovementSpeed, shoot.Speed,
					"%s projectiles must not be slowed by drag", id)
			}
		}
	}
}

func TestDefaultWaves(t *testing.T) {
	waves := DefaultWaves()
	require.NotEmpty(t, waves)
	for _, w := range waves {
		assert.NotEmpty(t, w.Groups, w.Name)
		for _, g := range w.Groups {
			assert.NotEmpty(t, g.Enemies, w.Name)
		}
	}
}

func TestParseWaves(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, []component.Wave)
	}{
		{
			name: "valid file",
			yamlContent: `
waves:
  - name: opener
    groups:
      - radius: 3
        enemies: [crawler, crawler]
      - radius: 2
        spawnTime: 4
        position: {x: 10, y: -5}
        enemies: [shooter]
  - name: second
    groups:
      - radius: 1
        enemies: [bomber]
`,
			validate: func(t *testing.T, waves []component.Wave) {
				require.Len(t, waves, 2)
				assert.Equal(t, "opener", waves[0].Name)
				require.Len(t, waves[0].Groups, 2)
				assert.Len(t, waves[0].Groups[0].Enemies, 2)
				assert.Nil(t, waves[0].Groups[0].Position)
				assert.Equal(t, utils.V(10, -5), *waves[0].Groups[1].Position)
				assert.Equal(t, 4.0, waves[0].Groups[1].SpawnTime)
				assert.IsType(t, &component.Attacker{}, waves[1].Groups[0].Enemies[0].Type)
			},
		},
		{
			name:        "group without enemies",
			yamlContent: "waves:\n  - name: empty\n    groups:\n      - radius: 3\n        enemies: []\n",
			wantErr:     true,
			errContains: "no enemies",
		},
		{
			name:        "unknown enemy",
			yamlContent: "waves:\n  - groups:\n      - radius: 3\n        enemies: [dragon]\n",
			wantErr:     true,
			errContains: `wave #1 group 1: unknown enemy "dragon"`,
		},
		{
			name:        "negative radius",
			yamlContent: "waves:\n  - name: x\n    groups:\n      - radius: -1\n        enemies: [crawler]\n",
			wantErr:     true,
			errContains: "radius must not be negative",
		},
		{
			name:        "no waves",
			yamlContent: "waves: []\n",
			wantErr:     true,
			errContains: "no waves defined",
		},
		{
			name:        "malformed yaml",
			yamlContent: "waves: {",
			wantErr:     true,
			errContains: "failed to parse wave file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			waves, err := ParseWaves([]byte(tt.yamlContent))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, waves)
			}
		})
	}
}

func TestLoadWaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.yaml")
	require.NoError(t, os.WriteFile(path, []byte("waves:\n  - name: a\n    groups:\n      - radius: 2\n        enemies: [medic]\n"), 0o644))

	waves, err := LoadWaves(path)
	require.NoError(t, err)
	require.Len(t, waves, 1)
	assert.Equal(t, "a", waves[0].Name)

	_, err = LoadWaves(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read wave file")
}

func TestBundledWaveFile(t *testing.T) {
	waves, err := LoadWaves(filepath.Join("..", "..", "assets", "waves.yaml"))
	require.NoError(t, err)
	assert.Len(t, waves, 3)
}
