package defs

import (
	"go-arena-survival/internal/component"
)

// group builds a wave group from library IDs. Unknown IDs are a bug in
// the compiled-in patterns.
func group(radius float64, ids ...string) component.WaveGroup {
	enemies := make([]component.EnemyInfo, 0, len(ids))
	for _, id := range ids {
		info, err := Enemy(id)
		if err != nil {
			panic(err)
		}
		enemies = append(enemies, info)
	}
	return component.WaveGroup{SpawnGroup: component.SpawnGroup{Radius: radius, Enemies: enemies}}
}

func repeat(id string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = id
	}
	return ids
}

// DefaultWaves returns the compiled-in wave pattern. With the default
// tuning the scheduler loops over waves IV to VI once VI is cleared.
func DefaultWaves() []component.Wave {
	return []component.Wave{
		{Name: "I", Groups: []component.WaveGroup{
			group(4, repeat(EnemyCrawler, 3)...),
		}},
		{Name: "II", Groups: []component.WaveGroup{
			group(4, repeat(EnemyCrawler, 3)...),
			group(4, repeat(EnemyCrawler, 3)...),
		}},
		{Name: "III", Groups: []component.WaveGroup{
			group(5, EnemyCrawler, EnemyCrawler, EnemyCrawler, EnemyShooter),
			group(3, EnemyShooter),
		}},
		{Name: "IV", Groups: []component.WaveGroup{
			group(5, repeat(EnemyCrawler, 4)...),
			group(4, EnemyBomber, EnemyBomber),
			group(3, EnemyShooter, EnemyShooter),
		}},
		{Name: "V", Groups: []component.WaveGroup{
			group(6, EnemyBrute, EnemyCrawler, EnemyCrawler),
			group(6, EnemyBrute, EnemyShooter, EnemyShooter),
			group(4, EnemyBomber, EnemyBomber, EnemyBomber),
		}},
		{Name: "VI", Groups: []component.WaveGroup{
			group(5, EnemyMedic, EnemyBrute, EnemyBrute),
			group(5, repeat(EnemyCrawler, 5)...),
			group(5, EnemyShooter, EnemyShooter, EnemyBomber, EnemyBomber),
		}},
	}
}
