package component

import "go-arena-survival/pkg/utils"

// SpawnGroup is a batch of enemies appearing together inside Radius.
type SpawnGroup struct {
	Radius  float64
	Enemies []EnemyInfo
}

// Spawner turns into its SpawnGroup once TimeLeft runs out.
type Spawner struct {
	Position    utils.Vec2
	SpawnGroup  SpawnGroup
	TimeLeft    float64
	TimeLeftMax float64
}

// Progress is the remaining fraction of the countdown, 1 when just placed.
func (s *Spawner) Progress() float64 {
	if s.TimeLeftMax <= 0 {
		return 0
	}
	return utils.Clamp(s.TimeLeft/s.TimeLeftMax, 0, 1)
}
