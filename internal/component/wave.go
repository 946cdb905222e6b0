package component

import "go-arena-survival/pkg/utils"

// WaveGroup is one spawner's worth of enemies. Position pins the spawner;
// nil means a random spot. SpawnTime of zero uses the tuning default.
type WaveGroup struct {
	SpawnGroup
	Position  *utils.Vec2
	SpawnTime float64
}

// Wave is an ordered list of groups released together.
type Wave struct {
	Name   string
	Groups []WaveGroup
}
