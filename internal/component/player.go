// internal/component/player.go
package component

import "go-arena-survival/pkg/utils"

// Player is a body dragging a head on a chain. It lives outside the entity
// list.
type Player struct {
	Body               RigidBody
	Head               RigidBody
	HeadTarget         utils.Vec2
	TargetHeadVelocity utils.Vec2
	TargetBodyVelocity utils.Vec2
	ChainLength        float64
	Health             Health
}

// NewPlayer places body at its own position and the head one chain length
// to its right.
func NewPlayer(body, head RigidBody, chainLength, maxHealth float64) *Player {
	head.Position = body.Position.Add(utils.V(chainLength, 0))
	return &Player{
		Body:        body,
		Head:        head,
		HeadTarget:  head.Position,
		ChainLength: chainLength,
		Health:      NewHealth(maxHealth),
	}
}

func (p *Player) IsAlive() bool {
	return p.Health.IsAlive()
}
