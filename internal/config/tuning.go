package config

import (
	"errors"
	"fmt"

	"go-arena-survival/pkg/utils"
)

// Tuning collects every gameplay constant of the simulation. One value is
// handed to the model at construction; nothing reads package-level tuning.
type Tuning struct {
	Arena     ArenaTuning    `yaml:"arena"`
	Player    PlayerTuning   `yaml:"player"`
	Physics   PhysicsTuning  `yaml:"physics"`
	Combat    CombatTuning   `yaml:"combat"`
	Particles ParticleTuning `yaml:"particles"`
	Waves     WaveTuning     `yaml:"waves"`
}

// ArenaTuning is the playable rectangle in world units.
type ArenaTuning struct {
	Min utils.Vec2 `yaml:"min"`
	Max utils.Vec2 `yaml:"max"`
}

type PlayerTuning struct {
	Speed            float64 `yaml:"speed"`
	HeadSpeed        float64 `yaml:"headSpeed"`
	BodyAcceleration float64 `yaml:"bodyAcceleration"`
	HeadAcceleration float64 `yaml:"headAcceleration"`
	BodyMass         float64 `yaml:"bodyMass"`
	HeadMass         float64 `yaml:"headMass"`
	BodyRadius       float64 `yaml:"bodyRadius"`
	HeadRadius       float64 `yaml:"headRadius"`
	ChainLength      float64 `yaml:"chainLength"`
	MaxHealth        float64 `yaml:"maxHealth"`
	// HeadSwingAngle is the angle (radians) at which the head swings at full speed.
	HeadSwingAngle float64 `yaml:"headSwingAngle"`
}

type PhysicsTuning struct {
	Drag       float64 `yaml:"drag"`
	Bounciness float64 `yaml:"bounciness"`
}

type CombatTuning struct {
	// BodyHitSpeed is the fixed impulse given to an enemy touching the body.
	BodyHitSpeed float64 `yaml:"bodyHitSpeed"`
	// BodyImpact is the fixed impulse the body receives in return.
	BodyImpact           float64 `yaml:"bodyImpact"`
	PlayerHitIntensity   float64 `yaml:"playerHitIntensity"`
	CorpseLifetime       float64 `yaml:"corpseLifetime"`
	CorpseAlpha          float32 `yaml:"corpseAlpha"`
	ExplosionImpact      float64 `yaml:"explosionImpact"`
	ExplosionIntensity   float64 `yaml:"explosionIntensity"`
	ProjectileSpawnSpace float64 `yaml:"projectileSpawnSpace"`
}

type ParticleTuning struct {
	Lifetime float64 `yaml:"lifetime"`
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
	MaxCount int     `yaml:"maxCount"`
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	Alpha    float32 `yaml:"alpha"`
}

type WaveTuning struct {
	SpawnerTime float64 `yaml:"spawnerTime"`
	// RepeatFrom is the zero-based wave index the scheduler cycles back to
	// once every configured wave has been played.
	RepeatFrom int `yaml:"repeatFrom"`
}

// DefaultTuning returns the compiled-in tuning.
func DefaultTuning() *Tuning {
	return &Tuning{
		Arena: ArenaTuning{
			Min: utils.V(-80, -45),
			Max: utils.V(80, 45),
		},
		Player: PlayerTuning{
			Speed:            40,
			HeadSpeed:        70,
			BodyAcceleration: 5,
			HeadAcceleration: 10,
			BodyMass:         1,
			HeadMass:         2,
			BodyRadius:       2.5,
			HeadRadius:       1.5,
			ChainLength:      10,
			MaxHealth:        100,
			HeadSwingAngle:   0.2,
		},
		Physics: PhysicsTuning{
			Drag:       2,
			Bounciness: 0.5,
		},
		Combat: CombatTuning{
			BodyHitSpeed:         20,
			BodyImpact:           10,
			PlayerHitIntensity:   5,
			CorpseLifetime:       1,
			CorpseAlpha:          0.5,
			ExplosionImpact:      30,
			ExplosionIntensity:   200,
			ProjectileSpawnSpace: 0.5,
		},
		Particles: ParticleTuning{
			Lifetime: 0.5,
			MinSpeed: 10,
			MaxSpeed: 30,
			MaxCount: 50,
			Radius:   0.4,
			Mass:     1,
			Alpha:    0.5,
		},
		Waves: WaveTuning{
			SpawnerTime: 2,
			RepeatFrom:  3,
		},
	}
}

// Validate checks the tuning for values the simulation cannot run with.
func (t *Tuning) Validate() error {
	var errs []error
	if t.Arena.Min.X >= t.Arena.Max.X || t.Arena.Min.Y >= t.Arena.Max.Y {
		errs = append(errs, fmt.Errorf("arena bounds invalid: min%v must be below max%v", t.Arena.Min, t.Arena.Max))
	}
	if t.Physics.Bounciness < 0 || t.Physics.Bounciness > 1 {
		errs = append(errs, fmt.Errorf("bounciness must be in range 0..=1, received: %v", t.Physics.Bounciness))
	}
	if t.Physics.Drag < 0 {
		errs = append(errs, fmt.Errorf("drag must not be negative, received: %v", t.Physics.Drag))
	}
	if t.Player.BodyRadius <= 0 || t.Player.HeadRadius <= 0 || t.Particles.Radius <= 0 {
		errs = append(errs, errors.New("collider radii must be positive"))
	}
	if t.Player.BodyMass <= 0 || t.Player.HeadMass <= 0 || t.Particles.Mass <= 0 {
		errs = append(errs, errors.New("masses must be positive"))
	}
	if t.Player.HeadSwingAngle <= 0 {
		errs = append(errs, fmt.Errorf("head swing angle must be positive, received: %v", t.Player.HeadSwingAngle))
	}
	if t.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player max health must be positive, received: %v", t.Player.MaxHealth))
	}
	if t.Particles.MinSpeed > t.Particles.MaxSpeed {
		errs = append(errs, fmt.Errorf("particle speed range invalid: min(%.1f) > max(%.1f)", t.Particles.MinSpeed, t.Particles.MaxSpeed))
	}
	if t.Particles.MaxCount < 1 {
		errs = append(errs, fmt.Errorf("particle max count must be at least 1, received: %d", t.Particles.MaxCount))
	}
	if t.Waves.RepeatFrom < 0 {
		errs = append(errs, fmt.Errorf("repeatFrom must not be negative, received: %d", t.Waves.RepeatFrom))
	}
	return errors.Join(errs...)
}
