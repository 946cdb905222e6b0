package component

import "go-arena-survival/pkg/utils"

// Attack is a timed combat behavior. AttackTime counts down to zero and is
// refilled after every shot.
type Attack struct {
	AttackTime Health
	Type       AttackType
}

// NewAttack returns an attack that first fires after cooldown seconds.
func NewAttack(cooldown float64, attackType AttackType) Attack {
	return Attack{AttackTime: NewHealth(cooldown), Type: attackType}
}

func (a Attack) Clone() Attack {
	if a.Type != nil {
		a.Type = a.Type.Clone()
	}
	return a
}

// AttackType is either *Shoot or *Bomb.
type AttackType interface {
	isAttackType()
	Clone() AttackType
}

// Shoot fires Projectile towards TargetPos at Speed.
type Shoot struct {
	TargetPos  utils.Vec2
	Projectile EnemyInfo
	Speed      float64
}

// Bomb blows the attacker up, hurting the player inside Radius.
// Leaves, when set, is dropped as an area effect at the blast point.
type Bomb struct {
	Radius float64
	Damage float64
	Leaves *AreaEffectInfo
}

func (*Shoot) isAttackType() {}
func (*Bomb) isAttackType()  {}

func (s *Shoot) Clone() AttackType {
	cp := *s
	cp.Projectile = s.Projectile.Clone()
	return &cp
}

func (b *Bomb) Clone() AttackType {
	cp := *b
	if b.Leaves != nil {
		leaves := *b.Leaves
		cp.Leaves = &leaves
	}
	return &cp
}
