// internal/event/types.go
package event

const (
	SoundBounce    EventType = "SoundBounce"    // something hit the arena wall
	SoundBodyHit   EventType = "SoundBodyHit"   // an enemy touched the player body
	SoundHeadHit   EventType = "SoundHeadHit"   // the player head smashed an enemy
	SoundDeath     EventType = "SoundDeath"     // the player just died
	SoundExplosion EventType = "SoundExplosion" // a bomber detonated
	WaveStarted    EventType = "WaveStarted"    // Data is the wave number
)

// SoundTypes lists every sound cue.
var SoundTypes = []EventType{SoundBounce, SoundBodyHit, SoundHeadHit, SoundDeath, SoundExplosion}

// IsSound reports whether t is a sound cue.
func (t EventType) IsSound() bool {
	for _, s := range SoundTypes {
		if s == t {
			return true
		}
	}
	return false
}
