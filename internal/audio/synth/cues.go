package synth

import (
	"time"

	"go-arena-survival/internal/event"
)

const ms = time.Millisecond

// Cues maps every sound event to its synthesized cue.
var Cues = map[event.EventType]Cue{
	event.SoundBounce: {
		{Wave: WaveSine, Freq: 220, EndFreq: 140, Duration: 60 * ms, Attack: 2 * ms, Release: 40 * ms, Volume: 0.3},
	},
	event.SoundBodyHit: {
		{Wave: WaveSquare, Freq: 150, EndFreq: 70, Duration: 120 * ms, Attack: 2 * ms, Release: 80 * ms, Volume: 0.35},
		{Wave: WaveNoise, Duration: 60 * ms, Attack: 1 * ms, Release: 50 * ms, Volume: 0.2},
	},
	event.SoundHeadHit: {
		{Wave: WaveSaw, Freq: 520, EndFreq: 260, Duration: 90 * ms, Attack: 1 * ms, Release: 60 * ms, Volume: 0.3},
		{Wave: WaveNoise, Duration: 40 * ms, Attack: 1 * ms, Release: 30 * ms, Volume: 0.25},
	},
	event.SoundDeath: {
		{Wave: WaveSaw, Freq: 330, EndFreq: 55, Duration: 900 * ms, Attack: 10 * ms, Release: 600 * ms, Volume: 0.4},
		{Wave: WaveSine, Freq: 165, EndFreq: 40, Duration: 900 * ms, Attack: 10 * ms, Release: 600 * ms, Volume: 0.4},
	},
	event.SoundExplosion: {
		{Wave: WaveNoise, Duration: 450 * ms, Attack: 2 * ms, Release: 400 * ms, Volume: 0.5},
		{Wave: WaveSine, Freq: 90, EndFreq: 30, Duration: 400 * ms, Attack: 2 * ms, Release: 300 * ms, Volume: 0.5},
	},
}
