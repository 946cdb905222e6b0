// Package synth generates the game's sound cues procedurally.
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator sweeps linearly from freq to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite tone. endFreq equal to freq gives a
// steady pitch.
func NewOscillator(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero mutes it.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Voice is one shaped oscillator of a cue.
type Voice struct {
	Wave     WaveType
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Volume   float64
}

// Streamer builds the shaped voice at the given sample rate.
func (v Voice) Streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(v.Freq, v.EndFreq, v.Duration, v.Wave, rate)
	shaped := NewEnvelope(osc, v.Duration, v.Attack, v.Release, rate)
	return newVolume(shaped, v.Volume)
}

// Cue is a set of voices played together.
type Cue []Voice

// Streamer mixes all voices of the cue, scaled by master.
func (c Cue) Streamer(rate beep.SampleRate, master float64) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(c))
	for _, v := range c {
		streamers = append(streamers, v.Streamer(rate))
	}
	return newVolume(beep.Mix(streamers...), master)
}

// Duration is the length of the longest voice.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, v := range c {
		if v.Duration > d {
			d = v.Duration
		}
	}
	return d
}

// Render streams a cue into 16-bit little-endian stereo PCM.
func (c Cue) Render(rate beep.SampleRate, master float64) []byte {
	return Render(c.Streamer(rate, master), rate.N(c.Duration()))
}

// Render drains at most maxSamples from s into 16-bit little-endian
// stereo PCM, clipping to [-1, 1].
func Render(s beep.Streamer, maxSamples int) []byte {
	out := make([]byte, 0, maxSamples*4)
	buf := make([][2]float64, 512)
	for remaining := maxSamples; remaining > 0; {
		chunk := buf
		if remaining < len(chunk) {
			chunk = chunk[:remaining]
		}
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := int16(math.Max(-1, math.Min(1, chunk[i][ch])) * math.MaxInt16)
				out = append(out, byte(v), byte(uint16(v)>>8))
			}
		}
		remaining -= n
		if !ok || n == 0 {
			break
		}
	}
	return out
}
