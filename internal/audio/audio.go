// internal/audio/audio.go
package audio

import (
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-arena-survival/internal/audio/synth"
	"go-arena-survival/internal/event"
)

const sampleRate = 48000

// SoundPlayer plays a synthesized cue for every sound event it receives.
type SoundPlayer struct {
	context *audio.Context
	cues    map[event.EventType][]byte
	volume  float64
}

// NewSoundPlayer renders every cue once up front. ebiten allows a single
// audio context per process, so an existing one is reused.
func NewSoundPlayer(volume float64) *SoundPlayer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	p := &SoundPlayer{
		context: ctx,
		cues:    make(map[event.EventType][]byte, len(synth.Cues)),
		volume:  volume,
	}
	rate := beep.SampleRate(ctx.SampleRate())
	for t, cue := range synth.Cues {
		p.cues[t] = cue.Render(rate, 1)
	}
	log.Printf("[SoundPlayer] %d cues ready at %d Hz", len(p.cues), ctx.SampleRate())
	return p
}

// OnEvent implements event.Listener.
func (p *SoundPlayer) OnEvent(e event.Event) {
	pcm, ok := p.cues[e.Type]
	if !ok || p.volume <= 0 {
		return
	}
	player := p.context.NewPlayerFromBytes(pcm)
	player.SetVolume(p.volume)
	player.Play()
}

func (p *SoundPlayer) SetVolume(volume float64) {
	p.volume = volume
}
