package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"snowfall/pkg/core"
)

// SampleRate is the output rate used for the wind bed.
const SampleRate = beep.SampleRate(44100)

var _ beep.Streamer = (*Wind)(nil)

// Player owns the speaker and the wind streamer playing through it.
type Player struct {
	wind   *Wind
	volume *effects.Volume
}

// Play initializes the speaker and starts the wind bed. level is in the
// effects.Volume base-2 scale, 0 being unchanged.
func Play(level float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	wind := NewWind(int(SampleRate), core.Seed(time.Now().UnixNano()))
	vol := &effects.Volume{Streamer: wind, Base: 2, Volume: level}
	speaker.Play(vol)
	return &Player{wind: wind, volume: vol}, nil
}

// SetActivity forwards the motion level of the last frame to the wind.
func (p *Player) SetActivity(a float64) {
	if p == nil {
		return
	}
	p.wind.SetActivity(a)
}

// SetMuted silences the output without stopping the stream.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	speaker.Lock()
	p.volume.Silent = muted
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}
