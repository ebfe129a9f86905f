package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/Faultbox/cubedrop/internal/anim"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueLanded Cue = iota
	CueRolled
)

func (c Cue) String() string {
	switch c {
	case CueLanded:
		return "landed"
	case CueRolled:
		return "rolled"
	default:
		return "unknown"
	}
}

// CueFor returns the cue played for an animation event.
func CueFor(ev anim.Event) (Cue, bool) {
	switch ev {
	case anim.EventLanded:
		return CueLanded, true
	case anim.EventRollCompleted:
		return CueRolled, true
	default:
		return 0, false
	}
}

// tone is a decaying sine wave.
type tone struct {
	freq     float64       // Hz
	duration time.Duration // total length
	decay    float64       // exponential decay rate, 1/s
	gain     float64       // peak amplitude
}

var cueTones = map[Cue]tone{
	CueLanded: {freq: 110, duration: 250 * time.Millisecond, decay: 14, gain: 0.8},
	CueRolled: {freq: 440, duration: 60 * time.Millisecond, decay: 45, gain: 0.4},
}

// streamer returns a beep.Streamer that plays the tone once at sample rate sr.
func (t tone) streamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(t.duration)
	pos := 0
	step := 2 * math.Pi * t.freq / float64(sr)
	dt := 1 / float64(sr)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			amp := t.gain * math.Exp(-t.decay*float64(pos)*dt)
			v := amp * math.Sin(step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
