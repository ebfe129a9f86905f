package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/Faultbox/cubedrop/internal/anim"
)

func TestVolumeToExponent(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
		{0.0, -100},
	}

	for _, tt := range tests {
		if got := volumeToExponent(tt.vol); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("volumeToExponent(%f) = %f, want %f", tt.vol, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}

	if m.GetMasterVolume() != 1.0 {
		t.Errorf("default master volume = %f, want 1.0", m.GetMasterVolume())
	}
	if m.GetSFXVolume() != 1.0 {
		t.Errorf("default SFX volume = %f, want 1.0", m.GetSFXVolume())
	}
	if m.Muted() {
		t.Error("manager should start unmuted")
	}
	if m.IsInitialized() {
		t.Error("manager should start uninitialized")
	}
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetMasterVolume(0.5)
	if m.GetMasterVolume() != 0.5 {
		t.Errorf("master volume = %f, want 0.5", m.GetMasterVolume())
	}

	m.SetMasterVolume(2.0)
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", m.GetMasterVolume())
	}

	m.SetSFXVolume(-1.0)
	if m.GetSFXVolume() != 0.0 {
		t.Errorf("sfx volume = %f, want 0.0 (clamped)", m.GetSFXVolume())
	}
}

func TestEffectiveVolume(t *testing.T) {
	m := New()
	m.SetMasterVolume(0.5)
	m.SetSFXVolume(0.5)
	if got := m.effectiveVolume(); got != 0.25 {
		t.Errorf("effective volume = %f, want 0.25", got)
	}

	m.SetMuted(true)
	if got := m.effectiveVolume(); got != 0 {
		t.Errorf("muted effective volume = %f, want 0", got)
	}
}

func TestPlayBeforeInit(t *testing.T) {
	m := New()
	if err := m.Play(CueLanded); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Play before Init = %v, want ErrNotInitialized", err)
	}
}

func TestToneStreamerLengthAndDecay(t *testing.T) {
	for cue, tn := range cueTones {
		t.Run(cue.String(), func(t *testing.T) {
			sr := DefaultSampleRate
			s := tn.streamer(sr)

			want := sr.N(tn.duration)
			buf := make([][2]float64, 512)
			total := 0
			var firstPeak, lastPeak float64
			for {
				n, ok := s.Stream(buf)
				for i := 0; i < n; i++ {
					if buf[i][0] != buf[i][1] {
						t.Fatal("channels differ")
					}
					a := math.Abs(buf[i][0])
					if a > tn.gain+1e-9 {
						t.Fatalf("sample %v exceeds gain %v", a, tn.gain)
					}
					if total+i < want/4 && a > firstPeak {
						firstPeak = a
					}
					if total+i >= want*3/4 && a > lastPeak {
						lastPeak = a
					}
				}
				total += n
				if !ok {
					break
				}
			}

			if total != want {
				t.Errorf("streamed %d samples, want %d", total, want)
			}
			if lastPeak >= firstPeak {
				t.Errorf("tone does not decay: first peak %v, last peak %v", firstPeak, lastPeak)
			}
		})
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		ev     anim.Event
		want   Cue
		wantOK bool
	}{
		{anim.EventLanded, CueLanded, true},
		{anim.EventRollCompleted, CueRolled, true},
		{anim.EventNone, 0, false},
	}

	for _, tt := range tests {
		got, ok := CueFor(tt.ev)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("CueFor(%v) = %v, %v; want %v, %v", tt.ev, got, ok, tt.want, tt.wantOK)
		}
	}
}
