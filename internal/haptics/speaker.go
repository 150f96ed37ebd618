package haptics

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	thudFreq   = 55.0 // Hz, felt more than heard
	thudVolume = 0.8
)

// Speaker plays a short low-frequency thud on the default audio device.
// When the device cannot be opened it stays silent and Vibrate reports
// ErrUnsupported.
type Speaker struct {
	mu    sync.Mutex
	ready bool
}

// NewSpeaker opens the audio device. Failure is logged, not returned.
func NewSpeaker(logger *log.Logger) *Speaker {
	s := &Speaker{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		if logger != nil {
			logger.Warn("audio device unavailable, haptics disabled", "error", err)
		}
		return s
	}
	s.ready = true
	return s
}

// Vibrate plays a thud lasting d.
func (s *Speaker) Vibrate(d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return ErrUnsupported
	}
	speaker.Play(Thud(sampleRate, d))
	return nil
}

// Close releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		speaker.Close()
		s.ready = false
	}
}

// Thud returns a decaying low sine lasting d.
func Thud(sr beep.SampleRate, d time.Duration) beep.Streamer {
	gen := &thudGenerator{sr: sr, total: sr.N(d)}
	return &effects.Volume{
		Streamer: beep.Take(gen.total, gen),
		Base:     2,
		Volume:   math.Log2(thudVolume),
	}
}

// thudGenerator produces a sine whose amplitude falls linearly to zero.
type thudGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
}

func (g *thudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		amp := 1 - float64(g.pos)/float64(g.total)
		v := amp * math.Sin(2*math.Pi*thudFreq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *thudGenerator) Err() error { return nil }
