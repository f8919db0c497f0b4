// Package audio synthesizes the game's sound effects procedurally and
// plays them through the system speaker.
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/kampala-krane/internal/core"
)

// Effect identifies one of the game's sound effects.
type Effect int

const (
	EffectNone Effect = iota
	EffectFlap
	EffectScore
	EffectCrash
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectFlap:
		return "flap"
	case EffectScore:
		return "score"
	case EffectCrash:
		return "crash"
	default:
		return "none"
	}
}

// EffectFor maps a simulation event to the effect a frontend should play.
func EffectFor(ev core.Event) Effect {
	switch ev {
	case core.EventStart, core.EventFlap, core.EventRestart:
		return EffectFlap
	case core.EventScore:
		return EffectScore
	case core.EventCrash:
		return EffectCrash
	default:
		return EffectNone
	}
}

// Duration returns how long an effect lasts.
func Duration(e Effect) time.Duration {
	switch e {
	case EffectFlap:
		return 90 * time.Millisecond
	case EffectScore:
		return 160 * time.Millisecond
	case EffectCrash:
		return 350 * time.Millisecond
	default:
		return 0
	}
}

// Streamer returns a finite streamer for the effect at the given rate.
// EffectNone yields nil.
func Streamer(e Effect, sr beep.SampleRate) beep.Streamer {
	n := sr.N(Duration(e))
	switch e {
	case EffectFlap:
		return beep.Take(n, &chirpGenerator{sr: sr, from: 320, to: 640, total: n})
	case EffectScore:
		return beep.Take(n, &chimeGenerator{sr: sr, total: n})
	case EffectCrash:
		return beep.Take(n, &crashGenerator{sr: sr, seed: 0x2545f491})
	default:
		return nil
	}
}

// RenderPCM renders an effect as signed 16-bit little-endian stereo PCM,
// the layout ebiten's audio player consumes.
func RenderPCM(e Effect, sampleRate int) []byte {
	s := Streamer(e, beep.SampleRate(sampleRate))
	if s == nil {
		return nil
	}

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = core.ClampF(v, -1, 1)
	return int16(v * math.MaxInt16)
}

// chirpGenerator sweeps a sine linearly from one pitch to another.
type chirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func (g *chirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := float64(g.pos) / float64(max(g.total, 1))
		freq := g.from + (g.to-g.from)*p

		// fade out over the whole sweep
		sample := 0.25 * (1 - p) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *chirpGenerator) Err() error {
	return nil
}

// chimeGenerator plays two short rising notes.
type chimeGenerator struct {
	sr    beep.SampleRate
	total int
	pos   int
}

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := max(g.total/2, 1)
	for i := range samples {
		freq := 880.0
		local := g.pos
		if g.pos >= half {
			freq = 1320.0
			local = g.pos - half
		}
		t := float64(local) / float64(g.sr)
		env := math.Exp(-t * 18)
		sample := 0.2 * env * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error {
	return nil
}

// crashGenerator mixes decaying noise with a low rumble.
type crashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func (g *crashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := env * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *crashGenerator) Err() error {
	return nil
}
