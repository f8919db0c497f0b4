package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/kampala-krane/internal/core"
)

func TestEffectFor(t *testing.T) {
	tests := []struct {
		ev   core.Event
		want Effect
	}{
		{core.EventStart, EffectFlap},
		{core.EventFlap, EffectFlap},
		{core.EventRestart, EffectFlap},
		{core.EventScore, EffectScore},
		{core.EventCrash, EffectCrash},
		{core.EventNone, EffectNone},
	}
	for _, tt := range tests {
		if got := EffectFor(tt.ev); got != tt.want {
			t.Errorf("EffectFor(%v) = %v, expected %v", tt.ev, got, tt.want)
		}
	}
}

func TestStreamerLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, e := range []Effect{EffectFlap, EffectScore, EffectCrash} {
		s := Streamer(e, sr)
		if s == nil {
			t.Fatalf("Streamer(%v) = nil", e)
		}

		total := 0
		buf := make([][2]float64, 256)
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("%v sample %d out of range: %f", e, total+i, buf[i][0])
				}
			}
			total += n
			if !ok {
				break
			}
		}

		if want := sr.N(Duration(e)); total != want {
			t.Errorf("%v streamed %d samples, expected %d", e, total, want)
		}
		if s.Err() != nil {
			t.Errorf("%v Err() = %v", e, s.Err())
		}
	}
}

func TestStreamerNone(t *testing.T) {
	if s := Streamer(EffectNone, 44100); s != nil {
		t.Error("Streamer(EffectNone) should be nil")
	}
	if b := RenderPCM(EffectNone, 44100); b != nil {
		t.Errorf("RenderPCM(EffectNone) = %d bytes, expected nil", len(b))
	}
}

func TestRenderPCMSize(t *testing.T) {
	const rate = 8000
	pcm := RenderPCM(EffectScore, rate)
	frames := beep.SampleRate(rate).N(Duration(EffectScore))
	if len(pcm) != frames*4 {
		t.Errorf("len(RenderPCM) = %d, expected %d", len(pcm), frames*4)
	}

	silent := true
	for _, b := range pcm {
		if b != 0 {
			silent = false
			break
		}
	}
	if silent {
		t.Error("RenderPCM produced silence")
	}
}

func TestRenderPCMDeterministic(t *testing.T) {
	a := RenderPCM(EffectCrash, 8000)
	b := RenderPCM(EffectCrash, 8000)
	if string(a) != string(b) {
		t.Error("crash effect should render identically every time")
	}
}

func TestSoundManagerSilentBeforeInit(t *testing.T) {
	sm := NewSoundManager()
	// must not panic or block
	sm.Play(EffectFlap)
	sm.Close()
}
