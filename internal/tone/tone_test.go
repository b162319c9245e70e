package tone

import (
	"math"
	"testing"
	"time"
)

func TestFrequencyFor(t *testing.T) {
	tests := []struct {
		elevation float64
		want      float64
	}{
		{-1, MinFrequency},
		{1, MaxFrequency},
		{0, 440},
		{-4, MinFrequency},
		{9, MaxFrequency},
	}
	for _, tt := range tests {
		if got := FrequencyFor(tt.elevation); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FrequencyFor(%v) = %v, want %v", tt.elevation, got, tt.want)
		}
	}
}

func TestGeneratorLength(t *testing.T) {
	g := NewGenerator(SampleRate, 440, BlipLength)
	want := SampleRate.N(BlipLength)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := g.Stream(buf)
		if !ok {
			break
		}
		total += n
		if total > want {
			t.Fatalf("generator overran: %d > %d", total, want)
		}
	}
	if total != want {
		t.Errorf("generated %d samples, want %d", total, want)
	}
	if n, ok := g.Stream(buf); n != 0 || ok {
		t.Errorf("exhausted Stream() = (%d, %v), want (0, false)", n, ok)
	}
}

func TestGeneratorEnvelope(t *testing.T) {
	g := NewGenerator(SampleRate, 440, 50*time.Millisecond)
	buf := make([][2]float64, SampleRate.N(50*time.Millisecond))
	n, _ := g.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 (attack starts silent)", buf[0][0])
	}
	for i := 0; i < n; i++ {
		if math.Abs(buf[i][0]) > volume {
			t.Fatalf("sample %d = %v exceeds volume %v", i, buf[i][0], volume)
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d channels differ", i)
		}
	}
}

func TestPlayerWithoutInit(t *testing.T) {
	p := NewPlayer()
	p.Play(0.5)
	p.Close()
}
