package trajectory

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/vthrow/internal/kinematics"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name        string
		start, stop float64
		n           int
		want        []float64
	}{
		{"empty", 0, 1, 0, []float64{}},
		{"negative", 0, 1, -3, []float64{}},
		{"single", 2, 5, 1, []float64{2}},
		{"pair", 0, 4, 2, []float64{0, 4}},
		{"five", 0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"descending", 1, 0, 3, []float64{1, 0.5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linspace(tt.start, tt.stop, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSampleBoundedFlight(t *testing.T) {
	p := kinematics.Earth.Params(0, 19.6)
	tr, err := DefaultSampler().Sample(p)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	if !tr.Bounded {
		t.Error("expected bounded flight")
	}
	if tr.Len() != DefaultFrames {
		t.Errorf("expected %d points, got %d", DefaultFrames, tr.Len())
	}
	if math.Abs(tr.Duration-4.0) > 1e-9 {
		t.Errorf("duration = %v, want 4", tr.Duration)
	}

	first, last := tr.At(0), tr.At(tr.Len()-1)
	if first.T != 0 || first.Y != 0 || first.V != 19.6 {
		t.Errorf("unexpected first point %+v", first)
	}
	if math.Abs(last.Y) > 1e-9 {
		t.Errorf("expected landing at y=0, got %v", last.Y)
	}
	if math.Abs(tr.Peak()-19.6) > 0.05 {
		t.Errorf("peak = %v, want about 19.6", tr.Peak())
	}
}

func TestSampleUnboundedUsesFallback(t *testing.T) {
	p := kinematics.Params{Y0: 10, V0: 0, G: 0}
	s := Sampler{Frames: 11, Fallback: 5}

	tr, err := s.Sample(p)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if tr.Bounded {
		t.Error("expected unbounded flight")
	}
	if tr.Duration != 5 {
		t.Errorf("duration = %v, want fallback 5", tr.Duration)
	}
	for _, h := range tr.Heights() {
		if h != 10 {
			t.Fatalf("floating object moved to %v", h)
		}
	}
	if got := tr.Times(); got[len(got)-1] != 5 {
		t.Errorf("last time = %v, want 5", got[len(got)-1])
	}
}

func TestSampleGroundedStart(t *testing.T) {
	tr, err := DefaultSampler().Sample(kinematics.Params{Y0: 0, V0: 5, G: 0})
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if tr.Duration != 0 {
		t.Errorf("duration = %v, want 0", tr.Duration)
	}
	for _, v := range tr.Velocities() {
		if v != 5 {
			t.Fatalf("velocity = %v, want 5", v)
		}
	}
}

func TestSamplerValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Sampler
		want error
	}{
		{"default", DefaultSampler(), nil},
		{"one frame", Sampler{Frames: 1, Fallback: 10}, ErrInvalidFrames},
		{"zero fallback", Sampler{Frames: 10, Fallback: 0}, ErrInvalidFallback},
		{"nan fallback", Sampler{Frames: 10, Fallback: math.NaN()}, ErrInvalidFallback},
		{"inf fallback", Sampler{Frames: 10, Fallback: math.Inf(1)}, ErrInvalidFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.want == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := (Sampler{}).Sample(kinematics.Params{}); err == nil {
		t.Error("expected error from zero sampler")
	}
}
