// Package trajectory samples a vertical throw over time for plotting,
// animation and export.
package trajectory

import (
	"fmt"
	"math"

	"github.com/san-kum/vthrow/internal/kinematics"
)

const (
	DefaultFrames   = 100
	DefaultFallback = 10.0
)

// Point is one sample: time, height and velocity.
type Point struct {
	T float64 `json:"t"`
	Y float64 `json:"y"`
	V float64 `json:"v"`
}

type Trajectory struct {
	Params   kinematics.Params
	Duration float64
	// Bounded is false when the flight never ends and Duration is the fallback.
	Bounded bool
	Points  []Point
}

// Sampler turns parameters into evenly spaced samples. Frames and Fallback
// are presentation settings and have no physical meaning.
type Sampler struct {
	Frames   int
	Fallback float64
}

func DefaultSampler() Sampler {
	return Sampler{Frames: DefaultFrames, Fallback: DefaultFallback}
}

func (s Sampler) Validate() error {
	if s.Frames < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidFrames, s.Frames)
	}
	if !(s.Fallback > 0) || math.IsInf(s.Fallback, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidFallback, s.Fallback)
	}
	return nil
}

// Sample evaluates p at Frames instants from 0 to the time of flight, or to
// Fallback when the flight is unbounded.
func (s Sampler) Sample(p kinematics.Params) (*Trajectory, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	flight := p.Flight()
	tr := &Trajectory{
		Params:   p,
		Duration: flight.Or(s.Fallback),
		Bounded:  flight.IsFinite(),
	}

	times := Linspace(0, tr.Duration, s.Frames)
	tr.Points = make([]Point, len(times))
	for i, t := range times {
		tr.Points[i] = Point{T: t, Y: p.HeightAt(t), V: p.VelocityAt(t)}
	}
	return tr, nil
}

// Linspace returns n evenly spaced values over [start, stop], both ends
// included.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

func (tr *Trajectory) Len() int { return len(tr.Points) }

func (tr *Trajectory) At(i int) Point { return tr.Points[i] }

func (tr *Trajectory) Times() []float64 {
	return tr.column(func(p Point) float64 { return p.T })
}

func (tr *Trajectory) Heights() []float64 {
	return tr.column(func(p Point) float64 { return p.Y })
}

func (tr *Trajectory) Velocities() []float64 {
	return tr.column(func(p Point) float64 { return p.V })
}

func (tr *Trajectory) column(f func(Point) float64) []float64 {
	out := make([]float64, len(tr.Points))
	for i, p := range tr.Points {
		out[i] = f(p)
	}
	return out
}

// Peak returns the highest sampled height, never below the start height.
func (tr *Trajectory) Peak() float64 {
	peak := tr.Params.Y0
	for _, p := range tr.Points {
		if p.Y > peak {
			peak = p.Y
		}
	}
	return peak
}
