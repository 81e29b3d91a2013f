package input

import (
	"fmt"

	"github.com/san-kum/vthrow/internal/kinematics"
)

const (
	choiceEarth  = "1"
	choiceMoon   = "2"
	choiceCustom = "3"
)

// Limits are the bounds applied while prompting.
type Limits struct {
	Height   Bounds
	Velocity Bounds
	Gravity  Bounds
	Time     Bounds
}

func DefaultLimits() Limits {
	return Limits{
		Height:   AtLeast(0),
		Velocity: Any(),
		Gravity:  AtLeast(0),
		Time:     AtLeast(0),
	}
}

// Setup is what the interactive flow collects before computing.
type Setup struct {
	Height   float64
	Velocity float64
	Body     kinematics.Body
}

func (s Setup) Params() kinematics.Params {
	return s.Body.Params(s.Height, s.Velocity)
}

// Session walks a user through the interactive throw setup.
type Session struct {
	p      *Prompter
	limits Limits
}

func NewSession(p *Prompter, limits Limits) *Session {
	return &Session{p: p, limits: limits}
}

// Setup asks for the start height, launch velocity and gravity.
func (s *Session) Setup() (Setup, error) {
	var out Setup
	var err error

	out.Height, err = s.p.Float(fmt.Sprintf("initial height (m) %s: ", s.limits.Height.Hint()), s.limits.Height)
	if err != nil {
		return out, err
	}

	out.Velocity, err = s.p.Float(fmt.Sprintf("initial velocity (m/s) %s: ", s.limits.Velocity.Hint()), s.limits.Velocity)
	if err != nil {
		return out, err
	}
	if out.Velocity < 0 {
		fmt.Fprintln(s.p.out, "note: negative velocity means the object is thrown downward.")
	}

	fmt.Fprintln(s.p.out, "\nselect a body:")
	fmt.Fprintf(s.p.out, "%s. earth (g = %g m/s²)\n", choiceEarth, kinematics.EarthGravity)
	fmt.Fprintf(s.p.out, "%s. moon (g = %g m/s²)\n", choiceMoon, kinematics.MoonGravity)
	fmt.Fprintf(s.p.out, "%s. other value\n", choiceCustom)

	choice, err := s.p.Choice("option (1-3): ", []string{choiceEarth, choiceMoon, choiceCustom})
	if err != nil {
		return out, err
	}

	switch choice {
	case choiceEarth:
		out.Body = kinematics.Earth
	case choiceMoon:
		out.Body = kinematics.Moon
	default:
		g, err := s.p.Float(fmt.Sprintf("gravity (m/s²) %s: ", s.limits.Gravity.Hint()), s.limits.Gravity)
		if err != nil {
			return out, err
		}
		out.Body = kinematics.CustomBody(g)
	}
	return out, nil
}

// QueryTime asks for the instant at which to report velocity and height.
func (s *Session) QueryTime() (float64, error) {
	return s.p.Float(fmt.Sprintf("\ntime to evaluate velocity and height (s) %s: ", s.limits.Time.Hint()), s.limits.Time)
}

func (s *Session) WantAnimation() (bool, error) {
	return s.p.Confirm("\nshow an animation of the motion? (y/n): ")
}
