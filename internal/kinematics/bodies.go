package kinematics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	EarthGravity = 9.8   // m/s^2
	MoonGravity  = 1.625 // m/s^2
)

// Body is a named gravity regime.
type Body struct {
	Name    string
	Gravity float64
}

var (
	Earth = Body{Name: "earth", Gravity: EarthGravity}
	Moon  = Body{Name: "moon", Gravity: MoonGravity}
)

var bodies = map[string]Body{
	Earth.Name: Earth,
	Moon.Name:  Moon,
}

// LookupBody finds a registered body by name, ignoring case.
func LookupBody(name string) (Body, error) {
	b, ok := bodies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Body{}, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}
	return b, nil
}

// Bodies lists the registered bodies ordered by gravity, strongest first.
func Bodies() []Body {
	out := make([]Body, 0, len(bodies))
	for _, b := range bodies {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gravity > out[j].Gravity })
	return out
}

// CustomBody wraps an arbitrary gravity value.
func CustomBody(g float64) Body {
	return Body{Name: "g=" + strconv.FormatFloat(g, 'g', -1, 64) + " m/s²", Gravity: g}
}

// IsCustom reports whether b is not one of the registered bodies.
func (b Body) IsCustom() bool {
	reg, ok := bodies[b.Name]
	return !ok || reg.Gravity != b.Gravity
}

func (b Body) Params(y0, v0 float64) Params {
	return Params{Y0: y0, V0: v0, G: b.Gravity}
}
