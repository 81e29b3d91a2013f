// Package report renders throw results as text.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/vthrow/internal/kinematics"
	"github.com/san-kum/vthrow/internal/trajectory"
)

type Writer struct {
	out io.Writer
	st  Styles
}

func New(out io.Writer, st Styles) *Writer {
	return &Writer{out: out, st: st}
}

func (w *Writer) header(title string) {
	fmt.Fprintf(w.out, "\n%s\n", w.st.Header.Render("=== "+strings.ToUpper(title)+" ==="))
}

func (w *Writer) line(indent, label, value string) {
	fmt.Fprintf(w.out, "%s%s %s\n", indent, w.st.Label.Render(label+":"), w.st.Value.Render(value))
}

// Results prints the summary of a throw on body.
func (w *Writer) Results(s kinematics.Summary, body kinematics.Body) {
	w.header("results")
	fmt.Fprintf(w.out, "on %s (g = %g m/s²):\n", body.Name, body.Gravity)
	w.summary("", s)
}

func (w *Writer) summary(indent string, s kinematics.Summary) {
	w.line(indent, "max height", Height(s.MaxHeight))
	w.line(indent, "time to apex", Seconds(s.ApexTime))
	w.line(indent, "time of flight", FlightTime(s.Flight))
}

// Query prints velocity and height at time t.
func (w *Writer) Query(p kinematics.Params, t float64) {
	fmt.Fprintf(w.out, "at t = %g s:\n", t)
	w.line("  ", "velocity", fmt.Sprintf("%.2f m/s", p.VelocityAt(t)))
	w.line("  ", "height", fmt.Sprintf("%.2f m", p.HeightAt(t)))
}

// Comparison prints both summaries, the qualitative reflection and the
// percentage differences that are defined.
func (w *Writer) Comparison(c kinematics.Comparison) {
	w.header(c.A.Name + " vs " + c.B.Name)

	fmt.Fprintf(w.out, "on %s:\n", c.A.Name)
	w.summary("  ", c.SumA)
	fmt.Fprintf(w.out, "\non %s:\n", c.B.Name)
	w.summary("  ", c.SumB)

	w.header("reflection")
	regime := kinematics.Relative(c.B.Gravity, c.A.Gravity)
	switch regime {
	case kinematics.Weaker, kinematics.Stronger:
		more := "greater"
		if regime == kinematics.Stronger {
			more = "smaller"
		}
		fmt.Fprintf(w.out, "%s has %s gravity (%g m/s² vs %g m/s² on %s):\n",
			c.B.Name, regime, c.B.Gravity, c.A.Gravity, c.A.Name)
		fmt.Fprintf(w.out, "- the object reaches a %s maximum height\n", more)
		if regime == kinematics.Weaker {
			fmt.Fprintln(w.out, "- it takes longer to reach the apex")
			fmt.Fprintln(w.out, "- the total time of flight is significantly longer")
		} else {
			fmt.Fprintln(w.out, "- it reaches the apex sooner")
			fmt.Fprintln(w.out, "- the total time of flight is shorter")
		}
	default:
		fmt.Fprintf(w.out, "%s and %s have the same gravity.\n", c.A.Name, c.B.Name)
	}

	if pct, ok := c.HeightDelta(); ok {
		fmt.Fprintf(w.out, "\nthe max height on %s is %s than on %s\n", c.B.Name, Delta(pct), c.A.Name)
	}
	if pct, ok := c.ApexDelta(); ok {
		fmt.Fprintf(w.out, "the time to apex on %s is %s than on %s\n", c.B.Name, Delta(pct), c.A.Name)
	}
	if pct, ok := c.FlightDelta(); ok {
		fmt.Fprintf(w.out, "the time of flight on %s is %s than on %s\n", c.B.Name, Delta(pct), c.A.Name)
	}
}

// Reflection explains a custom gravity relative to earth.
func (w *Writer) Reflection(g float64) {
	w.header("reflection")
	fmt.Fprintf(w.out, "with a gravity of %g m/s²:\n", g)
	switch kinematics.Relative(g, kinematics.EarthGravity) {
	case kinematics.Weaker:
		w.note("being weaker than earth's gravity, the object reaches",
			"greater heights and takes longer to fall.")
	case kinematics.Stronger:
		w.note("being stronger than earth's gravity, the object reaches",
			"smaller heights and takes less time to fall.")
	default:
		w.note("the gravity equals earth's.")
	}
}

func (w *Writer) note(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(w.out, w.st.Note.Render(l))
	}
}

// Plot draws height against time.
func (w *Writer) Plot(tr *trajectory.Trajectory, height, width int) {
	caption := fmt.Sprintf("height (m) over %.2f s", tr.Duration)
	if !tr.Bounded {
		caption += " (fallback window, never lands)"
	}
	graph := asciigraph.Plot(tr.Heights(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(w.out, graph)
}

// Warn prints a highlighted note.
func (w *Writer) Warn(msg string) {
	fmt.Fprintln(w.out, w.st.Warn.Render("note: "+msg))
}

func Height(m float64) string {
	if math.IsInf(m, 1) {
		return "unbounded (keeps rising)"
	}
	return fmt.Sprintf("%.2f m", m)
}

func Seconds(s float64) string {
	if math.IsInf(s, 1) {
		return "never (no gravity to stop it)"
	}
	return fmt.Sprintf("%.2f s", s)
}

func FlightTime(f kinematics.Flight) string {
	if !f.IsFinite() {
		return "infinite (never reaches the ground)"
	}
	return fmt.Sprintf("%.2f s", f.Value)
}

// Delta phrases a percentage change, e.g. "503.1% greater".
func Delta(pct float64) string {
	switch {
	case math.IsInf(pct, 1):
		return "unboundedly greater"
	case pct >= 0:
		return fmt.Sprintf("%.1f%% greater", pct)
	}
	return fmt.Sprintf("%.1f%% smaller", -pct)
}
