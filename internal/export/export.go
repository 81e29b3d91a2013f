// Package export writes sampled trajectories as CSV, JSON or SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/vthrow/internal/kinematics"
	"github.com/san-kum/vthrow/internal/trajectory"
)

var (
	ErrTooFewPoints  = errors.New("export: need at least two points")
	ErrUnknownFormat = errors.New("export: unknown format")
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatSVG  = "svg"
)

func Formats() []string { return []string{FormatCSV, FormatJSON, FormatSVG} }

// CSV writes one row per sample: t, y, v.
func CSV(w io.Writer, tr *trajectory.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"t", "y", "v"}); err != nil {
		return err
	}
	for _, p := range tr.Points {
		row := []string{
			strconv.FormatFloat(p.T, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.V, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type Data struct {
	Body         string             `json:"body"`
	Gravity      float64            `json:"gravity"`
	Height       float64            `json:"initial_height"`
	Velocity     float64            `json:"initial_velocity"`
	MaxHeight    *float64           `json:"max_height"`
	ApexTime     *float64           `json:"time_to_apex"`
	TimeOfFlight *float64           `json:"time_of_flight"`
	Unbounded    bool               `json:"unbounded"`
	Duration     float64            `json:"duration"`
	Steps        int                `json:"steps"`
	Points       []trajectory.Point `json:"points"`
}

// NewData builds the JSON document. Infinite quantities are encoded as null.
func NewData(tr *trajectory.Trajectory, body kinematics.Body) Data {
	s := tr.Params.Summarize()
	d := Data{
		Body:      body.Name,
		Gravity:   tr.Params.G,
		Height:    tr.Params.Y0,
		Velocity:  tr.Params.V0,
		MaxHeight: finite(s.MaxHeight),
		ApexTime:  finite(s.ApexTime),
		Unbounded: !s.Flight.IsFinite(),
		Duration:  tr.Duration,
		Steps:     tr.Len(),
		Points:    tr.Points,
	}
	if s.Flight.IsFinite() {
		d.TimeOfFlight = finite(s.Flight.Value)
	}
	return d
}

func JSON(w io.Writer, tr *trajectory.Trajectory, body kinematics.Body) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewData(tr, body))
}

// Write dispatches on format. Trajectories with fewer than two points are
// rejected for every format.
func Write(w io.Writer, format string, tr *trajectory.Trajectory, body kinematics.Body) error {
	if tr.Len() < 2 {
		return ErrTooFewPoints
	}
	switch format {
	case FormatCSV:
		return CSV(w, tr)
	case FormatJSON:
		return JSON(w, tr, body)
	case FormatSVG:
		return SVG(w, tr, 800, 400, "#00ffcc")
	}
	return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, format, Formats())
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
