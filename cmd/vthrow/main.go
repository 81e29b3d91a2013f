package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/vthrow/internal/config"
	"github.com/san-kum/vthrow/internal/export"
	"github.com/san-kum/vthrow/internal/input"
	"github.com/san-kum/vthrow/internal/kinematics"
	"github.com/san-kum/vthrow/internal/logging"
	"github.com/san-kum/vthrow/internal/report"
	"github.com/san-kum/vthrow/internal/trajectory"
	"github.com/san-kum/vthrow/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFormat  string
	noColor    bool

	height   float64
	velocity float64
	gravity  float64
	bodyName string
	queryAt  float64

	frames   int
	fallback float64
	fps      int
	loop     bool
	theme    string

	withCompare bool
	plotHeight  int
	plotWidth   int
	outPath     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vthrow",
		Short:        "vertical throw kinematics",
		Long:         "vthrow computes maximum height, time to apex and time of flight of an object thrown vertically under constant gravity.",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	pf.BoolVar(&noColor, "no-color", false, "disable styled output")
	pf.IntVar(&frames, "frames", config.DefaultFrames, "number of samples over the flight")
	pf.Float64Var(&fallback, "fallback", config.DefaultFallback, "sampling window (s) when the object never lands")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "compute apex and flight for one throw",
		Args:  cobra.NoArgs,
		RunE:  runCalc,
	}
	addThrowFlags(calcCmd)
	calcCmd.Flags().Float64Var(&queryAt, "at", 0, "report velocity and height at this time (s)")
	calcCmd.Flags().BoolVar(&withCompare, "compare", false, "add an earth vs moon comparison")

	compareCmd := &cobra.Command{
		Use:   "compare [bodyA] [bodyB]",
		Short: "compare the same throw under two gravities (default earth moon)",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runCompare,
	}
	compareCmd.Flags().Float64Var(&height, "height", 0, "initial height (m)")
	compareCmd.Flags().Float64Var(&velocity, "velocity", 0, "initial velocity (m/s), negative is downward")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot height over time",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	addThrowFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotHeight, "rows", 12, "plot height in rows")
	plotCmd.Flags().IntVar(&plotWidth, "cols", 80, "plot width in columns")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "animate the throw in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runAnimate,
	}
	addThrowFlags(animateCmd)
	animateCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	animateCmd.Flags().BoolVar(&loop, "loop", true, "restart when the flight ends")
	animateCmd.Flags().StringVar(&theme, "theme", viz.ThemeAqua.Name, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	exportCmd := &cobra.Command{
		Use:       "export [csv|json|svg]",
		Short:     "export the sampled trajectory",
		Args:      cobra.ExactArgs(1),
		ValidArgs: export.Formats(),
		RunE:      runExport,
	}
	addThrowFlags(exportCmd)
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBODY\tHEIGHT\tVELOCITY")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				b, err := cfg.ResolveBody()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%.2f m\t%.2f m/s\n", name, b.Name, cfg.InitState.Height, cfg.InitState.Velocity)
			}
			return w.Flush()
		},
	}

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list known bodies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BODY\tGRAVITY")
			for _, b := range kinematics.Bodies() {
				fmt.Fprintf(w, "%s\t%g m/s²\n", b.Name, b.Gravity)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(calcCmd, compareCmd, plotCmd, animateCmd, exportCmd, presetsCmd, bodiesCmd)
	return rootCmd
}

func addThrowFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&height, "height", 0, "initial height (m)")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "initial velocity (m/s), negative is downward")
	cmd.Flags().StringVar(&bodyName, "body", config.DefaultBody, "body (earth, moon)")
	cmd.Flags().Float64Var(&gravity, "gravity", 0, "custom gravity (m/s²), overrides --body")
}

// loadConfig layers defaults, preset, config file and changed flags, in that
// order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.InitState.Height = height
	}
	if flags.Changed("velocity") {
		cfg.InitState.Velocity = velocity
	}
	if flags.Changed("body") {
		cfg.Body = bodyName
		cfg.Gravity = nil
	}
	if flags.Changed("gravity") {
		g := gravity
		cfg.Gravity = &g
	}
	if flags.Changed("at") {
		q := queryAt
		cfg.Query = &q
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("fallback") {
		cfg.Fallback = fallback
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("config resolved",
		"body", cfg.Body,
		"height", cfg.InitState.Height,
		"velocity", cfg.InitState.Velocity,
		"frames", cfg.Frames,
		"fallback", cfg.Fallback,
	)
	return cfg, log, nil
}

func newReport(out io.Writer) *report.Writer {
	if noColor {
		return report.New(out, report.PlainStyles())
	}
	return report.New(out, report.DefaultStyles())
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	body, err := cfg.ResolveBody()
	if err != nil {
		return err
	}
	p := body.Params(cfg.InitState.Height, cfg.InitState.Velocity)

	rep := newReport(cmd.OutOrStdout())
	if p.V0 < 0 {
		rep.Warn("negative velocity means the object is thrown downward.")
	}

	s := p.Summarize()
	log.Debug("computed", "max_height", s.MaxHeight, "apex_time", s.ApexTime, "flight", s.Flight.String())
	rep.Results(s, body)

	if cfg.Query != nil {
		fmt.Fprintln(cmd.OutOrStdout())
		rep.Query(p, *cfg.Query)
	}

	switch {
	case withCompare:
		rep.Comparison(kinematics.Compare(p.Y0, p.V0, kinematics.Earth, kinematics.Moon))
	case body.IsCustom():
		rep.Reflection(body.Gravity)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	a, b := kinematics.Earth, kinematics.Moon
	if len(args) > 0 {
		if a, err = parseBody(args[0]); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		if b, err = parseBody(args[1]); err != nil {
			return err
		}
	}
	log.Debug("comparing", "a", a.Name, "b", b.Name)

	c := kinematics.Compare(cfg.InitState.Height, cfg.InitState.Velocity, a, b)
	newReport(cmd.OutOrStdout()).Comparison(c)
	return nil
}

// parseBody accepts a body name or a gravity value.
func parseBody(s string) (kinematics.Body, error) {
	if g, err := strconv.ParseFloat(s, 64); err == nil {
		if err := (kinematics.Params{G: g}).Validate(); err != nil {
			return kinematics.Body{}, err
		}
		return kinematics.CustomBody(g), nil
	}
	return kinematics.LookupBody(s)
}

func sampleFromConfig(cmd *cobra.Command) (*config.Config, kinematics.Body, *trajectory.Trajectory, error) {
	cfg, log, err := setup(cmd)
	if err != nil {
		return nil, kinematics.Body{}, nil, err
	}
	body, err := cfg.ResolveBody()
	if err != nil {
		return nil, kinematics.Body{}, nil, err
	}
	tr, err := cfg.Sampler().Sample(body.Params(cfg.InitState.Height, cfg.InitState.Velocity))
	if err != nil {
		return nil, kinematics.Body{}, nil, err
	}
	if !tr.Bounded {
		log.Info("object never lands, using fallback window", "fallback", cfg.Fallback)
	}
	log.Debug("sampled", "points", tr.Len(), "duration", tr.Duration)
	return cfg, body, tr, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	_, body, tr, err := sampleFromConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "throw on %s: y0=%.2f m, v0=%.2f m/s\n\n", body.Name, tr.Params.Y0, tr.Params.V0)
	newReport(cmd.OutOrStdout()).Plot(tr, plotHeight, plotWidth)
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, body, tr, err := sampleFromConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(tr, viz.Options{FPS: cfg.FPS, Title: "vertical throw on " + body.Name, Loop: loop, Theme: theme})
}

func runExport(cmd *cobra.Command, args []string) error {
	_, body, tr, err := sampleFromConfig(cmd)
	if err != nil {
		return err
	}

	if outPath == "" {
		return export.Write(cmd.OutOrStdout(), args[0], tr, body)
	}
	return writeFile(outPath, func(w io.Writer) error {
		return export.Write(w, args[0], tr, body)
	})
}

// writeFile creates path and fills it with write. The file is removed when
// writing or closing fails.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// runInteractive prompts for a throw, prints the results with either the
// Earth vs Moon comparison or a custom gravity note, then may animate it.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	rep := newReport(out)

	fmt.Fprintln(out, "=== VERTICAL THROW ===")
	fmt.Fprintln(out, "computes the motion of an object thrown vertically.")
	fmt.Fprintln(out)

	session := input.NewSession(input.NewPrompter(cmd.InOrStdin(), out, log), cfg.PromptLimits())
	st, err := session.Setup()
	if err != nil {
		return interrupted(err)
	}
	p := st.Params()
	rep.Results(p.Summarize(), st.Body)

	t, err := session.QueryTime()
	if err != nil {
		return interrupted(err)
	}
	rep.Query(p, t)

	if st.Body.IsCustom() {
		rep.Reflection(st.Body.Gravity)
	} else {
		rep.Comparison(kinematics.Compare(st.Height, st.Velocity, kinematics.Earth, kinematics.Moon))
	}

	animate, err := session.WantAnimation()
	if err != nil {
		return interrupted(err)
	}
	if !animate {
		return nil
	}
	tr, err := cfg.Sampler().Sample(p)
	if err != nil {
		return err
	}
	return viz.Run(tr, viz.Options{FPS: cfg.FPS, Title: "vertical throw on " + st.Body.Name, Loop: true})
}

// interrupted treats a closed stdin as a normal exit.
func interrupted(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
