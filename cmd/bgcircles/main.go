package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bgcircles/internal/analysis"
	"github.com/san-kum/bgcircles/internal/automation"
	"github.com/san-kum/bgcircles/internal/config"
	"github.com/san-kum/bgcircles/internal/export"
	"github.com/san-kum/bgcircles/internal/gui"
	"github.com/san-kum/bgcircles/internal/metrics"
	"github.com/san-kum/bgcircles/internal/scene"
	"github.com/san-kum/bgcircles/internal/sim"
	"github.com/san-kum/bgcircles/internal/storage"
	"github.com/san-kum/bgcircles/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFile    string

	// Layer options; only applied when set on the command line.
	count      int
	minSize    float64
	maxSize    float64
	minOpacity float64
	maxOpacity float64
	color      string
	background string
	animated   bool
	zIndex     int
	className  string
	pulse      string
	seed       int64
	fps        int
	ticks      int
	theme      string

	// Headless viewport
	width  float64
	height float64

	outPath   string
	format    string
	circleID  int
	tracePath string
	writePath string
	runs      int
)

// main runs the terminal view when no subcommand is given. It exits with
// status 1 if the command returns an error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers every command and flag. Flag variables are reset to
// their defaults on each call.
func newRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:          "bgcircles",
		Short:        "animated background circles",
		SilenceUsage: true,
		RunE:         runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", config.DefaultPreset, "preset name")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.IntVar(&count, "count", defaults.Count, "number of circles")
	pf.Float64Var(&minSize, "min-size", defaults.MinSize, "minimum diameter (px)")
	pf.Float64Var(&maxSize, "max-size", defaults.MaxSize, "maximum diameter (px)")
	pf.Float64Var(&minOpacity, "min-opacity", defaults.MinOpacity, "minimum opacity")
	pf.Float64Var(&maxOpacity, "max-opacity", defaults.MaxOpacity, "maximum opacity")
	pf.StringVar(&color, "color", defaults.Color, "circle color (hex)")
	pf.StringVar(&background, "background", defaults.Background, "layer background (hex)")
	pf.BoolVar(&animated, "animated", defaults.Animated, "animate circles")
	pf.IntVar(&zIndex, "z-index", defaults.ZIndex, "stacking order of the layer")
	pf.StringVar(&className, "class", defaults.ClassName, "extra class on the layer")
	pf.StringVar(&pulse, "pulse", defaults.Pulse, "scale pulse mode (accumulate, bounded)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&fps, "fps", defaults.FPS, "frame rate")
	pf.IntVar(&ticks, "ticks", defaults.Ticks, "frames to simulate in headless commands")
	pf.StringVar(&theme, "theme", defaults.Theme, "terminal theme")
	pf.Float64Var(&width, "width", 1280, "headless viewport width (px)")
	pf.Float64Var(&height, "height", 720, "headless viewport height (px)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the layer in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "animate the layer in a native window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the layer after --ticks frames as SVG",
		Args:  cobra.NoArgs,
		RunE:  renderSVG,
	}
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "record --ticks frames and export them",
		Args:  cobra.NoArgs,
		RunE:  recordTrace,
	}
	traceCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	traceCmd.Flags().StringVar(&format, "format", "csv", "export format (csv, json)")

	driftCmd := &cobra.Command{
		Use:   "drift",
		Short: "plot how a circle's scale evolves",
		Args:  cobra.NoArgs,
		RunE:  plotDrift,
	}
	driftCmd.Flags().IntVar(&circleID, "id", 0, "circle id")
	driftCmd.Flags().StringVar(&tracePath, "trace", "", "read a CSV trace instead of simulating")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run many seeds headless and compare pulse behaviour",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")

	playCmd := &cobra.Command{
		Use:   "play [scenario.yaml]",
		Short: "replay scripted host events",
		Args:  cobra.ExactArgs(1),
		RunE:  playScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "save to this path instead of printing")

	rootCmd.AddCommand(liveCmd, windowCmd, svgCmd, traceCmd, driftCmd, sweepCmd, playCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("min-size") {
		cfg.MinSize = minSize
	}
	if flags.Changed("max-size") {
		cfg.MaxSize = maxSize
	}
	if flags.Changed("min-opacity") {
		cfg.MinOpacity = minOpacity
	}
	if flags.Changed("max-opacity") {
		cfg.MaxOpacity = maxOpacity
	}
	if flags.Changed("color") {
		cfg.Color = color
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if flags.Changed("animated") {
		cfg.Animated = animated
	}
	if flags.Changed("z-index") {
		cfg.ZIndex = zIndex
	}
	if flags.Changed("class") {
		cfg.ClassName = className
	}
	if flags.Changed("pulse") {
		cfg.Pulse = pulse
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// setupLogger installs the default slog logger. The returned func closes
// the log file, if any.
func setupLogger(w io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	closer := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closer, nil
}

func prepare(cmd *cobra.Command, logTo io.Writer) (*config.Config, scene.Options, *slog.Logger, func(), error) {
	logger, closeLog, err := setupLogger(logTo)
	if err != nil {
		return nil, scene.Options{}, nil, nil, err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		closeLog()
		return nil, scene.Options{}, nil, nil, err
	}
	opts, err := cfg.SceneOptions()
	if err != nil {
		closeLog()
		return nil, scene.Options{}, nil, nil, err
	}
	logger.Debug("configuration resolved", "preset", preset, "count", cfg.Count, "seed", cfg.Seed, "pulse", cfg.Pulse)
	return cfg, opts, logger, closeLog, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	// The terminal belongs to Bubble Tea; logs only go to --log-file.
	cfg, opts, logger, closeLog, err := prepare(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	m := viz.NewModel(opts, cfg.FPS, cfg.Seed, logger, viz.WithTheme(cfg.Theme))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, opts, logger, closeLog, err := prepare(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("opening window", "count", opts.Count, "seed", cfg.Seed)
	return gui.Run(opts, cfg.Seed, logger)
}

func simConfig(cfg *config.Config) sim.Config {
	return sim.Config{
		Viewport: scene.Viewport{Width: width, Height: height},
		Ticks:    cfg.Ticks,
		Interval: time.Second / time.Duration(max(cfg.FPS, 1)),
		Seed:     cfg.Seed,
	}
}

// simulate runs cfg.Ticks frames headless, starting the clock at the Unix
// epoch so runs with the same seed match.
func simulate(ctx context.Context, cfg *config.Config, opts scene.Options, logger *slog.Logger, observers ...sim.Observer) (*sim.Result, error) {
	s := sim.New(opts, logger)
	for _, o := range observers {
		s.AddObserver(o)
	}
	return s.Run(ctx, simConfig(cfg))
}

func output() (io.Writer, func() error, error) {
	if outPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func renderSVG(cmd *cobra.Command, args []string) error {
	cfg, opts, logger, closeLog, err := prepare(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	result, err := simulate(cmd.Context(), cfg, opts, logger)
	if err != nil {
		return err
	}

	w, closeOut, err := output()
	if err != nil {
		return err
	}
	if err := export.WriteSVG(w, result.Final, export.LayerFromOptions(opts)); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func recordTrace(cmd *cobra.Command, args []string) error {
	cfg, opts, logger, closeLog, err := prepare(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rec := storage.NewRecorder(nil)
	if _, err := simulate(cmd.Context(), cfg, opts, logger, rec); err != nil {
		return err
	}

	w, closeOut, err := output()
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "csv":
		err = storage.WriteCSV(w, rec.Frames())
	case "json":
		meta := storage.Metadata{
			Seed:     cfg.Seed,
			Count:    cfg.Count,
			Pulse:    cfg.Pulse,
			Ticks:    cfg.Ticks,
			Recorded: time.Now(),
		}
		err = storage.WriteJSON(w, meta, rec.Frames())
	default:
		err = fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func plotDrift(cmd *cobra.Command, args []string) error {
	cfg, opts, logger, closeLog, err := prepare(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var frames []storage.Frame
	if tracePath != "" {
		f, err := os.Open(tracePath)
		if err != nil {
			return err
		}
		frames, err = storage.ReadCSV(f)
		f.Close()
		if err != nil {
			return err
		}
	} else {
		rec := storage.NewRecorder(nil)
		if _, err := simulate(cmd.Context(), cfg, opts, logger, rec); err != nil {
			return err
		}
		frames = rec.Frames()
	}

	series := storage.Series(frames, circleID, func(c scene.Circle) float64 { return c.Scale })
	if len(series) == 0 {
		return fmt.Errorf("no samples for circle %d", circleID)
	}

	interval := time.Second / time.Duration(max(cfg.FPS, 1))
	d := analysis.MeasureDrift(series, interval)

	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("scale of circle %d (%s pulse)", circleID, cfg.Pulse)),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("samples: %d\n", d.Samples)
	fmt.Printf("start:   %.4f\n", d.Start)
	fmt.Printf("final:   %.4f\n", d.Final)
	fmt.Printf("range:   %.4f .. %.4f (swing %.4f)\n", d.Min, d.Max, d.Swing)
	fmt.Printf("mean:    %.4f\n", d.Mean)
	if d.Period > 0 {
		fmt.Printf("period:  %v\n", d.Period.Round(time.Millisecond))
	}
	if d.Min <= 0 {
		fmt.Println("warning: scale reached zero or below")
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, opts, logger, closeLog, err := prepare(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	newMetrics := func() []sim.Metric {
		return []sim.Metric{
			metrics.NewContainment(),
			metrics.NewMeanScale(),
			metrics.NewMinScale(),
			metrics.NewScaleDrift(),
			metrics.NewCollapse(),
		}
	}
	ensemble := sim.NewEnsemble(opts, logger, runs, cfg.Seed, newMetrics)
	results, err := ensemble.Run(cmd.Context(), simConfig(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("%d runs, %d ticks each, %s pulse\n\n", runs, cfg.Ticks, opts.Pulse)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tTICKS\tCONTAINED\tMEAN SCALE\tMIN SCALE\tDRIFT\tCOLLAPSED")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.3f\t%.4f\t%.4f\t%.3f\t%.0f%%\n",
			r.Seed,
			r.Ticks,
			r.Metrics["containment"],
			r.Metrics["mean_scale"],
			r.Metrics["min_scale"],
			r.Metrics["scale_drift"],
			r.Metrics["collapse"]*100,
		)
	}
	return w.Flush()
}

func playScenario(cmd *cobra.Command, args []string) error {
	cfg, opts, logger, closeLog, err := prepare(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}

	results, err := automation.RunScenario(cmd.Context(), scenario, opts, cfg.Seed, logger)
	for _, r := range results {
		fmt.Printf("%2d  %-8s  frames=%-4d  %-8s  viewport=%s  circles=%d\n",
			r.Step, r.Action, r.Delivered, r.State, r.Snapshot.Viewport, len(r.Snapshot.Circles))
		if r.SaveAs == "" {
			continue
		}
		if err := saveSVG(r.SaveAs, r.Snapshot, opts); err != nil {
			return err
		}
	}
	return err
}

func saveSVG(path string, snap scene.Snapshot, opts scene.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteSVG(f, snap, export.LayerFromOptions(opts)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, _, _, closeLog, err := prepare(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if writePath != "" {
		return config.Save(writePath, cfg)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
