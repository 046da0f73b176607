package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/animato/internal/anim"
	"github.com/san-kum/animato/internal/config"
	"github.com/san-kum/animato/internal/export"
	"github.com/san-kum/animato/internal/feed"
	"github.com/san-kum/animato/internal/logging"
	"github.com/san-kum/animato/internal/playback"
	"github.com/san-kum/animato/internal/render"
	"github.com/san-kum/animato/internal/scene"
	"github.com/san-kum/animato/internal/storage"
	"github.com/san-kum/animato/internal/viz"
)

var (
	dataDir    string
	configFile string
	verbose    bool
	cfg        *config.Config

	// render/export
	width      int
	height     int
	background string
	liveMode   bool
	atTime     float64
	outPath    string
	format     string
	fps        float64
	workers    int
	scale      float64

	// play
	watchDir  string
	headless  bool
	frameRate int
	theme     string

	// bake/plot/trail
	step     float64
	stroke   string
	timeline bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "animato",
		Short:        "animation playback and rendering engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunMenu(playerOptions())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "run store directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "canvas width")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "canvas height")
	rootCmd.PersistentFlags().StringVar(&background, "background", config.DefaultBackground, "background colour")
	rootCmd.PersistentFlags().BoolVar(&liveMode, "live", false, "resolve declarative scenes per frame instead of baking")

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "render one frame to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderFrame,
	}
	renderCmd.Flags().Float64Var(&atTime, "time", 0, "playback time (ms)")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <scene>.png)")

	exportCmd := &cobra.Command{
		Use:   "export [scene]",
		Short: "export a scene as a PNG sequence or GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  exportScene,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "png", "png or gif")
	exportCmd.Flags().Float64Var(&fps, "fps", config.DefaultFPS, "export frame rate")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output directory (png) or file (gif)")
	exportCmd.Flags().IntVar(&workers, "workers", 0, "parallel renderers (0 = one per CPU)")
	exportCmd.Flags().Float64Var(&scale, "scale", 1, "gif frame scale in (0,1]")

	playCmd := &cobra.Command{
		Use:   "play [scene]",
		Short: "play a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playScene,
	}
	playCmd.Flags().StringVar(&watchDir, "watch", "", "directory to watch for new scenes")
	playCmd.Flags().BoolVar(&headless, "headless", false, "play without a UI, logging progress")
	playCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "screen refresh rate")
	playCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	bakeCmd := &cobra.Command{
		Use:   "bake [scene]",
		Short: "convert a declarative scene to precomputed frames",
		Args:  cobra.ExactArgs(1),
		RunE:  bakeScene,
	}
	bakeCmd.Flags().Float64Var(&step, "step", 0, "sample interval in ms (default from fps hint or 16)")
	bakeCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout, json)")

	validateCmd := &cobra.Command{
		Use:   "validate [scene...]",
		Short: "check scene files against the schema and invariants",
		Args:  cobra.MinimumNArgs(1),
		RunE:  validateScenes,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [scene] [object] [property]",
		Short: "plot a numeric property over time",
		Args:  cobra.ExactArgs(3),
		RunE:  plotProperty,
	}
	plotCmd.Flags().Float64Var(&step, "step", 0, "sample interval in ms")

	trailCmd := &cobra.Command{
		Use:   "trail [scene] [object]",
		Short: "write the motion trail of an object as SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  writeTrail,
	}
	trailCmd.Flags().Float64Var(&step, "step", 0, "sample interval in ms")
	trailCmd.Flags().StringVar(&stroke, "stroke", "#e74c3c", "trail colour")
	trailCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list export runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&timeline, "timeline", false, "plot objects drawn per frame")

	demoCmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "write a built-in demo scene to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  writeDemo,
	}
	demoCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <name>.yaml)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in demo scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", name, config.PresetDescription(name))
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, exportCmd, playCmd, bakeCmd, validateCmd, plotCmd, trailCmd, listCmd, showCmd, demoCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads --config, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if flags.Changed("live") {
		cfg.LiveResolve = liveMode
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Name() == "export" && flags.Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Name() == "play" && flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	return cfg.Validate()
}

func renderOptions() render.Options {
	return render.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Background:  cfg.Background,
		LiveResolve: cfg.LiveResolve,
	}
}

func playerOptions() viz.Options {
	return viz.Options{
		Render:    renderOptions(),
		Tick:      cfg.TickMs,
		FrameRate: cfg.FrameRate,
		Theme:     cfg.Theme,
	}
}

// loadScene opens a scene file, falling back to a built-in demo of the
// same name.
func loadScene(arg string) (*scene.Scene, error) {
	if _, err := os.Stat(arg); err != nil {
		if sc := config.GetPreset(arg); sc != nil {
			return sc, nil
		}
	}
	sc, err := scene.Load(arg)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return sc, nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}
	out := outPath
	if out == "" {
		out = sc.ID + ".png"
	}

	im, err := render.NewImage(renderOptions())
	if err != nil {
		return err
	}
	defer im.Close()

	_, stats := im.At(sc, atTime)
	if err := im.SavePNG(out); err != nil {
		return err
	}
	fmt.Printf("%s at %s: %d drawn, %d skipped -> %s\n",
		sc.ID, playback.FormatClock(atTime), stats.Drawn, stats.Skipped, out)
	return nil
}

func exportScene(cmd *cobra.Command, args []string) error {
	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}
	opts := export.Options{
		Render:  renderOptions(),
		FPS:     cfg.FPS,
		Workers: cfg.WorkerCount(),
		Scale:   scale,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	var frames []export.Frame
	out := outPath
	switch format {
	case "png":
		if out == "" {
			out = sc.ID + "_frames"
		}
		frames, err = export.PNGSequence(ctx, sc, out, opts)
	case "gif":
		if out == "" {
			out = sc.ID + ".gif"
		}
		frames, err = export.SaveGIF(ctx, out, sc, opts)
	default:
		return fmt.Errorf("unknown format %q (png, gif)", format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", sc.ID, err)
	}
	elapsed := time.Since(start)

	records := make([]storage.FrameRecord, len(frames))
	for i, f := range frames {
		records[i] = storage.FrameRecord{Index: f.Index, Time: f.Time, Drawn: f.Stats.Drawn, Skipped: f.Stats.Skipped, File: f.File}
	}
	st := storage.New(cfg.DataDir)
	runID, err := st.Save(storage.RunMetadata{
		Scene:    sc.ID,
		Title:    sc.Title,
		Source:   args[0],
		Format:   format,
		Width:    cfg.Width,
		Height:   cfg.Height,
		FPS:      cfg.FPS,
		Duration: sc.Duration,
		Output:   out,
		Elapsed:  float64(elapsed.Milliseconds()),
	}, records)
	if err != nil {
		return err
	}

	fmt.Printf("exported %d frames in %v -> %s\n", len(frames), elapsed.Round(time.Millisecond), out)
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func playScene(cmd *cobra.Command, args []string) error {
	var sc *scene.Scene
	if len(args) > 0 {
		var err error
		if sc, err = loadScene(args[0]); err != nil {
			return err
		}
	}
	if headless {
		if sc == nil {
			return errors.New("headless play needs a scene")
		}
		return playHeadless(sc)
	}

	opts := playerOptions()
	opts.Autoplay = true
	if watchDir == "" {
		if sc == nil {
			return viz.RunMenu(opts)
		}
		return viz.Run(sc, opts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hub := feed.NewHub()
	src := feed.NewDirSource(watchDir, hub)
	opts.Feed = hub
	if err := src.Connect(ctx); err != nil {
		return err
	}
	defer src.Disconnect()
	return viz.Run(sc, opts)
}

// playHeadless runs the clock on a real-time ticker, rendering every
// tick off screen and printing progress once per second.
func playHeadless(sc *scene.Scene) error {
	im, err := render.NewImage(renderOptions())
	if err != nil {
		return err
	}
	defer im.Close()

	done := make(chan struct{})
	var finish sync.Once
	lastSecond := -1
	clock := playback.NewClock(func(sc *scene.Scene, st playback.State) {
		stats := im.Render(sc, st)
		if sec := int(st.CurrentTime / 1000); sec != lastSecond || st.Status == playback.Ended {
			lastSecond = sec
			fmt.Printf("%s / %s  %-8s drawn=%d skipped=%d\n",
				playback.FormatClock(st.CurrentTime), playback.FormatClock(st.Duration),
				st.Status, stats.Drawn, stats.Skipped)
		}
		if st.Status == playback.Ended {
			finish.Do(func() { close(done) })
		}
	}, cfg.TickMs)

	sched := playback.NewTickerScheduler(1000 / clock.TickInterval())
	defer sched.Stop()
	loop := playback.NewLoop(clock, sched)
	defer loop.Close()

	loop.Replace(sc)
	if sc.Duration <= 0 {
		return nil
	}
	if err := loop.Play(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	select {
	case <-done:
	case <-ctx.Done():
		loop.Pause()
	}
	return nil
}

func bakeScene(cmd *cobra.Command, args []string) error {
	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}
	baked := anim.Bake(sc, step)
	if outPath == "" {
		return scene.Encode(os.Stdout, baked, scene.JSON)
	}
	if err := scene.Save(outPath, baked); err != nil {
		return err
	}
	fmt.Printf("baked %s: %d frames -> %s\n", baked.ID, len(baked.Frames), outPath)
	return nil
}

func validateScenes(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		sc, err := scene.Load(path)
		if err != nil {
			failed++
			fmt.Printf("FAIL %s\n", path)
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Printf("     %s\n", line)
			}
			continue
		}
		count := len(sc.Frames)
		unit := "frames"
		if sc.Form() == scene.Declarative {
			count, unit = len(sc.Shapes), "shapes"
		}
		fmt.Printf("ok   %s: %s, %d %s, %s\n", path, sc.Form(), count, unit, playback.FormatClock(sc.Duration))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenes invalid", failed, len(args))
	}
	return nil
}

func plotProperty(cmd *cobra.Command, args []string) error {
	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}
	id, prop := args[1], args[2]

	s := step
	if s <= 0 {
		s = anim.StepFor(sc)
	}
	ts := anim.SampleTimes(sc.Duration, s)
	vals, oks := anim.Sample(sc, id, prop, ts)

	data := make([]float64, 0, len(vals))
	for i, v := range vals {
		if oks[i] {
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return fmt.Errorf("%s has no numeric %q", id, prop)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s.%s over %s", id, prop, playback.FormatClock(sc.Duration))),
	)
	fmt.Println(graph)
	return nil
}

func writeTrail(cmd *cobra.Command, args []string) error {
	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}
	s := step
	if s <= 0 {
		s = anim.StepFor(sc)
	}
	svg, err := export.Trail(sc, args[1], export.TrailOptions{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Step:       s,
		Stroke:     stroke,
		Background: cfg.Background,
	})
	if err != nil {
		return err
	}
	return writeOut(outPath, svg)
}

func writeOut(path, data string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := io.WriteString(w, data)
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tFORMAT\tFRAMES\tSIZE\tSKIPPED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%dx%d\t%d\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Format,
			run.Frames,
			run.Width, run.Height,
			run.Skipped,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	if !timeline {
		return nil
	}

	frames, err := st.LoadTimeline(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return nil
	}
	drawn := make([]float64, len(frames))
	for i, f := range frames {
		drawn[i] = float64(f.Drawn)
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(drawn,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("objects drawn per frame"),
	))
	return nil
}

func writeDemo(cmd *cobra.Command, args []string) error {
	name := args[0]
	sc := config.GetPreset(name)
	if sc == nil {
		return fmt.Errorf("unknown demo: %s (available: %v)", name, config.ListPresets())
	}
	out := outPath
	if out == "" {
		out = name + ".yaml"
	}
	if err := scene.Save(out, sc); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s) -> %s\n", name, sc.Form(), filepath.Clean(out))
	return nil
}
