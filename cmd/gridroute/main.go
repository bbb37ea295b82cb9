// Command gridroute loads a grid from an HCL scenario or a saved archive,
// routes every start marker against every end marker, and optionally saves
// the result or opens the interactive editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ahlab/gridroute/astar"
	"github.com/ahlab/gridroute/editor"
	"github.com/ahlab/gridroute/grid"
	"github.com/ahlab/gridroute/gridio"
	"github.com/ahlab/gridroute/scenario"
)

func main() {
	if err := run(os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type config struct {
	scenarioPath string
	loadPath     string
	savePath     string
	edit         bool
}

// run parses flags, configures logging, and dispatches to the editor or the
// headless batch runner.
func run(logW io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("gridroute", flag.ContinueOnError)
	flagSet.Usage = func() {
		fmt.Fprint(flagSet.Output(), `
gridroute - 2D grid routing prototype (SDF-biased A*).

Usage:
  gridroute [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var cfg config
	flagSet.StringVar(&cfg.scenarioPath, "scenario", "", "Path to an .hcl scenario file.")
	flagSet.StringVar(&cfg.loadPath, "load", "", "Path to a saved grid archive.")
	flagSet.StringVar(&cfg.savePath, "save", "", "Archive path to write results to.")
	flagSet.BoolVar(&cfg.edit, "edit", false, "Open the interactive editor instead of running headless.")
	logFormat := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevel := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}

		return err
	}
	if err := setupLogging(logW, *logFormat, *logLevel); err != nil {
		return err
	}

	g, opts, paths, err := loadInput(cfg)
	if err != nil {
		return err
	}

	if cfg.edit {
		ed, err := editor.New(g, opts, cfg.savePath)
		if err != nil {
			return err
		}

		return ed.Run()
	}

	return runHeadless(cfg, g, opts, paths)
}

// loadInput builds the grid and search options from the scenario or archive
// flag; exactly one of the two must be given.
func loadInput(cfg config) (*grid.Grid, astar.Options, map[gridio.PathKey][]grid.Coord, error) {
	switch {
	case cfg.scenarioPath != "" && cfg.loadPath != "":
		return nil, astar.Options{}, nil, fmt.Errorf("use either -scenario or -load, not both")
	case cfg.scenarioPath != "":
		sc, err := scenario.Load(cfg.scenarioPath)
		if err != nil {
			return nil, astar.Options{}, nil, err
		}
		slog.Info("scenario loaded", "path", cfg.scenarioPath,
			"width", sc.Grid.Width(), "height", sc.Grid.Height(),
			"starts", len(sc.Grid.Starts()), "ends", len(sc.Grid.Ends()))

		return sc.Grid, sc.Options, nil, nil
	case cfg.loadPath != "":
		g, paths, err := gridio.LoadFile(cfg.loadPath)
		if err != nil {
			return nil, astar.Options{}, nil, err
		}
		slog.Info("archive loaded", "path", cfg.loadPath,
			"width", g.Width(), "height", g.Height(), "paths", len(paths))

		return g, astar.DefaultOptions(), paths, nil
	default:
		return nil, astar.Options{}, nil, fmt.Errorf("one of -scenario or -load is required")
	}
}

// runHeadless routes every start marker against every end marker, logs a
// per-pair summary, and saves the archive when requested. Stored paths from
// a loaded archive are discarded: the core regenerates them.
func runHeadless(cfg config, g *grid.Grid, opts astar.Options, _ map[gridio.PathKey][]grid.Coord) error {
	starts := g.Starts()
	ends := g.Ends()
	if len(starts) == 0 || len(ends) == 0 {
		return fmt.Errorf("grid has no start/end markers to route")
	}

	eng, err := astar.NewEngine(g)
	if err != nil {
		return err
	}
	startAt := make([]grid.Coord, len(starts))
	for i, m := range starts {
		startAt[i] = m.At
	}
	endAt := make([]grid.Coord, len(ends))
	for i, m := range ends {
		endAt[i] = m.At
	}

	results := eng.Batch(startAt, endAt, optionSetters(opts)...)

	paths := make(map[gridio.PathKey][]grid.Coord)
	for _, s := range starts {
		for _, d := range ends {
			res := results[astar.Pair{Start: s.At, Goal: d.At}]
			logger := slog.With("start", s.ID, "end", d.ID, "outcome", res.Outcome.String())
			switch res.Outcome {
			case astar.Found:
				logger.Info("pair routed", "cells", len(res.Path), "cost", res.Cost, "expanded", res.Expanded)
				paths[gridio.PathKey{StartID: s.ID, EndID: d.ID}] = res.Path
			default:
				logger.Warn("pair not routed", "expanded", res.Expanded)
			}
		}
	}

	if cfg.savePath != "" {
		if err := gridio.SaveFile(cfg.savePath, g, paths); err != nil {
			return err
		}
		slog.Info("archive saved", "path", cfg.savePath, "paths", len(paths))
	}

	return nil
}

// optionSetters converts an Options value into functional options.
func optionSetters(opts astar.Options) []astar.Option {
	setters := []astar.Option{
		astar.WithSDFWeight(opts.SDFWeight),
		astar.WithEpsilon(opts.Epsilon),
		astar.WithMaxIterations(opts.MaxIterations),
	}
	if opts.AllowDiagonal {
		setters = append(setters, astar.WithDiagonal())
	}

	return setters
}

// setupLogging installs the default slog handler per the format and level
// flags.
func setupLogging(w io.Writer, format, level string) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}

	return nil
}
