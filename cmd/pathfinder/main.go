// SPDX-License-Identifier: MIT

// Command pathfinder finds shortest delivery routes across a road network.
//
// Usage:
//
//	pathfinder [demo|route|interactive|serve|export] [flags]
//
// Settings come from defaults, ./pathfinder.toml, PATHFINDER_* variables and
// flags, in that order of priority. Run with --help for the flag list.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/internal/config"
	"github.com/katalvlaran/pathfinder/internal/logging"
	"github.com/katalvlaran/pathfinder/internal/planner"
	"github.com/katalvlaran/pathfinder/internal/report"
	"github.com/katalvlaran/pathfinder/internal/server"
	"github.com/katalvlaran/pathfinder/internal/watch"
	"github.com/katalvlaran/pathfinder/network"
)

// exitError carries a process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func main() {
	slog.SetDefault(slog.New(logging.NewCompactHandler(os.Stderr, nil)))

	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "pathfinder:", err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

// run executes one invocation. Reports go to out, logs and usage to errW.
func run(ctx context.Context, in io.Reader, out, errW io.Writer, args []string) error {
	fs := config.NewFlagSet("pathfinder")
	fs.SetOutput(errW)
	demo := fs.BoolP("demo", "d", false, "shorthand for --mode demo")
	interactive := fs.BoolP("interactive", "i", false, "shorthand for --mode interactive")
	fs.Usage = func() {
		fmt.Fprintln(errW, "Usage: pathfinder [demo|route|interactive|serve|export] [flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return &exitError{code: 2, err: err}
	}
	if err := selectMode(fs, *demo, *interactive); err != nil {
		return &exitError{code: 2, err: err}
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return &exitError{code: 2, err: err}
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger, err := logging.New(errW, level, cfg.Log.Format)
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	ctx = logging.WithLogger(ctx, logger)

	net, err := loadNetwork(cfg.Network)
	if err != nil {
		return err
	}
	p, err := planner.New(ctx, net, planner.WithFrontier(cfg.FrontierValue()))
	if err != nil {
		return err
	}
	printer := report.New(out, report.ColorEnabled(cfg.Color))

	switch cfg.Mode {
	case config.ModeRoute:
		return runRoute(ctx, printer, p, cfg.From, cfg.To)
	case config.ModeInteractive:
		ctx, stop := startWatch(ctx, cfg, p)
		defer stop()
		return runInteractive(ctx, in, printer, p)
	case config.ModeServe:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, stopWatch := startWatch(ctx, cfg, p)
		defer stopWatch()
		return server.New(p, logger).Run(ctx, cfg.Addr)
	case config.ModeExport:
		_, err := out.Write(network.Encode(p.Network()))
		return err
	default:
		runDemo(ctx, printer, p, cfg.FrontierValue())
		return nil
	}
}

// selectMode folds the positional mode and the -d/-i shorthands into --mode.
func selectMode(fs *pflag.FlagSet, demo, interactive bool) error {
	var mode string
	switch {
	case fs.NArg() > 1:
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args()[1:], " "))
	case fs.NArg() == 1:
		mode = fs.Arg(0)
	case demo && interactive:
		return errors.New("--demo and --interactive are mutually exclusive")
	case demo:
		mode = config.ModeDemo
	case interactive:
		mode = config.ModeInteractive
	default:
		return nil
	}

	return fs.Set("mode", mode)
}

func loadNetwork(path string) (*network.Network, error) {
	if path == "" {
		return network.Sample(), nil
	}

	return network.Load(path)
}

// startWatch runs a file watcher for the lifetime of the returned context.
func startWatch(ctx context.Context, cfg *config.Config, p *planner.Planner) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	if !cfg.Watch {
		return ctx, cancel
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := watch.New(cfg.Network, p).Run(ctx); err != nil {
			logging.FromContext(ctx).Error("watcher stopped", "error", err)
		}
	}()

	return ctx, func() {
		cancel()
		<-done
	}
}

func runDemo(ctx context.Context, pr *report.Printer, p *planner.Planner, f dijkstra.Frontier) {
	pr.Banner("PathFinder - Demo Mode")
	pr.Network(p.Locations())
	pr.Islands(p.Islands())

	for _, q := range demoRoutes(p) {
		pr.Searching(q[0], q[1])
		res, err := p.Find(ctx, q[0], q[1])
		if err != nil {
			logging.FromContext(ctx).Error("demo route failed", "from", q[0], "to", q[1], "error", err)
			continue
		}
		pr.Route(res)
	}

	pr.Analysis(f)
}

// demoRoutes returns the sample queries that the active network can answer,
// or a first-to-last query for other networks.
func demoRoutes(p *planner.Planner) [][2]string {
	var routes [][2]string
	for _, q := range network.SampleRoutes() {
		if p.Has(q[0]) && p.Has(q[1]) {
			routes = append(routes, q)
		}
	}
	if len(routes) == 0 {
		if locs := p.Locations(); len(locs) > 1 {
			routes = append(routes, [2]string{locs[0].Name, locs[len(locs)-1].Name})
		}
	}

	return routes
}

func runRoute(ctx context.Context, pr *report.Printer, p *planner.Planner, from, to string) error {
	pr.Searching(from, to)
	res, err := p.Find(ctx, from, to)
	if err != nil {
		return err
	}
	pr.Route(res)
	pr.Legs(res)

	stops, found, err := p.FewestStops(ctx, from, to)
	if err != nil {
		return err
	}
	pr.Stops(stops, found)

	return nil
}

func runInteractive(ctx context.Context, in io.Reader, pr *report.Printer, p *planner.Planner) error {
	pr.Banner("PathFinder - Shortest Route Calculator")
	pr.Network(p.Locations())

	lines := bufio.NewScanner(in)
	ask := func(prompt string) (string, bool) {
		pr.Prompt(prompt)
		if !lines.Scan() {
			return "", false
		}
		return strings.TrimSpace(lines.Text()), true
	}

	for ctx.Err() == nil {
		pr.Separator()
		from, ok := ask(`Enter starting location (or "quit"): `)
		if !ok || strings.EqualFold(from, "quit") {
			break
		}
		if !p.Has(from) {
			pr.UnknownLocation(from)
			continue
		}

		to, ok := ask("Enter destination location: ")
		if !ok {
			break
		}
		if !p.Has(to) {
			pr.UnknownLocation(to)
			continue
		}

		if err := answer(ctx, pr, p, from, to); err != nil {
			return err
		}
	}
	pr.Goodbye()

	return lines.Err()
}

// answer prints one interactive route. A location that disappeared in a
// reload since it was entered is reported like any unknown name.
func answer(ctx context.Context, pr *report.Printer, p *planner.Planner, from, to string) error {
	pr.Searching(from, to)
	res, err := p.Find(ctx, from, to)
	if errors.Is(err, planner.ErrUnknownLocation) {
		name := from
		if p.Has(from) {
			name = to
		}
		pr.UnknownLocation(name)
		return nil
	}
	if err != nil {
		return err
	}
	pr.Route(res)

	return nil
}
