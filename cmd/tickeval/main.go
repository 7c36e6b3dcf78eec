package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/podhmo/tickeval"
	"github.com/podhmo/tickeval/expr"
	"github.com/podhmo/tickeval/game/invaders"
	"github.com/podhmo/tickeval/interp"
)

type options struct {
	configPath  string
	programName string
	logLevel    string
	trace       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&opts.programName, "program", "all", "sample program to run, or all ("+strings.Join(sampleNames(), ", ")+")")
	flag.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	flag.BoolVar(&opts.trace, "trace", false, "print the evaluation state after every tick")
	flag.Parse()

	if err := run(context.Background(), os.Stdout, opts); err != nil {
		log.Fatalf("!! %+v", err)
	}
}

func run(ctx context.Context, w io.Writer, opts options) error {
	cfg := tickeval.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := tickeval.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	if opts.programName == "all" {
		return runAll(ctx, w, cfg, logger)
	}
	program, ok := samples[opts.programName]
	if !ok {
		return fmt.Errorf("unknown program %q", opts.programName)
	}
	return runOne(w, cfg, logger, program, opts.trace)
}

func runAll(ctx context.Context, w io.Writer, cfg *tickeval.Config, logger *slog.Logger) error {
	names := sampleNames()
	programs := make([]*expr.Application, len(names))
	for i, name := range names {
		programs[i] = samples[name]
	}

	results, err := cfg.Evaluator(logger).Evaluate(ctx, programs)
	if err != nil {
		return fmt.Errorf("evaluating samples: %w", err)
	}
	for i, r := range results {
		fmt.Fprintf(w, "%-8s won=%-5v ticks=%-4d steps=%-5d rounds=%-4d exhausted=%v\t%s\n",
			names[i], r.Won, r.Stats.Ticks, r.Stats.Steps, r.Stats.Rounds, r.Exhausted, r.Program)
	}
	return nil
}

func runOne(w io.Writer, cfg *tickeval.Config, logger *slog.Logger, program *expr.Application, trace bool) error {
	if err := expr.Validate(program); err != nil {
		return err
	}
	g := invaders.New(cfg.Game)
	in := interp.New(program, g, interp.WithLogger(logger))

	if trace {
		fmt.Fprintf(w, "%s\n%s\n\n", g, in.TraceString())
	}
	for !g.Finished() && in.Stats().Steps < cfg.MaxSteps {
		in.RunUntilEnvironmentAdvances()
		if trace {
			fmt.Fprintf(w, "%s\n%s\n\n", g, in.TraceString())
		}
	}

	st := in.Stats()
	fmt.Fprintf(w, "won=%v ticks=%d steps=%d rounds=%d actions=%d\n", g.Won(), st.Ticks, st.Steps, st.Rounds, st.Actions)
	return nil
}
