// Package fitness runs many agent programs, each against its own fresh
// environment, and reports how each of them did. It is the oracle an
// evolutionary search calls once per generation.
package fitness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/podhmo/tickeval/expr"
	"github.com/podhmo/tickeval/game"
	"github.com/podhmo/tickeval/interp"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxSteps bounds a single evaluation when Evaluator.MaxSteps is zero.
const DefaultMaxSteps = 100_000

// checkEvery is how many steps run between checks of the context.
const checkEvery = 1024

// Result is the outcome of evaluating one program.
type Result struct {
	RunID   string
	Program *expr.Application

	Won      bool
	Finished bool
	// Exhausted reports that the step budget ran out before the game finished.
	Exhausted bool
	Stats     interp.Stats

	Depth     int
	NodeCount int
}

// Evaluator evaluates programs concurrently.
type Evaluator struct {
	// NewEnvironment returns a fresh environment for one evaluation. It is
	// called from several goroutines at once.
	NewEnvironment func() game.Environment
	// MaxSteps bounds the steps of one evaluation.
	MaxSteps int
	// Concurrency bounds the evaluations running at once; <= 0 means no limit.
	Concurrency int
	Logger      *slog.Logger
}

func (e *Evaluator) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}
	return e.Logger
}

// Evaluate runs every program and returns the results in input order.
// Structurally identical programs are run once and share the result.
// A malformed program fails the whole batch before anything runs.
func (e *Evaluator) Evaluate(ctx context.Context, programs []*expr.Application) ([]Result, error) {
	if e.NewEnvironment == nil {
		return nil, errors.New("fitness: NewEnvironment is required")
	}
	for n, p := range programs {
		if err := expr.Validate(p); err != nil {
			return nil, fmt.Errorf("program %d: %w", n, err)
		}
	}

	// index of the first occurrence of each distinct program
	first := make(map[string]int, len(programs))
	owner := make([]int, len(programs))
	var distinct []int
	for n, p := range programs {
		key := p.String()
		if m, ok := first[key]; ok {
			owner[n] = m
			continue
		}
		first[key] = n
		owner[n] = n
		distinct = append(distinct, n)
	}

	logger := e.logger()
	logger.DebugContext(ctx, "evaluate", "programs", len(programs), "distinct", len(distinct))

	results := make([]Result, len(programs))
	g, ctx := errgroup.WithContext(ctx)
	if e.Concurrency > 0 {
		g.SetLimit(e.Concurrency)
	}
	for _, n := range distinct {
		g.Go(func() error {
			r, err := e.run(ctx, logger, programs[n])
			if err != nil {
				return fmt.Errorf("program %d: %w", n, err)
			}
			results[n] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for n := range programs {
		if m := owner[n]; m != n {
			r := results[m]
			r.Program = programs[n]
			results[n] = r
		}
	}
	return results, nil
}

// Run evaluates a single program against env.
func (e *Evaluator) Run(ctx context.Context, program *expr.Application, env game.Environment) (Result, error) {
	if err := expr.Validate(program); err != nil {
		return Result{}, err
	}
	return e.runWith(ctx, e.logger(), program, env)
}

func (e *Evaluator) run(ctx context.Context, logger *slog.Logger, program *expr.Application) (Result, error) {
	env := e.NewEnvironment()
	if env == nil {
		return Result{}, errors.New("fitness: NewEnvironment returned nil")
	}
	return e.runWith(ctx, logger, program, env)
}

func (e *Evaluator) runWith(ctx context.Context, logger *slog.Logger, program *expr.Application, env game.Environment) (Result, error) {
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	maxSteps := e.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	in := interp.New(program, env, interp.WithLogger(logger))
	steps := 0
	for !env.Finished() {
		if steps == maxSteps {
			break
		}
		if steps%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				logger.DebugContext(ctx, "evaluation cancelled", "steps", steps)
				return Result{}, err
			}
		}
		in.Step()
		steps++
	}

	r := Result{
		RunID:     runID,
		Program:   program,
		Finished:  env.Finished(),
		Won:       env.Finished() && env.Won(),
		Exhausted: !env.Finished(),
		Stats:     in.Stats(),
		Depth:     program.Depth(),
		NodeCount: program.NodeCount(),
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.DebugContext(ctx, "evaluated",
			"program", program.String(),
			"won", r.Won,
			"exhausted", r.Exhausted,
			"ticks", r.Stats.Ticks,
			"steps", r.Stats.Steps,
		)
	}
	return r, nil
}
