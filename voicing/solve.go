// Package voicing - unified dispatcher for the path-selection strategies.
//
// This file provides the canonical entry points:
//
//   - Solve:   validate the inputs and route to the requested Algorithm.
//   - Compare: run several strategies side by side (concurrently, since the
//     solvers are pure) and time each of them.
package voicing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/polynizer/fretpath/chord"
)

// Solve routes to the strategy selected by WithAlgorithm (AlgoDynamic by
// default).
//
// Errors: those of the selected solver, or ErrUnsupportedAlgorithm.
func Solve(song []string, src chord.Source, opts ...Option) (Result, error) {
	cfg := resolve(opts)

	switch cfg.Algorithm {
	case AlgoDynamic:
		return Dynamic(song, src, opts...)

	case AlgoExhaustive:
		return Exhaustive(song, src, opts...)

	case AlgoGreedy:
		return Greedy(song, src, opts...)

	default:
		return Result{Algorithm: cfg.Algorithm, Cost: math.Inf(1)},
			fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}
}

// Run is the outcome of one strategy inside Compare.
type Run struct {
	Algorithm Algorithm
	Result    Result
	Elapsed   time.Duration

	// Err holds a per-strategy outcome that does not abort the comparison:
	// ErrNoSolution or ErrSequenceTooLong.
	Err error
}

// Compare runs each strategy in algos (all of Algorithms when empty) on the
// same song and returns the runs in the order requested.
//
// The source is wrapped in a chord.Cache (unless it already is one), so
// every chord is extracted once and shared by the concurrent solvers.
//
// Contracts:
//   - Inputs are validated once up front; precondition failures
//     (ErrEmptySequence, ErrNilSource, missing chord) abort with an error.
//   - ErrNoSolution and ErrSequenceTooLong are recorded on the Run instead.
//   - ctx cancellation stops strategies that have not started yet.
func Compare(ctx context.Context, song []string, src chord.Source, algos []Algorithm, opts ...Option) ([]Run, error) {
	if len(algos) == 0 {
		algos = Algorithms
	}
	for _, a := range algos {
		switch a {
		case AlgoDynamic, AlgoExhaustive, AlgoGreedy:
		default:
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
		}
	}

	if src == nil {
		return nil, ErrNilSource
	}
	cache, ok := src.(*chord.Cache)
	if !ok {
		cache = chord.NewCache(src)
	}
	if _, err := layers(song, cache); err != nil {
		return nil, err
	}

	runs := make([]Run, len(algos))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range algos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			runOpts := append(append([]Option(nil), opts...), WithAlgorithm(a))

			start := time.Now()
			res, err := Solve(song, cache, runOpts...)
			runs[i] = Run{Algorithm: a, Result: res, Elapsed: time.Since(start)}

			switch {
			case err == nil:
				return nil
			case errors.Is(err, ErrNoSolution), errors.Is(err, ErrSequenceTooLong):
				runs[i].Err = err
				return nil
			default:
				return err
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return runs, nil
}
