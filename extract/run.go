package extract

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/johnpfay/PatchConnect/costdist"
	"github.com/johnpfay/PatchConnect/gridgraph"
)

// Run solves a cost-distance field from every patch of g and collects the
// resulting edge list.
//
// Steps:
//  1. Parse options.
//  2. Fan out one solve per patch, at most Workers at a time. Each solve
//     treats its own patch as free and writes only to slot i of the
//     per-patch arrays.
//  3. Wait for every worker; the first error (or ctx cancellation) aborts
//     the run and no partial Result is returned.
//  4. Concatenate per-patch candidates in patch order. Since patches are
//     ascending and every candidate has To > From, the edge list comes out
//     sorted by (From, To).
func Run(ctx context.Context, g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	patches := g.Patches()
	total := len(patches)
	cands := make([][]Candidate, total)
	paths := make([][]Path, total)
	var fields []PatchField
	if cfg.RetainFields {
		fields = make([]PatchField, total)
	}

	log := cfg.Logger.With(slog.String("component", "extract"))
	log.Debug("run started", slog.Int("patches", total), slog.Int("workers", cfg.Workers))
	began := time.Now()

	// 2) Fan out
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	var mu sync.Mutex
	done := 0

	for i, p := range patches {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()

			field, err := costdist.Solve(g, p.Cells, solveOptions(cfg, p.ID)...)
			if err != nil {
				return fmt.Errorf("extract: patch %d: %w", p.ID, err)
			}
			cands[i] = EdgesFrom(g, field, p.ID)

			if cfg.Paths {
				paths[i] = make([]Path, 0, len(cands[i]))
				for _, c := range cands[i] {
					cells, err := PathTo(field, c.Cell)
					if err != nil {
						return fmt.Errorf("extract: path %d→%d: %w", c.Edge.From, c.Edge.To, err)
					}
					paths[i] = append(paths[i], Path{From: c.Edge.From, To: c.Edge.To, Cost: c.Edge.Cost, Cells: cells})
				}
			}
			if fields != nil {
				fields[i] = PatchField{PatchID: p.ID, Field: field}
			}

			log.Debug("patch solved",
				slog.Int("patch", p.ID),
				slog.Int("edges", len(cands[i])),
				slog.Duration("elapsed", time.Since(start)))

			mu.Lock()
			done++
			if cfg.Progress != nil {
				cfg.Progress(Progress{Patch: p.ID, Done: done, Total: total})
			}
			mu.Unlock()

			return nil
		})
	}

	// 3) Synchronize
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 4) Assemble
	res := &Result{Patches: patches, Fields: fields}
	for i := range patches {
		for _, c := range cands[i] {
			res.Edges = append(res.Edges, c.Edge)
		}
		res.Paths = append(res.Paths, paths[i]...)
	}

	log.Info("run finished",
		slog.Int("patches", total),
		slog.Int("edges", len(res.Edges)),
		slog.Duration("elapsed", time.Since(began)))

	return res, nil
}

// solveOptions maps Run options onto one costdist.Solve call for patch id.
func solveOptions(cfg Options, id int) []costdist.Option {
	opts := []costdist.Option{costdist.WithFreePatch(id)}
	if cfg.Paths {
		opts = append(opts, costdist.WithTraceback())
	}
	if !math.IsInf(cfg.MaxCost, 1) {
		opts = append(opts, costdist.WithMaxCost(cfg.MaxCost))
	}

	return opts
}
