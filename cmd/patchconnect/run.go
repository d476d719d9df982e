package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnpfay/PatchConnect/connectivity"
	"github.com/johnpfay/PatchConnect/extract"
	"github.com/johnpfay/PatchConnect/internal/config"
	"github.com/johnpfay/PatchConnect/internal/store"
	"github.com/johnpfay/PatchConnect/report"
	"github.com/johnpfay/PatchConnect/spanning"
	"github.com/johnpfay/PatchConnect/sweep"
)

func newRunCmd() *cobra.Command {
	var (
		cfgPath string
		workers int
		dbPath  string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline described by a YAML configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			// Flags override the file.
			if cmd.Flags().Changed("workers") {
				cfg.Extract.Workers = workers
			}
			if cmd.Flags().Changed("db") {
				cfg.Store.Path = dbPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runPipeline(cmd.Context(), cfg, cfgPath)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "patchconnect.yaml", "run configuration")
	f.IntVarP(&workers, "workers", "w", 0, "concurrent solves; 0 uses every CPU")
	f.StringVar(&dbPath, "db", "", "SQLite database recording the run")

	return cmd
}

// runPipeline extracts edges, then writes every table the configuration asks
// for and records the run when a store is configured.
func runPipeline(ctx context.Context, cfg *config.RunConfig, label string) error {
	logger := slog.Default().With(slog.String("component", "run"))
	start := time.Now()

	// 1. Landscape
	src := gridSource{patches: cfg.Input.Patches, cost: cfg.Input.Cost, conn: cfg.Input.Conn, cellSize: cfg.Input.CellSize}
	grid, hdr, err := src.load()
	if err != nil {
		return err
	}
	logger.Info("landscape", slog.Int("width", grid.Width), slog.Int("height", grid.Height), slog.Int("patches", len(grid.Patches())))

	// 2. Edges
	opts := []extract.Option{
		extract.WithMaxCost(cfg.EffectiveMaxCost()),
		extract.WithLogger(slog.Default()),
	}
	if cfg.Extract.Workers > 0 {
		opts = append(opts, extract.WithWorkers(cfg.Extract.Workers))
	}
	if cfg.Extract.Paths {
		opts = append(opts, extract.WithPaths())
	}
	if cfg.Extract.Fields {
		opts = append(opts, extract.WithRetainFields())
	}
	res, err := extract.Run(ctx, grid, opts...)
	if err != nil {
		return err
	}
	var paths, fields string
	if cfg.Extract.Paths {
		paths = cfg.OutputPath(cfg.Output.Paths)
	}
	if cfg.Extract.Fields {
		fields = cfg.OutputPath(cfg.Output.Fields)
	}
	prec := cfg.Output.Precision
	if err := writeExtraction(io.Discard, res, hdr.GeoTransform(), cfg.OutputPath(cfg.Output.Edges), paths, fields, prec); err != nil {
		return err
	}

	// 3. Analyses
	g, err := res.Graph()
	if err != nil {
		return err
	}
	snaps, err := sweep.Thresholds(g, cfg.Sweep.Min, cfg.Sweep.Max, cfg.Sweep.Step, sweepOptions(cfg)...)
	if err != nil {
		return err
	}
	// Sensitivity is measured on the widest network of the sweep.
	sv := g.View()
	if cfg.Sweep.Max > 0 {
		sv = sv.WithinThreshold(cfg.Sweep.Max)
	}
	sens, err := sweep.Sensitivity(sv)
	if err != nil {
		return err
	}
	tree, total := spanning.Kruskal(g.View())
	var attrs []connectivity.PatchAttributes
	if cfg.Attributes.MaxDistance > 0 {
		attrs, err = connectivity.Attributes(g, hectares(res.Patches), cfg.Attributes.MaxDistance)
		if err != nil {
			return err
		}
	}

	// 4. Tables
	tables := []table{
		{cfg.OutputPath(cfg.Output.Thresholds), func(w io.Writer) error { return report.WriteThresholds(w, snaps) }},
		{cfg.OutputPath(cfg.Output.Sensitivity), func(w io.Writer) error { return report.WriteSensitivity(w, sens) }},
		{cfg.OutputPath(cfg.Output.Spanning), func(w io.Writer) error { return report.WriteSpanning(w, tree, prec) }},
	}
	if attrs != nil {
		tables = append(tables, table{cfg.OutputPath(cfg.Output.Attributes), func(w io.Writer) error { return report.WriteAttributes(w, attrs) }})
	}
	for _, t := range tables {
		if t.path == "" {
			continue
		}
		if err := writeTo(t.path, io.Discard, t.write); err != nil {
			return err
		}
	}

	// 5. Store
	if cfg.Store.Path != "" {
		id, err := record(ctx, cfg, label, grid.Digest(), res, snaps, sens, attrs)
		if err != nil {
			return err
		}
		logger.Info("recorded", slog.String("run", id), slog.String("db", cfg.Store.Path))
	}

	logger.Info("done",
		slog.Int("edges", len(res.Edges)),
		slog.Int("components", g.View().ComponentCount()),
		slog.Float64("spanning_total", total),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}

// table is one output file and its writer.
type table struct {
	path  string
	write func(io.Writer) error
}

func sweepOptions(cfg *config.RunConfig) []sweep.Option {
	if cfg.Sweep.EarlyStop {
		return []sweep.Option{sweep.WithEarlyStop()}
	}

	return nil
}

// record stores a run and its tables.
func record(ctx context.Context, cfg *config.RunConfig, label, digest string, res *extract.Result,
	snaps []sweep.Snapshot, sens []sweep.NodeSensitivity, attrs []connectivity.PatchAttributes) (string, error) {
	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	params := map[string]any{
		"conn":         cfg.Input.Conn,
		"max_cost":     cfg.Extract.MaxCost,
		"sweep_min":    cfg.Sweep.Min,
		"sweep_max":    cfg.Sweep.Max,
		"sweep_step":   cfg.Sweep.Step,
		"max_distance": cfg.Attributes.MaxDistance,
	}
	id, err := db.CreateRun(ctx, digest, label, params)
	if err != nil {
		return "", err
	}
	if err := db.SaveEdges(ctx, id, res.Edges); err != nil {
		return "", err
	}
	if err := db.SaveThresholds(ctx, id, snaps); err != nil {
		return "", err
	}
	if err := db.SaveSensitivity(ctx, id, sens); err != nil {
		return "", err
	}
	if len(attrs) > 0 {
		if err := db.SaveAttributes(ctx, id, attrs); err != nil {
			return "", err
		}
	}

	return id, nil
}

func newRunsCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List runs recorded in a database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.Runs(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range runs {
				edges, err := db.LoadEdges(cmd.Context(), r.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d edges\t%s\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.GridDigest[:min(12, len(r.GridDigest))], len(edges), r.Label)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "patchconnect.db", "SQLite database")

	return cmd
}
