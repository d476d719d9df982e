package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnpfay/PatchConnect/extract"
	"github.com/johnpfay/PatchConnect/fieldstack"
	"github.com/johnpfay/PatchConnect/report"
)

func newEdgesCmd() *cobra.Command {
	var (
		src       gridSource
		out       string
		paths     string
		fields    string
		workers   int
		maxCost   float64
		precision int
	)
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "Extract the least-cost patch edge list from rasters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, hdr, err := src.load()
			if err != nil {
				return err
			}
			logger := slog.Default().With(slog.String("component", "edges"))

			opts := []extract.Option{extract.WithWorkers(workers), extract.WithLogger(slog.Default())}
			if maxCost > 0 {
				opts = append(opts, extract.WithMaxCost(maxCost))
			}
			if paths != "" {
				opts = append(opts, extract.WithPaths())
			}
			if fields != "" {
				opts = append(opts, extract.WithRetainFields())
			}

			start := time.Now()
			res, err := extract.Run(cmd.Context(), g, opts...)
			if err != nil {
				return err
			}
			logger.Info("extracted",
				slog.Int("patches", len(res.Patches)),
				slog.Int("edges", len(res.Edges)),
				slog.Duration("elapsed", time.Since(start)))

			return writeExtraction(cmd.OutOrStdout(), res, hdr.GeoTransform(), out, paths, fields, precision)
		},
	}
	f := cmd.Flags()
	f.StringVar(&src.patches, "patches", "", "patch raster (ESRI ASCII)")
	f.StringVar(&src.cost, "cost", "", "cost raster (ESRI ASCII); omit for unit cost")
	f.IntVar(&src.conn, "conn", 8, "cell connectivity, 4 or 8")
	f.Float64Var(&src.cellSize, "cell-size", 0, "override the raster cell size")
	f.StringVarP(&out, "out", "o", "-", "edge list output")
	f.StringVar(&paths, "paths", "", "write least-cost paths as WKT to this file")
	f.StringVar(&fields, "fields", "", "write the stacked cost-distance fields to this file")
	f.IntVarP(&workers, "workers", "w", defaultWorkers(), "concurrent solves")
	f.Float64Var(&maxCost, "max-cost", 0, "cumulative cost cutoff; 0 disables")
	f.IntVar(&precision, "precision", report.DefaultPrecision, "decimals for costs")
	_ = cmd.MarkFlagRequired("patches")

	return cmd
}

// writeExtraction writes the edge list and, when named, paths and fields.
func writeExtraction(stdout io.Writer, res *extract.Result, gt report.GeoTransform, out, paths, fields string, prec int) error {
	if err := writeTo(out, stdout, func(w io.Writer) error {
		return report.WriteEdgeList(w, res.Edges, prec)
	}); err != nil {
		return err
	}
	if paths != "" {
		if err := writeTo(paths, stdout, func(w io.Writer) error {
			return report.WritePaths(report.NewWKTWriter(w, gt, prec), res.Paths)
		}); err != nil {
			return err
		}
	}
	if fields != "" {
		if err := writeTo(fields, stdout, func(w io.Writer) error {
			return fieldstack.Write(w, fieldstack.FromResult(res.Fields))
		}); err != nil {
			return err
		}
	}

	return nil
}
