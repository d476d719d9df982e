package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/johnpfay/PatchConnect/connectivity"
	"github.com/johnpfay/PatchConnect/report"
	"github.com/johnpfay/PatchConnect/spanning"
	"github.com/johnpfay/PatchConnect/sweep"
)

func defaultWorkers() int { return runtime.NumCPU() }

func newSummarizeCmd() *cobra.Command {
	var (
		edges          string
		out            string
		minT, maxT, dt float64
		earlyStop      bool
	)
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Component count and diameter over a threshold sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := readGraph(edges, cmd.InOrStdin())
			if err != nil {
				return err
			}
			var opts []sweep.Option
			if earlyStop {
				opts = append(opts, sweep.WithEarlyStop())
			}
			snaps, err := sweep.Thresholds(g, minT, maxT, dt, opts...)
			if err != nil {
				return err
			}
			slog.Debug("thresholds", slog.Int("snapshots", len(snaps)))

			return writeTo(out, cmd.OutOrStdout(), func(w io.Writer) error {
				return report.WriteThresholds(w, snaps)
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&edges, "edges", "e", "-", "edge list input")
	f.StringVarP(&out, "out", "o", "-", "threshold table output")
	f.Float64Var(&minT, "min", 0, "first threshold")
	f.Float64Var(&maxT, "max", 0, "last threshold")
	f.Float64Var(&dt, "step", 100, "threshold increment")
	f.BoolVar(&earlyStop, "early-stop", false, "stop once the graph is connected")
	_ = cmd.MarkFlagRequired("max")

	return cmd
}

func newSensitivityCmd() *cobra.Command {
	var (
		edges     string
		out       string
		threshold float64
	)
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Cut nodes and diameter change when each patch is removed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := readGraph(edges, cmd.InOrStdin())
			if err != nil {
				return err
			}
			v := g.View()
			if threshold > 0 {
				v = v.WithinThreshold(threshold)
			}
			rows, err := sweep.Sensitivity(v)
			if err != nil {
				return err
			}

			return writeTo(out, cmd.OutOrStdout(), func(w io.Writer) error {
				return report.WriteSensitivity(w, rows)
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&edges, "edges", "e", "-", "edge list input")
	f.StringVarP(&out, "out", "o", "-", "sensitivity table output")
	f.Float64Var(&threshold, "threshold", 0, "keep only links with cost ≤ threshold; 0 keeps all")

	return cmd
}

func newAttributesCmd() *cobra.Command {
	var (
		edges       string
		src         gridSource
		out         string
		maxDistance float64
	)
	cmd := &cobra.Command{
		Use:   "attributes",
		Short: "Per-patch connected area and centrality table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := readGraph(edges, cmd.InOrStdin())
			if err != nil {
				return err
			}
			grid, _, err := src.load()
			if err != nil {
				return err
			}
			rows, err := connectivity.Attributes(g, hectares(grid.Patches()), maxDistance)
			if err != nil {
				return err
			}

			return writeTo(out, cmd.OutOrStdout(), func(w io.Writer) error {
				return report.WriteAttributes(w, rows)
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&edges, "edges", "e", "-", "edge list input")
	f.StringVar(&src.patches, "patches", "", "patch raster (ESRI ASCII) for areas")
	f.IntVar(&src.conn, "conn", 8, "cell connectivity, 4 or 8")
	f.Float64Var(&src.cellSize, "cell-size", 0, "override the raster cell size")
	f.StringVarP(&out, "out", "o", "-", "attribute table output")
	f.Float64Var(&maxDistance, "max-distance", 0, "largest link cost kept; also sets the distance decay")
	_ = cmd.MarkFlagRequired("patches")
	_ = cmd.MarkFlagRequired("max-distance")

	return cmd
}

func newMSTCmd() *cobra.Command {
	var (
		edges     string
		out       string
		method    string
		root      int
		threshold float64
		precision int
	)
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning forest of the patch graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := readGraph(edges, cmd.InOrStdin())
			if err != nil {
				return err
			}
			v := g.View()
			if threshold > 0 {
				v = v.WithinThreshold(threshold)
			}
			opts := []spanning.Option{spanning.WithMethod(method)}
			if cmd.Flags().Changed("root") {
				opts = append(opts, spanning.WithRoot(root))
			}
			tree, total, err := spanning.Compute(v, opts...)
			if err != nil {
				return err
			}
			slog.Info("spanning", slog.Int("edges", len(tree)), slog.String("total", fmt.Sprintf("%.*f", precision, total)))

			return writeTo(out, cmd.OutOrStdout(), func(w io.Writer) error {
				return report.WriteSpanning(w, tree, precision)
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&edges, "edges", "e", "-", "edge list input")
	f.StringVarP(&out, "out", "o", "-", "spanning table output")
	f.StringVar(&method, "method", spanning.MethodKruskal, "kruskal (forest) or prim (tree of --root)")
	f.IntVar(&root, "root", 0, "start patch for prim")
	f.Float64Var(&threshold, "threshold", 0, "keep only links with cost ≤ threshold; 0 keeps all")
	f.IntVar(&precision, "precision", report.DefaultPrecision, "decimals for costs")

	return cmd
}
