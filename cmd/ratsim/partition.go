package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridzone/ratsim/config"
	"github.com/gridzone/ratsim/graphfile"
	"github.com/gridzone/ratsim/partition"
)

// partitionCmd mirrors the root command's -z flag as an explicit
// subcommand, grounded in the original sequential build's -z preview
// (original_source/code/crun.c): it never runs the simulation.
var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Print the region-to-zone assignment and exit",
	RunE:  runPartition,
}

func init() {
	partitionCmd.Flags().StringP("graph", "g", "", "grid graph file (required)")
	partitionCmd.Flags().IntP("zones", "z", 2, "number of zones to partition across")
	partitionCmd.MarkFlagRequired("graph")
}

func runPartition(cmd *cobra.Command, args []string) error {
	graphPath, err := cmd.Flags().GetString("graph")
	if err != nil {
		return err
	}
	zoneCount, err := cmd.Flags().GetInt("zones")
	if err != nil {
		return err
	}

	f, err := os.Open(graphPath)
	if err != nil {
		return fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()

	cfg := &config.Config{GraphFile: graphPath, ZonePreview: zoneCount}

	return previewPartitionFile(cfg, f, cmd.OutOrStdout())
}

// previewPartition opens cfg.GraphFile itself; it backs the root
// command's -z flag.
func previewPartition(cfg *config.Config, out io.Writer) error {
	f, err := os.Open(cfg.GraphFile)
	if err != nil {
		return fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()

	return previewPartitionFile(cfg, f, out)
}

func previewPartitionFile(cfg *config.Config, r io.Reader, out io.Writer) error {
	parsed, err := graphfile.Parse(r)
	if err != nil {
		return err
	}
	if len(parsed.Regions) == 0 {
		return fmt.Errorf("partition preview requires a graph file with region rectangles")
	}

	assigned, err := partition.AssignZones(parsed.Regions, cfg.ZonePreview)
	if err != nil {
		return err
	}

	nodeTotals := make([]int, cfg.ZonePreview)
	edgeTotals := make([]int, cfg.ZonePreview)
	for _, r := range assigned {
		fmt.Fprintf(out, "region %d: x=%d y=%d w=%d h=%d nodes=%d edges=%d -> zone %d\n",
			r.ID, r.X, r.Y, r.W, r.H, r.NodeCount, r.EdgeCount, r.Zone)
		nodeTotals[r.Zone] += r.NodeCount
		edgeTotals[r.Zone] += r.EdgeCount
	}

	nodeFloats := make([]float64, len(nodeTotals))
	edgeFloats := make([]float64, len(edgeTotals))
	for i, n := range nodeTotals {
		nodeFloats[i] = float64(n)
		edgeFloats[i] = float64(edgeTotals[i])
	}
	fmt.Fprintf(out, "zone balance: node stddev=%.2f edge stddev=%.2f\n",
		partition.StdDev(nodeFloats), partition.StdDev(edgeFloats))

	return nil
}
