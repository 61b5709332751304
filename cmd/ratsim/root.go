package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridzone/ratsim/config"
	"github.com/gridzone/ratsim/engine"
	"github.com/gridzone/ratsim/logging"
	"github.com/gridzone/ratsim/telemetry"
)

var configFile string

// rootCmd is the ratsim entry point: parse a grid graph and an agent
// file, partition the grid into zones, and run the migration
// simulation, printing one display frame every DisplayInterval steps.
var rootCmd = &cobra.Command{
	Use:   "ratsim",
	Short: "Distributed agent-migration grid simulator",
	Long: `ratsim simulates mobile agents migrating across a partitioned grid
graph, one cooperating goroutine per zone exchanging agents and
boundary weights every step.`,
	RunE: runRoot,
}

func init() {
	config.BindFlags(rootCmd.Flags())
	rootCmd.Flags().StringVar(&configFile, "config", "", "optional config file (yaml/json/toml)")
	rootCmd.AddCommand(partitionCmd)
}

// Execute runs the root command, exiting 1 on any error per spec.md
// §6's "exit 0 on success, 1 on input errors".
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return err
	}

	if cfg.ZonePreview > 0 {
		return previewPartition(cfg, cmd.OutOrStdout())
	}

	log := logging.New(logging.LevelInfo, cmd.ErrOrStderr())
	if cfg.Quiet {
		log = logging.New(logging.LevelError, cmd.ErrOrStderr())
	}

	graph, err := os.Open(cfg.GraphFile)
	if err != nil {
		return fmt.Errorf("opening graph file: %w", err)
	}
	defer graph.Close()

	agents, err := os.Open(cfg.AgentFile)
	if err != nil {
		return fmt.Errorf("opening agent file: %w", err)
	}
	defer agents.Close()

	tracer, shutdown, err := telemetry.Init(cfg.Instrument, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer shutdown(context.Background())

	return engine.Run(context.Background(), cfg, log, tracer, graph, agents, cmd.OutOrStdout())
}
