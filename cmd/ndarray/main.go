// Command ndarray runs small demonstrations of the array package: writing
// through the indexing operator, filtered mutation through the cursor, and a
// timing run over a large array.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/ndarray/internal/config"
	"github.com/spf13/cobra"
)

var (
	allocatorKind string
	poolSize      int
	column        int
	configFile    string
	extents       []int
	trials        int
	plot          bool
)

// main registers the demo commands and executes the root command.
// It exits with status 1 if command execution returns an error.
func main() {
	log.SetFlags(0)
	log.SetPrefix("ndarray: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ndarray",
		Short:        "fixed-rank dense array demos",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&allocatorKind, "allocator", config.DefaultAllocator, "buffer allocator (heap|pool)")
	rootCmd.PersistentFlags().IntVar(&poolSize, "pool-size", config.DefaultPoolSize, "buffers kept per length by the pool allocator")

	indexingCmd := &cobra.Command{
		Use:   "indexing",
		Short: "write a 2x2 array through the indexing operator and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			al, err := newAllocator(allocatorKind, poolSize)
			if err != nil {
				return err
			}
			return runIndexing(cmd.OutOrStdout(), al)
		},
	}

	iteratorsCmd := &cobra.Command{
		Use:   "iterators",
		Short: "add y to every cell of one column of a 5x4 array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			al, err := newAllocator(allocatorKind, poolSize)
			if err != nil {
				return err
			}
			return runIterators(cmd.OutOrStdout(), al, column)
		},
	}
	iteratorsCmd.Flags().IntVar(&column, "column", config.DefaultColumn, "x coordinate of the column to update")

	speedCmd := &cobra.Command{
		Use:   "speed",
		Short: "time a filtered mutate pass over a large array",
		Args:  cobra.NoArgs,
		RunE:  runSpeedCmd,
	}
	speedCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	speedCmd.Flags().IntSliceVar(&extents, "extents", config.DefaultExtents, "array extents, dimension 0 first")
	speedCmd.Flags().IntVar(&trials, "trials", config.DefaultTrials, "number of timed runs")
	speedCmd.Flags().IntVar(&column, "column", config.DefaultColumn, "x coordinate of the column to update")
	speedCmd.Flags().BoolVar(&plot, "plot", false, "plot per-trial timings")

	rootCmd.AddCommand(indexingCmd, iteratorsCmd, speedCmd)

	return rootCmd
}

// runSpeedCmd merges the config file (if any) with explicitly set flags.
func runSpeedCmd(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		log.Printf("loaded scenario %s", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("extents") {
		cfg.Extents = extents
	}
	if flags.Changed("trials") {
		cfg.Trials = trials
	}
	if flags.Changed("column") {
		cfg.Column = column
	}
	if flags.Changed("plot") {
		cfg.Plot = plot
	}
	if flags.Changed("allocator") || configFile == "" {
		cfg.Allocator = allocatorKind
	}
	if flags.Changed("pool-size") {
		cfg.PoolSize = poolSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	al, err := newAllocator(cfg.Allocator, cfg.PoolSize)
	if err != nil {
		return err
	}
	log.Printf("speed: extents=%v trials=%d allocator=%s", cfg.Extents, cfg.Trials, cfg.Allocator)

	out := cmd.OutOrStdout()
	res, err := runSpeed(out, cfg, al)
	if err != nil {
		return err
	}
	if cfg.Plot {
		if len(res.Trials) < 2 {
			log.Printf("plot needs at least 2 trials, got %d", len(res.Trials))
			return nil
		}
		fmt.Fprintln(out, plotTrials(res.Trials))
	}

	return nil
}
