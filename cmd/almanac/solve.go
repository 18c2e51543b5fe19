package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-almanac/internal/config"
	"github.com/askiada/go-almanac/internal/log"
	"github.com/askiada/go-almanac/pkg/almanac"
	"github.com/askiada/go-almanac/pkg/rangemap"
	"github.com/askiada/go-almanac/pkg/rangemap/drawer"
	"github.com/askiada/go-almanac/pkg/rangemap/measure"
)

const (
	modeRanges = "ranges"
	modePoints = "points"
)

var errUnknownMode = errors.New("unknown mode")

type solveOptions struct {
	input       string
	format      string
	mode        string
	envFile     string
	dotFile     string
	bruteForce  bool
	concurrency int
}

func solveCmd() *cobra.Command {
	opts := solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the lowest location reachable from the seeds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Concurrency = opts.concurrency
			}

			logger := log.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)

			lowest, err := runSolve(cmd, cfg, logger, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The nearest destination is %d\n", lowest)

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "input.txt", "almanac file")
	cmd.Flags().StringVar(&opts.format, "format", formatAuto, "input format: auto, text or yaml")
	cmd.Flags().StringVar(&opts.mode, "mode", modeRanges, "seed mode: ranges (start/length pairs) or points")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", ".env file to load (default .env if present)")
	cmd.Flags().StringVar(&opts.dotFile, "dot", "", "write the stage graph in DOT format to this file")
	cmd.Flags().BoolVar(&opts.bruteForce, "brute-force", false, "map every seed one by one instead of whole ranges")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 1, "goroutines mapping the intervals of a stage")

	return cmd
}

func runSolve(cmd *cobra.Command, cfg config.Config, logger *slog.Logger, opts solveOptions) (int64, error) {
	alm, err := readAlmanac(opts.input, opts.format)
	if err != nil {
		return 0, err
	}

	msr := measure.NewDefaultMeasure()
	pipeOpts := []rangemap.Option{
		rangemap.WithConcurrency(cfg.Concurrency),
		rangemap.WithHooks(measure.PipelineMeasure(msr), log.PipelineLogger(logger)),
	}

	if opts.dotFile != "" {
		file, err := os.Create(opts.dotFile)
		if err != nil {
			return 0, errors.Wrapf(err, "unable to create %s", opts.dotFile)
		}
		defer file.Close()
		pipeOpts = append(pipeOpts, rangemap.WithHooks(drawer.PipelineDrawer(drawer.NewDOTDrawer(file), msr)))
	}

	pipe, err := alm.Pipeline(pipeOpts...)
	if err != nil {
		return 0, err
	}
	logger.Info("almanac loaded", "seeds", len(alm.Seeds), "stages", len(alm.Sections))

	// the drawer renders on Finish, keep whatever the failed run reached
	lowest, solveErr := solve(cmd, cfg, alm, pipe, opts)
	err = pipe.Finish()
	if solveErr != nil {
		return 0, solveErr
	}
	if err != nil {
		return 0, err
	}

	for name, mt := range msr.AllMetrics() {
		if mt.Calls() == 0 {
			continue
		}
		logger.Debug("stage metric", "stage", name, "avg", mt.AVGDuration(), "max_fan_out", mt.MaxFanOut())
	}

	return lowest, nil
}

func solve(cmd *cobra.Command, cfg config.Config, alm *almanac.Almanac, pipe *rangemap.Pipeline, opts solveOptions) (int64, error) {
	switch opts.mode {
	case modePoints:
		return rangemap.SolvePoints(pipe, alm.Seeds)
	case modeRanges:
		seeds, err := alm.SeedRanges()
		if err != nil {
			return 0, err
		}
		if opts.bruteForce {
			return rangemap.SolveBruteForce(cmd.Context(), pipe, seeds, cfg.BruteForceBudget)
		}

		return rangemap.Solve(cmd.Context(), pipe, seeds)
	default:
		return 0, errors.Wrap(errUnknownMode, opts.mode)
	}
}
