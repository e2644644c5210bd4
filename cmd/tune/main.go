// Command tune drives the tuning workflow from the shell: run a task
// file end to end, inspect a tuning log, or benchmark the transformer
// block with a tuned schedule.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/icemelon9/tensortune/internal/driver"
	"github.com/icemelon9/tensortune/internal/model"
	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/pkg/config"
	"github.com/icemelon9/tensortune/pkg/logger"
)

const usage = `usage: tune <command> [flags]

commands:
  tune   run a tuning task file and print the best configuration
  best   print the best trial recorded in a tuning log
  bench  benchmark the decoder block with schedules from a tuning log
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "tune":
		err = runTune(os.Args[2:])
	case "best":
		err = runBest(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "tune: unknown command %q\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tune: %v\n", err)
		os.Exit(1)
	}
}

func runTune(args []string) error {
	flags := flag.NewFlagSet("tune", flag.ExitOnError)
	taskPath := flags.String("task", "", "path to the task YAML file")
	logPath := flags.String("log", "", "tuning log path (overrides the task file)")
	trials := flags.Int("trials", 0, "trial budget (overrides the task file)")
	tunerName := flags.String("tuner", "", "tuner name (overrides the task file)")
	logLevel := flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Parse(args)

	if *taskPath == "" {
		return errors.New("-task is required")
	}
	logger.SetDefault(logger.NewText(*logLevel, os.Stderr))

	task, err := config.LoadTask(*taskPath)
	if err != nil {
		return err
	}
	if *trials > 0 {
		task.Tuning.Trials = *trials
	}
	if *tunerName != "" {
		task.Tuning.Tuner = *tunerName
	}
	if *logPath != "" {
		task.Log.Path = *logPath
	}

	var w *record.Writer
	var prior []record.Trial
	if task.Log.Path != "" {
		prior, err = record.ReadLog(task.Log.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		w, err = record.NewWriter(task.Log.Path)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	d, err := driver.New(task, w, driver.WithProgress(func(p driver.Progress) {
		fmt.Fprintf(os.Stderr, "\rtrials %d (failed %d)  best %.4f ms", p.TrialsDone, p.TrialsFailed, p.BestCostMs)
	}))
	if err != nil {
		return err
	}
	if len(prior) > 0 {
		d.Warmup(prior)
		fmt.Fprintf(os.Stderr, "resuming from %d logged trials\n", len(prior))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := d.Run(ctx)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"best_config":        res.BestConfig.Values(),
		"best_cost_ms":       res.BestCostMs,
		"trials":             res.TotalTrials,
		"failed":             res.FailedTrials,
		"converged":          res.Converged,
		"convergence_reason": res.ConvergenceReason,
		"duration_ms":        res.Duration.Milliseconds(),
	})
}

func runBest(args []string) error {
	flags := flag.NewFlagSet("best", flag.ExitOnError)
	logPath := flags.String("log", "", "tuning log path")
	flags.Parse(args)

	if *logPath == "" {
		return errors.New("-log is required")
	}
	trials, err := record.ReadLog(*logPath)
	if err != nil {
		return err
	}
	best, err := record.Best(trials)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{
		"best_config":  best.Config,
		"best_cost_ms": best.CostMs,
		"trials":       len(trials),
	})
}

func runBench(args []string) error {
	flags := flag.NewFlagSet("bench", flag.ExitOnError)
	logPath := flags.String("log", "", "tuning log supplying the gemm schedule (optional)")
	embed := flags.Int("embed", 256, "embedding dimension")
	heads := flags.Int("heads", 8, "attention heads")
	mlp := flags.Int("mlp", 1024, "MLP hidden dimension")
	maxSeq := flags.Int("max-seq", 512, "KV cache capacity")
	warmup := flags.Int("warmup", 4, "untimed decode steps")
	steps := flags.Int("steps", 64, "timed decode steps")
	validate := flags.Int("validate", 8, "decode steps checked against the reference (0 = skip)")
	seed := flags.Int64("seed", 1, "weight initialization seed")
	logLevel := flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Parse(args)

	logger.SetDefault(logger.NewText(*logLevel, os.Stderr))

	sched := model.DefaultSchedules()
	if *logPath != "" {
		var err error
		sched, err = model.LoadTuned(*logPath)
		if err != nil {
			return err
		}
	}

	block, err := model.NewBlock(model.BlockConfig{
		EmbedDim: *embed,
		NumHeads: *heads,
		MLPDim:   *mlp,
		MaxSeq:   *maxSeq,
		Seed:     *seed,
	}, sched)
	if err != nil {
		return err
	}

	out := map[string]any{}
	if *validate > 0 {
		diff, err := block.Validate(*validate)
		if err != nil {
			return err
		}
		out["max_abs_diff"] = diff
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := block.Benchmark(ctx, model.BenchmarkOptions{Warmup: *warmup, Steps: *steps})
	if err != nil {
		return err
	}
	out["benchmark"] = res
	return printJSON(out)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
