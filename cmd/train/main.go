package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"superrats/internal/config"
	"superrats/internal/ga"
	"superrats/internal/logging"
	"superrats/internal/storage"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "configs/superrats.yaml", "path to YAML or INI config file")
	generations := flag.Int("generations", 0, "maximum generations to run (0 uses the config's generation_limit)")
	seed := flag.Int64("seed", 0, "random seed (0 uses the config's seed)")
	quiet := flag.Bool("quiet", false, "suppress per-generation console output")
	topN := flag.Int("top", 5, "heaviest rats to print every 10 generations (0 disables)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	limit := cfg.Sim.GenerationLimit
	if *generations > 0 {
		limit = *generations
	}

	rats := cfg.Rats()
	fmt.Println("SuperRats Breeder")
	fmt.Printf("Config: %s, Seed: %d\n", *configPath, cfg.Seed)
	fmt.Printf("Rats: %d, Litter: %d, Retain: %d, Goal: %.0fg\n", rats.PopulationSize, rats.LitterSize, rats.RetainCount, rats.Goal)
	fmt.Printf("Mutation: %.0f%% x[%.2f, %.2f]\n", rats.MutationProbability*100, rats.MutationMultiplierMin, rats.MutationMultiplierMax)
	fmt.Println("---")

	rng := rand.New(rand.NewSource(cfg.Seed))
	ctrl, err := ga.NewController(rats, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating population: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if *quiet || !cfg.Logging.EveryGenSummary {
		logger.SetConsole(nil)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s store: %v\n", cfg.Store.Backend, err)
		os.Exit(1)
	}
	defer storage.CloseIfSupported(store)

	startTime := time.Now()
	summary, err := run(ctx, ctrl, limit, logger, store, cfg.Store.RunID, *topN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error at generation %d: %v\n", ctrl.Generation(), err)
		os.Exit(1)
	}

	summary.Seed = cfg.Seed
	if err := store.SaveRun(ctx, summary); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save run summary: %v\n", err)
	}

	elapsed := time.Since(startTime)
	snap := ctrl.Snapshot()
	fmt.Println("---")
	if snap.GoalReached {
		fmt.Printf("GOAL ACHIEVED! Super rat of %dg after %d generations (%.1f years) in %v\n",
			snap.Max, snap.Generation, snap.Years, elapsed)
	} else {
		fmt.Printf("Stopped after %d generations (%.1f years) in %v; heaviest rat %dg of %.0fg goal\n",
			snap.Generation, snap.Years, elapsed, snap.Max, rats.Goal)
	}
	fmt.Printf("Final: Rats=%d, Avg=%.1fg, Fitness=%.4f\n", len(snap.Population), snap.Mean, snap.Fitness)
}

// run advances ctrl until the goal is reached or limit generations have passed
func run(ctx context.Context, ctrl *ga.Controller, limit int, logger *logging.Logger, store storage.Store, runID string, topN int) (storage.RunRecord, error) {
	if err := store.DeleteRun(ctx, runID); err != nil {
		return storage.RunRecord{}, err
	}

	for limit <= 0 || ctrl.Generation() < limit {
		if _, err := ctrl.Advance(); err != nil {
			return storage.RunRecord{}, err
		}

		snap := ctrl.Snapshot()
		if err := logger.LogGeneration(snap); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to log generation: %v\n", err)
		}
		if err := storage.RecordLatest(ctx, store, runID, ctrl); err != nil {
			return storage.RunRecord{}, err
		}
		if topN > 0 && snap.Generation%10 == 0 {
			logger.LogTopK(snap.Population, topN)
		}

		if ctrl.GoalReached() {
			logger.LogGoal(snap, ctrl.Config().Goal)
			break
		}
	}

	return storage.RunRecord{
		RunID:       runID,
		Config:      ctrl.Config(),
		Generations: ctrl.Generation(),
		GoalReached: ctrl.GoalReached(),
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.Store.Backend == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Store.SQLitePath), 0755); err != nil {
			return nil, err
		}
	}
	store, err := storage.NewStore(cfg.Store.Backend, cfg.Store.SQLitePath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
