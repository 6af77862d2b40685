package main

import (
	"context"
	"math/rand"
	"path/filepath"
	"reflect"
	"testing"

	"superrats/internal/ga"
	"superrats/internal/logging"
	"superrats/internal/storage"
)

func newRunFixtures(t *testing.T, cfg ga.Config) (*ga.Controller, *logging.Logger, storage.Store) {
	t.Helper()
	ctrl, err := ga.NewController(cfg, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("controller: %v", err)
	}

	dir := t.TempDir()
	logger, err := logging.NewLogger(filepath.Join(dir, "run.csv"), filepath.Join(dir, "run.jsonl"))
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	logger.SetConsole(nil)
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	t.Cleanup(logger.Close)

	store := storage.NewMemoryStore()
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("store init: %v", err)
	}
	return ctrl, logger, store
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	ctrl, logger, store := newRunFixtures(t, ga.DefaultConfig())
	ctx := context.Background()

	summary, err := run(ctx, ctrl, 10, logger, store, "limit", 0)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Generations != 10 || ctrl.Generation() != 10 {
		t.Fatalf("expected 10 generations, got %d/%d", summary.Generations, ctrl.Generation())
	}
	history, ok, err := store.GetHistory(ctx, "limit")
	if err != nil || !ok {
		t.Fatalf("history: %v, %v", ok, err)
	}
	if !reflect.DeepEqual(history, ctrl.History()) {
		t.Fatal("stored history differs from controller history")
	}
}

func TestRunStopsAtGoal(t *testing.T) {
	cfg := ga.DefaultConfig()
	cfg.Goal = 1000
	ctrl, logger, store := newRunFixtures(t, cfg)

	summary, err := run(context.Background(), ctrl, 0, logger, store, "goal", 0)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !summary.GoalReached || !ctrl.GoalReached() {
		t.Fatal("expected goal reached")
	}
	_, max, _ := ctrl.History().Last()
	if max < cfg.Goal {
		t.Fatalf("stopped with max %v below goal", max)
	}
}
