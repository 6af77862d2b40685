package logging

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"superrats/internal/ga"
)

func TestLoggerWritesCSVAndJSONLines(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "nested", "run.csv")
	jsonPath := filepath.Join(dir, "nested", "run.jsonl")

	logger, err := NewLogger(csvPath, jsonPath)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	var console bytes.Buffer
	logger.SetConsole(&console)
	if err := logger.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	c, err := ga.NewController(ga.DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := c.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if err := logger.LogGeneration(c.Snapshot()); err != nil {
			t.Fatalf("log generation: %v", err)
		}
	}
	logger.Close()

	f, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 4 || rows[0][0] != "generation" || rows[3][0] != "3" {
		t.Fatalf("unexpected csv rows: %v", rows)
	}

	jf, err := os.Open(jsonPath)
	if err != nil {
		t.Fatalf("open jsonl: %v", err)
	}
	defer jf.Close()
	var summaries []GenerationSummary
	scanner := bufio.NewScanner(jf)
	for scanner.Scan() {
		var s GenerationSummary
		if err := json.Unmarshal(scanner.Bytes(), &s); err != nil {
			t.Fatalf("decode line: %v", err)
		}
		summaries = append(summaries, s)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 json lines, got %d", len(summaries))
	}
	h := c.History()
	if summaries[2].MeanWeight != h.Mean[2] || float64(summaries[2].MaxWeight) != h.Max[2] {
		t.Fatalf("summary %+v disagrees with history", summaries[2])
	}
	if summaries[2].Rats != 140 {
		t.Fatalf("expected 140 rats, got %d", summaries[2].Rats)
	}

	if got := strings.Count(console.String(), "\n"); got != 3 {
		t.Fatalf("expected 3 console lines, got %d: %q", got, console.String())
	}
}

func TestLogGenerationBeforeInitIsNoop(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(filepath.Join(dir, "a.csv"), filepath.Join(dir, "a.jsonl"))
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if err := logger.LogGeneration(ga.Snapshot{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.csv")); !os.IsNotExist(err) {
		t.Fatal("expected no csv file before Init")
	}
}

func TestSummarize(t *testing.T) {
	s := ga.Snapshot{
		Generation:  24,
		Population:  ga.Population{300, 100, 500},
		Mean:        300,
		Max:         500,
		Fitness:     0.006,
		Years:       2,
		GoalReached: false,
	}
	got := Summarize(s)
	want := GenerationSummary{Generation: 24, Rats: 3, MeanWeight: 300, MaxWeight: 500, MinWeight: 100, Fitness: 0.006, Years: 2}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLogTopK(t *testing.T) {
	logger := &Logger{}
	var out bytes.Buffer
	logger.SetConsole(&out)
	logger.LogTopK(ga.Population{5, 9, 1}, 5)
	if !strings.Contains(out.String(), "Top 3 rats") || !strings.Contains(out.String(), "#1: 9g") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
