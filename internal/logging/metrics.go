package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"superrats/internal/ga"
)

// Logger handles all run output: console lines, CSV rows and JSON lines
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	console     io.Writer
	initialized bool
}

// NewLogger creates a new logger
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
		console:  os.Stdout,
	}

	// Ensure directories exist
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// SetConsole redirects the per-generation console line; nil silences it.
func (l *Logger) SetConsole(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.console = w
}

// Init initializes the log files
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"generation", "rats", "mean_weight", "max_weight", "min_weight", "fitness", "years", "goal_reached",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	Generation  int     `json:"generation"`
	Rats        int     `json:"rats"`
	MeanWeight  float64 `json:"mean_weight"`
	MaxWeight   int     `json:"max_weight"`
	MinWeight   int     `json:"min_weight"`
	Fitness     float64 `json:"fitness"`
	Years       float64 `json:"years"`
	GoalReached bool    `json:"goal_reached"`
}

// Summarize condenses a controller snapshot into a log record
func Summarize(s ga.Snapshot) GenerationSummary {
	min, _ := s.Population.Min()
	return GenerationSummary{
		Generation:  s.Generation,
		Rats:        len(s.Population),
		MeanWeight:  s.Mean,
		MaxWeight:   s.Max,
		MinWeight:   min,
		Fitness:     s.Fitness,
		Years:       s.Years,
		GoalReached: s.GoalReached,
	}
}

// LogGeneration logs a generation summary
func (l *Logger) LogGeneration(s ga.Snapshot) error {
	if !l.initialized {
		return nil
	}
	summary := Summarize(s)

	row := []string{
		strconv.Itoa(summary.Generation),
		strconv.Itoa(summary.Rats),
		fmt.Sprintf("%.2f", summary.MeanWeight),
		strconv.Itoa(summary.MaxWeight),
		strconv.Itoa(summary.MinWeight),
		fmt.Sprintf("%.4f", summary.Fitness),
		fmt.Sprintf("%.2f", summary.Years),
		strconv.FormatBool(summary.GoalReached),
	}
	if err := l.csvWriter.Write(row); err != nil {
		return err
	}
	l.csvWriter.Flush()
	if err := l.csvWriter.Error(); err != nil {
		return err
	}

	jsonLine, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	if _, err := l.jsonFile.Write(append(jsonLine, '\n')); err != nil {
		return err
	}

	fmt.Fprintf(l.console, "Gen %4d | Rats: %4d | Avg: %9.1fg | Max: %7dg | Fitness: %.4f | Years: %5.1f\n",
		summary.Generation, summary.Rats, summary.MeanWeight, summary.MaxWeight, summary.Fitness, summary.Years)
	return nil
}

// LogGoal prints the goal banner
func (l *Logger) LogGoal(s ga.Snapshot, goal float64) {
	fmt.Fprintf(l.console, "  [Goal] Gen %d: super rat of %dg reached the %.0fg goal after %.1f years\n",
		s.Generation, s.Max, goal, s.Years)
}

// LogTopK prints the k heaviest rats of a generation
func (l *Logger) LogTopK(pop ga.Population, k int) {
	sorted := pop.Sorted()
	if k > len(sorted) {
		k = len(sorted)
	}
	fmt.Fprintf(l.console, "  Top %d rats:\n", k)
	for i := 0; i < k; i++ {
		fmt.Fprintf(l.console, "    #%d: %dg\n", i+1, sorted[len(sorted)-1-i])
	}
}
