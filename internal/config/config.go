package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"superrats/internal/ga"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64        `yaml:"seed"`
	Sim     SimConfig    `yaml:"sim"`
	Logging LogConfig    `yaml:"logging"`
	Store   StoreConfig  `yaml:"store"`
	Viewer  ViewerConfig `yaml:"viewer"`
}

// SimConfig defines the breeding program
type SimConfig struct {
	PopulationSize        int     `yaml:"population_size" ini:"population_size"`
	InitialMinWeight      int     `yaml:"initial_min_weight" ini:"initial_min_weight"`
	InitialMaxWeight      int     `yaml:"initial_max_weight" ini:"initial_max_weight"`
	InitialModeWeight     int     `yaml:"initial_mode_weight" ini:"initial_mode_weight"`
	MutationProbability   float64 `yaml:"mutation_probability" ini:"mutation_probability"`
	MutationMultiplierMin float64 `yaml:"mutation_multiplier_min" ini:"mutation_multiplier_min"`
	MutationMultiplierMax float64 `yaml:"mutation_multiplier_max" ini:"mutation_multiplier_max"`
	LitterSize            int     `yaml:"litter_size" ini:"litter_size"`
	LittersPerYear        int     `yaml:"litters_per_year" ini:"litters_per_year"`
	RetainCount           int     `yaml:"retain_count" ini:"retain_count"` // 0 means population_size
	Goal                  float64 `yaml:"goal" ini:"goal"`
	GenerationLimit       int     `yaml:"generation_limit" ini:"generation_limit"`
}

// LogConfig defines run log output
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary" ini:"every_gen_summary"`
	CSVPath         string `yaml:"csv_path" ini:"csv_path"`
	JSONPath        string `yaml:"json_path" ini:"json_path"`
}

// StoreConfig selects where generation history is kept
type StoreConfig struct {
	Backend    string `yaml:"backend" ini:"backend"` // memory|sqlite
	SQLitePath string `yaml:"sqlite_path" ini:"sqlite_path"`
	RunID      string `yaml:"run_id" ini:"run_id"`
}

// ViewerConfig defines the terminal viewer
type ViewerConfig struct {
	Speed      float64 `yaml:"speed" ini:"speed"`             // generations per 2 seconds
	IntervalMS int     `yaml:"interval_ms" ini:"interval_ms"` // base auto-advance interval
	Audio      bool    `yaml:"audio" ini:"audio"`
}

// Default returns the classic super rat setup
func Default() *Config {
	rats := ga.DefaultConfig()
	return &Config{
		Seed: 1337,
		Sim: SimConfig{
			PopulationSize:        rats.PopulationSize,
			InitialMinWeight:      rats.InitialMinWeight,
			InitialMaxWeight:      rats.InitialMaxWeight,
			InitialModeWeight:     rats.InitialModeWeight,
			MutationProbability:   rats.MutationProbability,
			MutationMultiplierMin: rats.MutationMultiplierMin,
			MutationMultiplierMax: rats.MutationMultiplierMax,
			LitterSize:            rats.LitterSize,
			LittersPerYear:        rats.LittersPerYear,
			Goal:                  rats.Goal,
			GenerationLimit:       rats.GenerationLimit,
		},
		Logging: LogConfig{
			EveryGenSummary: true,
			CSVPath:         "runs/run.csv",
			JSONPath:        "runs/run.jsonl",
		},
		Store: StoreConfig{
			Backend:    "memory",
			SQLitePath: "runs/superrats.db",
			RunID:      "superrats",
		},
		Viewer: ViewerConfig{
			Speed:      1,
			IntervalMS: 2000,
		},
	}
}

// Load reads a YAML or INI config file and returns a Config.
// Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".cfg":
		cfg, err = loadINI(path)
	default:
		cfg, err = loadYAML(path)
	}
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func loadINI(path string) (*Config, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", path, err)
	}

	cfg := Default()
	if key, err := file.Section(ini.DefaultSection).GetKey("seed"); err == nil {
		if cfg.Seed, err = key.Int64(); err != nil {
			return nil, fmt.Errorf("failed to parse seed: %w", err)
		}
	}

	sections := []struct {
		name string
		dst  any
	}{
		{"sim", &cfg.Sim},
		{"logging", &cfg.Logging},
		{"store", &cfg.Store},
		{"viewer", &cfg.Viewer},
	}
	for _, s := range sections {
		if !file.HasSection(s.name) {
			continue
		}
		if err := file.Section(s.name).MapTo(s.dst); err != nil {
			return nil, fmt.Errorf("failed to map [%s] section: %w", s.name, err)
		}
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Sim.RetainCount == 0 {
		cfg.Sim.RetainCount = cfg.Sim.PopulationSize
	}
	if cfg.Sim.LittersPerYear == 0 {
		cfg.Sim.LittersPerYear = 12
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "memory"
	}
	if cfg.Store.RunID == "" {
		cfg.Store.RunID = "superrats"
	}
	if cfg.Viewer.Speed == 0 {
		cfg.Viewer.Speed = 1
	}
	if cfg.Viewer.IntervalMS == 0 {
		cfg.Viewer.IntervalMS = 2000
	}
}

// Rats returns the engine parameters for this run
func (c *Config) Rats() ga.Config {
	retain := c.Sim.RetainCount
	if retain == 0 {
		retain = c.Sim.PopulationSize
	}
	return ga.Config{
		PopulationSize:        c.Sim.PopulationSize,
		InitialMinWeight:      c.Sim.InitialMinWeight,
		InitialMaxWeight:      c.Sim.InitialMaxWeight,
		InitialModeWeight:     c.Sim.InitialModeWeight,
		MutationProbability:   c.Sim.MutationProbability,
		MutationMultiplierMin: c.Sim.MutationMultiplierMin,
		MutationMultiplierMax: c.Sim.MutationMultiplierMax,
		LitterSize:            c.Sim.LitterSize,
		RetainCount:           retain,
		Goal:                  c.Sim.Goal,
		LittersPerYear:        c.Sim.LittersPerYear,
		GenerationLimit:       c.Sim.GenerationLimit,
	}
}

// Validate checks the engine parameters and the driver settings
func (c *Config) Validate() error {
	if err := c.Rats().Validate(); err != nil {
		return err
	}
	switch c.Store.Backend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("%w: unsupported store backend %q", ga.ErrInvalidConfiguration, c.Store.Backend)
	}
	if c.Store.Backend == "sqlite" && c.Store.SQLitePath == "" {
		return fmt.Errorf("%w: store.sqlite_path is required for the sqlite backend", ga.ErrInvalidConfiguration)
	}
	if c.Viewer.Speed < 0.5 || c.Viewer.Speed > 5 {
		return fmt.Errorf("%w: viewer speed %v must be within [0.5, 5]", ga.ErrInvalidConfiguration, c.Viewer.Speed)
	}
	if c.Viewer.IntervalMS < 0 {
		return fmt.Errorf("%w: viewer interval_ms %d must not be negative", ga.ErrInvalidConfiguration, c.Viewer.IntervalMS)
	}
	return nil
}
