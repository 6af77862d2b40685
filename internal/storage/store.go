package storage

import (
	"context"

	"superrats/internal/ga"
)

// VersionedRecord tags persisted payloads so old files can be rejected.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord describes one breeding run.
type RunRecord struct {
	VersionedRecord
	RunID       string    `json:"run_id"`
	Seed        int64     `json:"seed"`
	Config      ga.Config `json:"config"`
	Generations int       `json:"generations"`
	GoalReached bool      `json:"goal_reached"`
}

// GenerationRecord is one entry of a run's convergence history.
type GenerationRecord struct {
	Generation int     `json:"generation"`
	Mean       float64 `json:"mean"`
	Max        float64 `json:"max"`
}

// Store keeps run metadata and per-generation history outside the engine.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run RunRecord) error
	GetRun(ctx context.Context, runID string) (RunRecord, bool, error)
	AppendGeneration(ctx context.Context, runID string, rec GenerationRecord) error
	GetHistory(ctx context.Context, runID string) (ga.History, bool, error)
	DeleteRun(ctx context.Context, runID string) error
}

// RecordLatest appends the controller's newest history entry, if any.
func RecordLatest(ctx context.Context, store Store, runID string, c *ga.Controller) error {
	mean, max, ok := c.History().Last()
	if !ok {
		return nil
	}
	return store.AppendGeneration(ctx, runID, GenerationRecord{
		Generation: c.Generation(),
		Mean:       mean,
		Max:        max,
	})
}
