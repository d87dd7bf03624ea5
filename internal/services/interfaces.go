package services

import (
	"time"

	"spendsense/internal/models"
	"spendsense/internal/pagination"
	"spendsense/internal/score"
)

// SnapshotInput pairs a user with the signal snapshot the aggregation
// service computed for them.
type SnapshotInput struct {
	UserID   string
	Snapshot score.Snapshot
}

// HealthScoreServicer defines the contract for health score computation,
// recording, and retrieval.
type HealthScoreServicer interface {
	ComputeAndRecordScores(computedAt time.Time, inputs []SnapshotInput) (int, error)
	RecordScore(userID string, computedAt time.Time, result score.Result) (*models.HealthScoreRecord, error)
	GetCurrentScore(userID string) (*models.HealthScoreRecord, error)
	GetScoreHistory(userID string, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.HealthScoreRecord], error)
	GetSuggestions(userID string) ([]score.Suggestion, error)
}

// ScoreRunServicer defines the contract for pipeline run logging.
type ScoreRunServicer interface {
	Log(computedAt time.Time, usersScored int, duration time.Duration, triggeredBy string)
}
