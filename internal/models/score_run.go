package models

import "time"

// ScoreRun records one execution of the scoring pipeline for operator
// review. Best-effort: a failed run log never fails the run itself.
type ScoreRun struct {
	Base
	ComputedAt  time.Time `gorm:"not null" json:"computed_at"`
	UsersScored int       `gorm:"not null" json:"users_scored"`
	DurationMs  int64     `gorm:"not null" json:"duration_ms"`
	TriggeredBy string    `gorm:"size:64" json:"triggered_by"`
}
