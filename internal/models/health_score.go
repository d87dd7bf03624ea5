package models

import (
	"time"

	"spendsense/internal/score"
	"spendsense/internal/uuid"

	"gorm.io/gorm"
)

// ScoreDateLayout is the calendar-day key format for score records.
const ScoreDateLayout = "2006-01-02"

// ScoreDateOf returns the UTC calendar day a computation belongs to.
// UTC keeps the upsert key independent of server timezone.
func ScoreDateOf(t time.Time) string {
	return t.UTC().Format(ScoreDateLayout)
}

// HealthScoreRecord is one user's health score for one calendar day.
// Immutable time-series data: no Base embed, no soft deletes. A same-day
// recomputation replaces the row in place; across days the table is
// append-only, so history is the ordered sequence of rows per user.
type HealthScoreRecord struct {
	ID         string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string      `gorm:"type:uuid;not null;uniqueIndex:idx_score_user_day" json:"user_id"`
	ScoreDate  string      `gorm:"size:10;not null;uniqueIndex:idx_score_user_day" json:"score_date"`
	ComputedAt time.Time   `gorm:"not null" json:"computed_at"`
	TotalScore int         `gorm:"not null" json:"total_score"`
	Grade      score.Grade `gorm:"size:16;not null" json:"grade"`

	// The five weighted sub-scores, stored as fixed columns so a record
	// is complete by construction. GORM flattens them with a component_
	// prefix; JSON nests them under "components".
	Components score.Components `gorm:"embedded;embeddedPrefix:component_" json:"components"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (r *HealthScoreRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New()
	}
	return nil
}

// Result reconstructs the calculator output this record was built from,
// e.g. to feed the improvement advisor.
func (r *HealthScoreRecord) Result() score.Result {
	return score.Result{
		Total:      r.TotalScore,
		Grade:      r.Grade,
		Components: r.Components,
	}
}
