package services

import (
	"time"

	"gorm.io/gorm"

	"spendsense/internal/logger"
	"spendsense/internal/models"
)

// scoreRunService handles pipeline run logging.
type scoreRunService struct {
	db *gorm.DB
}

// NewScoreRunService creates a new ScoreRunServicer.
func NewScoreRunService(db *gorm.DB) ScoreRunServicer {
	return &scoreRunService{db: db}
}

// Log records a pipeline run. Errors are logged but never propagate
// to avoid disrupting the run itself.
func (s *scoreRunService) Log(computedAt time.Time, usersScored int, duration time.Duration, triggeredBy string) {
	run := &models.ScoreRun{
		ComputedAt:  computedAt,
		UsersScored: usersScored,
		DurationMs:  duration.Milliseconds(),
		TriggeredBy: triggeredBy,
	}

	if err := s.db.Create(run).Error; err != nil {
		logger.Get().Errorw("failed to create score run entry",
			"error", err,
			"computed_at", computedAt,
			"users_scored", usersScored,
		)
	}
}
