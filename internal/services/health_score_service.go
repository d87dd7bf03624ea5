package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendsense/internal/errors"
	"spendsense/internal/models"
	"spendsense/internal/pagination"
	"spendsense/internal/score"
	"spendsense/internal/uuid"
)

// healthScoreService computes, records, and serves health scores.
type healthScoreService struct {
	db *gorm.DB
}

// NewHealthScoreService creates a new HealthScoreServicer.
func NewHealthScoreService(db *gorm.DB) HealthScoreServicer {
	return &healthScoreService{db: db}
}

// ComputeAndRecordScores scores every supplied snapshot and upserts the
// result, one record per user per calendar day. The batch is validated
// up front so a malformed input rejects the whole request before any
// write. Returns the number of users scored.
func (s *healthScoreService) ComputeAndRecordScores(computedAt time.Time, inputs []SnapshotInput) (int, error) {
	for _, in := range inputs {
		if !uuid.IsValid(in.UserID) {
			return 0, apperrors.WithMessage(apperrors.ErrInvalidSnapshot, "Invalid user ID: "+in.UserID)
		}
	}

	count := 0
	for _, in := range inputs {
		result := score.Compute(in.Snapshot)
		if _, err := s.RecordScore(in.UserID, computedAt, result); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// RecordScore upserts a score record keyed by (user, UTC calendar day of
// computedAt). The single ON CONFLICT statement is what serializes
// concurrent same-day recomputations: last writer wins, and readers
// never observe a partial row.
func (s *healthScoreService) RecordScore(userID string, computedAt time.Time, result score.Result) (*models.HealthScoreRecord, error) {
	record := &models.HealthScoreRecord{
		UserID:     userID,
		ScoreDate:  models.ScoreDateOf(computedAt),
		ComputedAt: computedAt,
		TotalScore: result.Total,
		Grade:      result.Grade,
		Components: result.Components,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "score_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"computed_at",
			"total_score",
			"grade",
			"component_credit_utilization",
			"component_savings_rate",
			"component_emergency_fund",
			"component_debt_to_income",
			"component_payment_history",
		}),
	}).Create(record).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}

	// Re-read so a same-day replacement returns the stored row (original
	// ID) rather than the transient insert candidate.
	var stored models.HealthScoreRecord
	if err := s.db.Where("user_id = ? AND score_date = ?", userID, record.ScoreDate).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	return &stored, nil
}

// GetCurrentScore returns the latest score record for a user.
func (s *healthScoreService) GetCurrentScore(userID string) (*models.HealthScoreRecord, error) {
	var record models.HealthScoreRecord
	err := s.db.Where("user_id = ?", userID).
		Order("score_date DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScoreNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// GetScoreHistory returns paginated score records for a date range,
// oldest first. Reads never mutate records.
func (s *healthScoreService) GetScoreHistory(
	userID string,
	from, to time.Time,
	page pagination.PageRequest,
) (*pagination.PageResponse[models.HealthScoreRecord], error) {
	page.Defaults()

	base := s.db.Model(&models.HealthScoreRecord{}).
		Where("user_id = ? AND score_date >= ? AND score_date <= ?",
			userID, models.ScoreDateOf(from), models.ScoreDateOf(to))

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.HealthScoreRecord
	if err := base.Order("score_date ASC").Scopes(pagination.Paginate(page)).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSuggestions runs the improvement advisor over the user's latest
// score record.
func (s *healthScoreService) GetSuggestions(userID string) ([]score.Suggestion, error) {
	record, err := s.GetCurrentScore(userID)
	if err != nil {
		return nil, err
	}
	return score.Suggest(record.Result()), nil
}
