package testutil

import (
	"testing"
	"time"

	"spendsense/internal/models"
	"spendsense/internal/score"
	"spendsense/internal/uuid"

	"gorm.io/gorm"
)

// NewTestUserID returns a fresh opaque user identifier. This service
// does not own users; IDs are foreign references minted elsewhere.
func NewTestUserID() string {
	return uuid.New()
}

// HealthySnapshot returns signals that score a perfect 100.
func HealthySnapshot() score.Snapshot {
	return score.Snapshot{
		CreditUtilization:   0,
		SavingsRate:         0.25,
		EmergencyFundMonths: 8,
		DebtToIncomeRatio:   0,
		OnTimePaymentRatio:  1.0,
	}
}

// StressedSnapshot returns signals for a struggling profile (total 12).
func StressedSnapshot() score.Snapshot {
	return score.Snapshot{
		CreditUtilization:   0.95,
		SavingsRate:         0.0,
		EmergencyFundMonths: 0,
		DebtToIncomeRatio:   0.8,
		OnTimePaymentRatio:  0.7,
	}
}

// CreateTestScoreRecord computes and stores a score record for the given
// user and day directly, bypassing the service layer.
func CreateTestScoreRecord(t *testing.T, db *gorm.DB, userID string, computedAt time.Time, snapshot score.Snapshot) *models.HealthScoreRecord {
	t.Helper()

	result := score.Compute(snapshot)
	record := &models.HealthScoreRecord{
		UserID:     userID,
		ScoreDate:  models.ScoreDateOf(computedAt),
		ComputedAt: computedAt,
		TotalScore: result.Total,
		Grade:      result.Grade,
		Components: result.Components,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test score record: %v", err)
	}
	return record
}
