package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendsense/internal/errors"
	"spendsense/internal/pagination"
	"spendsense/internal/score"
	"spendsense/internal/services"
)

// defaultHistoryDays is the trailing window served when the caller omits
// a date range; the dashboard's trend chart shows 30 days.
const defaultHistoryDays = 30

// HealthScoreHandler handles health score requests.
type HealthScoreHandler struct {
	scoreService services.HealthScoreServicer
	runService   services.ScoreRunServicer
}

// NewHealthScoreHandler creates a new HealthScoreHandler.
func NewHealthScoreHandler(scoreService services.HealthScoreServicer, runService services.ScoreRunServicer) *HealthScoreHandler {
	return &HealthScoreHandler{scoreService: scoreService, runService: runService}
}

// SignalSnapshotPayload is one user's signal row from the aggregation
// service. All five signals are required pointers: a missing field fails
// binding rather than silently scoring a zero, so upstream data-collection
// failures surface instead of masquerading as bad finances.
type SignalSnapshotPayload struct {
	UserID              string   `json:"user_id" binding:"required,uuid"`
	CreditUtilization   *float64 `json:"credit_utilization" binding:"required"`
	SavingsRate         *float64 `json:"savings_rate" binding:"required"`
	EmergencyFundMonths *float64 `json:"emergency_fund_months" binding:"required"`
	DebtToIncomeRatio   *float64 `json:"debt_to_income_ratio" binding:"required"`
	OnTimePaymentRatio  *float64 `json:"on_time_payment_ratio" binding:"required"`
}

// ComputeScoresRequest represents the request payload for the scoring pipeline.
type ComputeScoresRequest struct {
	ComputedAt  time.Time               `json:"computed_at" binding:"required"`
	TriggeredBy string                  `json:"triggered_by"`
	Snapshots   []SignalSnapshotPayload `json:"snapshots" binding:"required,min=1,dive"`
}

// ComputeScores handles computing and recording health scores for a batch of users.
// @Summary     Compute health scores
// @Description Score a batch of signal snapshots and upsert one record per user per day (pipeline endpoint)
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Param       X-API-Key header   string               true "Pipeline API key"
// @Param       request   body     ComputeScoresRequest true "Signal snapshots"
// @Success     200       {object} map[string]int       "Users scored count"
// @Failure     400       {object} ErrorResponse        "Invalid or incomplete snapshot"
// @Failure     401       {object} ErrorResponse        "Invalid API key"
// @Failure     503       {object} ErrorResponse        "Pipeline not configured or storage unavailable"
// @Router      /pipeline/scores [post]
func (h *HealthScoreHandler) ComputeScores(c *gin.Context) {
	var req ComputeScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidSnapshot, err.Error()))
		return
	}

	inputs := make([]services.SnapshotInput, 0, len(req.Snapshots))
	for _, s := range req.Snapshots {
		inputs = append(inputs, services.SnapshotInput{
			UserID: s.UserID,
			Snapshot: score.Snapshot{
				CreditUtilization:   *s.CreditUtilization,
				SavingsRate:         *s.SavingsRate,
				EmergencyFundMonths: *s.EmergencyFundMonths,
				DebtToIncomeRatio:   *s.DebtToIncomeRatio,
				OnTimePaymentRatio:  *s.OnTimePaymentRatio,
			},
		})
	}

	start := time.Now()
	count, err := h.scoreService.ComputeAndRecordScores(req.ComputedAt, inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.runService.Log(req.ComputedAt, count, time.Since(start), req.TriggeredBy)

	c.JSON(http.StatusOK, gin.H{"users_scored": count})
}

// GetCurrentScore handles retrieving the latest score for the authenticated user.
// @Summary     Get current health score
// @Description Get the latest computed health score record for the authenticated user
// @Tags        scores
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.HealthScoreRecord "Latest score record"
// @Failure     401 {object} ErrorResponse            "Unauthorized"
// @Failure     404 {object} ErrorResponse            "No score computed yet"
// @Router      /scores/current [get]
func (h *HealthScoreHandler) GetCurrentScore(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.scoreService.GetCurrentScore(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// ScoreHistoryQuery holds the optional date range for score history.
type ScoreHistoryQuery struct {
	FromDate string `form:"from_date" binding:"omitempty,calendar_date"`
	ToDate   string `form:"to_date" binding:"omitempty,calendar_date"`
}

// GetScoreHistory handles retrieving score history for the authenticated user.
// @Summary     Get health score history
// @Description Get paginated score records, oldest first; defaults to the trailing 30 days
// @Tags        scores
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Start date (YYYY-MM-DD, default 29 days before to_date)"
// @Param       to_date   query string false "End date (YYYY-MM-DD, default today)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.HealthScoreRecord] "Paginated score records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /scores/history [get]
func (h *HealthScoreHandler) GetScoreHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ScoreHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	to := time.Now().UTC()
	if query.ToDate != "" {
		if to, err = parseCalendarDate(query.ToDate); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}
	from := to.AddDate(0, 0, -(defaultHistoryDays - 1))
	if query.FromDate != "" {
		if from, err = parseCalendarDate(query.FromDate); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}
	if from.After(to) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from_date must not be after to_date"))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.scoreService.GetScoreHistory(userID, from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSuggestions handles retrieving improvement suggestions for the authenticated user.
// @Summary     Get improvement suggestions
// @Description Get up to 3 ranked improvement suggestions derived from the latest score
// @Tags        scores
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]score.Suggestion "Ranked suggestions"
// @Failure     401 {object} ErrorResponse                 "Unauthorized"
// @Failure     404 {object} ErrorResponse                 "No score computed yet"
// @Router      /scores/suggestions [get]
func (h *HealthScoreHandler) GetSuggestions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	suggestions, err := h.scoreService.GetSuggestions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if suggestions == nil {
		suggestions = []score.Suggestion{}
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
