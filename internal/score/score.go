// Package score implements the financial health score model: a weighted
// five-factor 0-100 score with a letter grade, plus ranked improvement
// suggestions. Everything here is pure computation; persistence and
// transport live in the service and handler layers.
package score

import "math"

// Component identifies one of the five scoring factors.
type Component string

const (
	ComponentCreditUtilization Component = "credit_utilization"
	ComponentSavingsRate       Component = "savings_rate"
	ComponentEmergencyFund     Component = "emergency_fund"
	ComponentDebtToIncome      Component = "debt_to_income"
	ComponentPaymentHistory    Component = "payment_history"
)

// Maximum sub-score (weight) per component. The five weights sum to 100.
const (
	WeightCreditUtilization = 30.0
	WeightSavingsRate       = 25.0
	WeightEmergencyFund     = 20.0
	WeightDebtToIncome      = 15.0
	WeightPaymentHistory    = 10.0
)

// Ideal targets: a 20% savings rate or 6 months of expenses banked earns
// the full sub-score for that component.
const (
	savingsRateTarget         = 0.20
	emergencyFundTargetMonths = 6.0
)

// Snapshot is a point-in-time set of derived financial ratios for one
// user, computed upstream by the signal aggregation service from raw
// transaction and account data.
type Snapshot struct {
	// CreditUtilization is total revolving balance / total revolving limit.
	CreditUtilization float64
	// SavingsRate is (income - expenses) / income over a trailing window.
	// May exceed 1 or be negative.
	SavingsRate float64
	// EmergencyFundMonths is liquid savings / average monthly expenses.
	EmergencyFundMonths float64
	// DebtToIncomeRatio is total debt service / income.
	DebtToIncomeRatio float64
	// OnTimePaymentRatio is on-time payments / total payments in the window.
	OnTimePaymentRatio float64
}

// Components holds the weighted sub-score of each factor. Fixed fields
// rather than a map so a result always carries exactly the five factors.
type Components struct {
	CreditUtilization float64 `json:"credit_utilization"`
	SavingsRate       float64 `json:"savings_rate"`
	EmergencyFund     float64 `json:"emergency_fund"`
	DebtToIncome      float64 `json:"debt_to_income"`
	PaymentHistory    float64 `json:"payment_history"`
}

// Sum returns the pre-rounding total of the five sub-scores.
func (c Components) Sum() float64 {
	return c.CreditUtilization + c.SavingsRate + c.EmergencyFund + c.DebtToIncome + c.PaymentHistory
}

// Grade is the coarse display label derived from the total score.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeFair      Grade = "fair"
	GradePoor      Grade = "poor"
)

// gradeBands maps inclusive lower score bounds to grades, checked in
// order. Cut points are a product decision; retune here, nowhere else.
var gradeBands = []struct {
	Min   int
	Grade Grade
}{
	{90, GradeExcellent},
	{80, GradeGood},
	{65, GradeFair},
	{0, GradePoor},
}

// GradeFor returns the grade band containing the given total score.
func GradeFor(total int) Grade {
	for _, band := range gradeBands {
		if total >= band.Min {
			return band.Grade
		}
	}
	return GradePoor
}

// Result is the outcome of scoring one snapshot.
type Result struct {
	Total      int        `json:"total_score"`
	Grade      Grade      `json:"grade"`
	Components Components `json:"components"`
}

// Compute scores a snapshot. Inputs outside their natural domain are
// clamped rather than rejected, since upstream aggregation can
// legitimately produce edge values (e.g. utilization slightly over 100%
// from a pending charge). Each sub-score is bounded by its weight, so
// the pre-rounding sum is bounded by 100; the final clamp only matters
// for malformed inputs. Rounding happens once, at the total, to avoid
// per-component drift.
func Compute(s Snapshot) Result {
	c := Components{
		CreditUtilization: (1 - clamp01(s.CreditUtilization)) * WeightCreditUtilization,
		SavingsRate:       math.Min(math.Max(s.SavingsRate, 0)/savingsRateTarget, 1) * WeightSavingsRate,
		EmergencyFund:     math.Min(math.Max(s.EmergencyFundMonths, 0)/emergencyFundTargetMonths, 1) * WeightEmergencyFund,
		DebtToIncome:      (1 - math.Min(math.Max(s.DebtToIncomeRatio, 0), 1)) * WeightDebtToIncome,
		PaymentHistory:    clamp01(s.OnTimePaymentRatio) * WeightPaymentHistory,
	}

	total := int(math.Round(c.Sum()))
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return Result{
		Total:      total,
		Grade:      GradeFor(total),
		Components: c,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
