package score

import "testing"

func TestSuggest(t *testing.T) {
	t.Run("perfect_score_no_suggestions", func(t *testing.T) {
		r := Compute(Snapshot{
			CreditUtilization:   0,
			SavingsRate:         0.25,
			EmergencyFundMonths: 8,
			DebtToIncomeRatio:   0,
			OnTimePaymentRatio:  1,
		})
		if got := Suggest(r); len(got) != 0 {
			t.Errorf("expected no suggestions for a perfect score, got %d", len(got))
		}
	})

	t.Run("largest_gap_first", func(t *testing.T) {
		// Stressed profile: gaps are 28.5 / 25 / 20 / 12 / 3.
		r := Compute(Snapshot{
			CreditUtilization:   0.95,
			SavingsRate:         0,
			EmergencyFundMonths: 0,
			DebtToIncomeRatio:   0.8,
			OnTimePaymentRatio:  0.7,
		})
		got := Suggest(r)
		if len(got) != 3 {
			t.Fatalf("expected 3 suggestions, got %d", len(got))
		}
		wantOrder := []Component{ComponentCreditUtilization, ComponentSavingsRate, ComponentEmergencyFund}
		for i, want := range wantOrder {
			if got[i].Component != want {
				t.Errorf("suggestion %d: expected %s, got %s", i, want, got[i].Component)
			}
		}
	})

	t.Run("maxed_components_excluded", func(t *testing.T) {
		// Only payment history is short of its ceiling.
		r := Compute(Snapshot{
			CreditUtilization:   0,
			SavingsRate:         0.25,
			EmergencyFundMonths: 8,
			DebtToIncomeRatio:   0,
			OnTimePaymentRatio:  0.5,
		})
		got := Suggest(r)
		if len(got) != 1 {
			t.Fatalf("expected 1 suggestion, got %d", len(got))
		}
		s := got[0]
		if s.Component != ComponentPaymentHistory {
			t.Errorf("expected payment_history, got %s", s.Component)
		}
		if s.Current != 5 || s.Max != WeightPaymentHistory {
			t.Errorf("expected current 5 / max %f, got %f / %f", WeightPaymentHistory, s.Current, s.Max)
		}
		if s.Action == "" {
			t.Error("expected a non-empty action text")
		}
	})

	t.Run("equal_gaps_follow_weight_priority", func(t *testing.T) {
		// Hand-built result with identical 5-point gaps everywhere.
		r := Result{
			Components: Components{
				CreditUtilization: WeightCreditUtilization - 5,
				SavingsRate:       WeightSavingsRate - 5,
				EmergencyFund:     WeightEmergencyFund - 5,
				DebtToIncome:      WeightDebtToIncome - 5,
				PaymentHistory:    WeightPaymentHistory - 5,
			},
		}
		got := Suggest(r)
		if len(got) != 3 {
			t.Fatalf("expected 3 suggestions, got %d", len(got))
		}
		wantOrder := []Component{ComponentCreditUtilization, ComponentSavingsRate, ComponentEmergencyFund}
		for i, want := range wantOrder {
			if got[i].Component != want {
				t.Errorf("suggestion %d: expected %s, got %s", i, want, got[i].Component)
			}
		}
	})
}
