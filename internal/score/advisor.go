package score

import "sort"

// Suggestion is one ranked improvement recommendation: the component to
// work on, where it stands, its ceiling, and a display action.
type Suggestion struct {
	Component Component `json:"component"`
	Current   float64   `json:"current"`
	Max       float64   `json:"max"`
	Action    string    `json:"action"`
}

// maxSuggestions caps advisor output; the dashboard shows at most three.
const maxSuggestions = 3

// advisorOrder fixes the tie-break priority (descending weight). The
// slice order doubles as the stable-sort input order, so equal gaps
// resolve without any float comparison games.
var advisorOrder = []struct {
	Component Component
	Weight    float64
	Action    string
}{
	{ComponentCreditUtilization, WeightCreditUtilization, "Reduce credit utilization below 30% by paying down revolving balances"},
	{ComponentSavingsRate, WeightSavingsRate, "Increase your savings rate toward 20% of income"},
	{ComponentEmergencyFund, WeightEmergencyFund, "Build your emergency fund toward 6 months of expenses"},
	{ComponentDebtToIncome, WeightDebtToIncome, "Lower your debt-to-income ratio by paying down or refinancing debt"},
	{ComponentPaymentHistory, WeightPaymentHistory, "Set up autopay to keep every payment on time"},
}

// Suggest returns up to three suggestions for the components with the
// largest absolute point gap to their ceiling, biggest gap first. A
// component already at its maximum is never suggested, so a perfect 100
// yields an empty slice.
func Suggest(r Result) []Suggestion {
	current := map[Component]float64{
		ComponentCreditUtilization: r.Components.CreditUtilization,
		ComponentSavingsRate:       r.Components.SavingsRate,
		ComponentEmergencyFund:     r.Components.EmergencyFund,
		ComponentDebtToIncome:      r.Components.DebtToIncome,
		ComponentPaymentHistory:    r.Components.PaymentHistory,
	}

	suggestions := make([]Suggestion, 0, len(advisorOrder))
	for _, entry := range advisorOrder {
		sub := current[entry.Component]
		if entry.Weight-sub <= 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Component: entry.Component,
			Current:   sub,
			Max:       entry.Weight,
			Action:    entry.Action,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		gapI := suggestions[i].Max - suggestions[i].Current
		gapJ := suggestions[j].Max - suggestions[j].Current
		return gapI > gapJ
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
