package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tiptop/internal/models"
)

// Result represents the calculated per-person shares, formatted for display
type Result struct {
	PreTip string
	Tip    string
	Total  string
}

// ZeroResult is what every invalid bill or party count degrades to.
var ZeroResult = Result{PreTip: "0.00", Tip: "0.00", Total: "0.00"}

// IsZero reports whether r is the zero state.
func (r Result) IsZero() bool {
	return r == ZeroResult
}

// Calculate derives the shares for the given form inputs.
func Calculate(in models.Inputs) Result {
	return CalculateTip(in.Bill, in.TipPercentage, in.PartyCount)
}

// CalculateTip computes how much each person owes before tip, in tip, and in total.
// Based on: pre_tip = bill / people, tip = bill × (percent / 100) / people, total = pre_tip + tip
//
// It never fails. A bill or party count that does not parse, or a party count of
// zero, yields ZeroResult. A tip percentage that does not parse counts as no tip.
// Each share is rounded to cents on its own, so Total may differ by one cent from
// PreTip + Tip.
func CalculateTip(bill, tipPercentage, partyCount string) Result {
	billAmount, billOK := parseFloat(bill)
	people, peopleOK := parseInt(partyCount)
	if !billOK || !peopleOK || people == 0 {
		return ZeroResult
	}

	preTip := billAmount / float64(people)

	tip := 0.0
	if percent, ok := parseFloat(tipPercentage); ok {
		tip = (billAmount * (percent / 100)) / float64(people)
	}
	total := preTip + tip

	// Huge but finite inputs can still overflow once multiplied
	if !isFinite(preTip) || !isFinite(tip) || !isFinite(total) {
		return ZeroResult
	}

	return Result{
		PreTip: formatAmount(preTip),
		Tip:    formatAmount(tip),
		Total:  formatAmount(total),
	}
}

// formatAmount rounds half away from zero to two places.
func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
