package receipt

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	// месяц и день допускаются без ведущего нуля
	dateParseLayout = "2006-1-2"

	// допуск при сверке сумм
	tolerance = 0.02

	scoreFutureDate    = 40
	scoreBadDate       = 20
	scoreArithmetic    = 50
	scoreLineItems     = 30
	scoreMissingFields = 20

	VerdictLegit            = "Likely Legit"
	VerdictSuspicious       = "Suspicious"
	VerdictHighlySuspicious = "Highly Suspicious"

	legitThreshold      = 30
	suspiciousThreshold = 70

	reasonArithmeticPassed  = "Arithmetic checks passed"
	reasonInvalidDateFormat = "Invalid date format"
)

// Analysis результат базовой проверки квитанции на признаки подделки
type Analysis struct {
	FraudScore      int      `json:"fraud_score"`
	Verdict         string   `json:"verdict"`
	Reasons         []string `json:"reasons"`
	ArithmeticValid bool     `json:"arithmetic_valid"`
	LineItemsValid  bool     `json:"line_items_valid"`
	Anomalies       []string `json:"anomalies_found"`
}

// Analyze проверяет дату, арифметику, сумму позиций и обязательные поля.
// now задает "сегодня" для проверки даты из будущего.
func Analyze(r Receipt, now time.Time) Analysis {
	a := Analysis{
		Reasons:        []string{},
		Anomalies:      []string{},
		LineItemsValid: true,
	}

	a.checkDate(r, now)
	a.checkArithmetic(r)
	a.checkLineItems(r)
	a.checkRequired(r)

	a.Verdict = verdict(a.FraudScore)
	return a
}

func (a *Analysis) checkDate(r Receipt, now time.Time) {
	raw := stringOr(r.Date, "")
	date, err := time.Parse(dateParseLayout, raw)
	if err != nil {
		a.Anomalies = append(a.Anomalies, fmt.Sprintf("Invalid date format: %s", stringOr(r.Date, "None")))
		a.Reasons = append(a.Reasons, reasonInvalidDateFormat)
		a.FraudScore += scoreBadDate
		return
	}

	today := now.Format(dateLayout)
	if date.Format(dateLayout) > today {
		a.Anomalies = append(a.Anomalies, fmt.Sprintf("Receipt date %s is in the future", raw))
		a.Reasons = append(a.Reasons, fmt.Sprintf("Receipt date %s is invalid (future date)", raw))
		a.FraudScore += scoreFutureDate
	}
}

func (a *Analysis) checkArithmetic(r Receipt) {
	calculated := r.Subtotal.Float() + r.Tax.Float()
	a.ArithmeticValid = math.Abs(calculated-r.Total.Float()) <= tolerance

	if !a.ArithmeticValid {
		a.Reasons = append(a.Reasons, fmt.Sprintf("Math error: %s + %s ≠ %s", r.Subtotal, r.Tax, r.Total))
		a.FraudScore += scoreArithmetic
		return
	}
	a.Reasons = append(a.Reasons, reasonArithmeticPassed)
}

func (a *Analysis) checkLineItems(r Receipt) {
	if len(r.LineItems) == 0 {
		return
	}

	var sum float64
	for _, item := range r.LineItems {
		sum += item.Quantity * item.Price.Float()
	}

	a.LineItemsValid = math.Abs(sum-r.Subtotal.Float()) <= tolerance
	if !a.LineItemsValid {
		a.Reasons = append(a.Reasons, fmt.Sprintf("Line items sum to %.2f but subtotal is %s", sum, r.Subtotal))
		a.FraudScore += scoreLineItems
	}
}

func (a *Analysis) checkRequired(r Receipt) {
	present := []struct {
		name string
		ok   bool
	}{
		{"merchant", r.Merchant != ""},
		{"date", stringOr(r.Date, "") != ""},
		{"currency", stringOr(r.Currency, "") != ""},
		{"subtotal", r.Subtotal != 0},
		{"tax", r.Tax != 0},
		{"total", r.Total != 0},
	}

	var missing []string
	for _, f := range present {
		if !f.ok {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return
	}

	a.Anomalies = append(a.Anomalies, "Missing fields: "+strings.Join(missing, ", "))
	a.FraudScore += scoreMissingFields
}

func verdict(score int) string {
	switch {
	case score <= legitThreshold:
		return VerdictLegit
	case score <= suspiciousThreshold:
		return VerdictSuspicious
	default:
		return VerdictHighlySuspicious
	}
}
