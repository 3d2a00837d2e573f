// Package receipt содержит модель квитанции, ее каноничный хеш, сверку с мемо-записью
// и базовую проверку на признаки подделки.
package receipt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("receipt: invalid amount")

const jsonNull = "null"

// Amount денежная сумма. В JSON допускается число или строка с числом.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == jsonNull {
		return fmt.Errorf("%w: null", ErrInvalidAmount)
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	*a = Amount(v)
	return nil
}

func (a Amount) Float() float64 {
	return float64(a)
}

// Fixed сумма с двумя знаками после запятой
func (a Amount) Fixed() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

// LineItem позиция в квитанции
type LineItem struct {
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	Price    Amount  `json:"price"`
}

// Receipt данные квитанции в том виде, как их возвращает распознавание.
// Date, Time и Currency указатели: отсутствие поля и пустая строка различаются.
// Явный null в merchant, date или currency запоминается отдельно, он хешируется
// иначе, чем отсутствующее поле.
type Receipt struct {
	Merchant   string     `json:"merchant"`
	Date       *string    `json:"date,omitempty"`
	Time       *string    `json:"time,omitempty"`
	Currency   *string    `json:"currency,omitempty"`
	Subtotal   Amount     `json:"subtotal"`
	Tax        Amount     `json:"tax"`
	Total      Amount     `json:"total"`
	LineItems  []LineItem `json:"line_items,omitempty"`
	FraudScore *int       `json:"fraud_score,omitempty"`
	Verdict    string     `json:"verdict,omitempty"`
	Reasons    []string   `json:"reasons,omitempty"`

	nulls nullFields
}

type nullFields struct {
	merchant bool
	date     bool
	currency bool
}

func (r *Receipt) UnmarshalJSON(data []byte) error {
	type plain Receipt
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Receipt(p)
	r.nulls = nullFields{
		merchant: isNull(raw, "merchant"),
		date:     isNull(raw, "date"),
		currency: isNull(raw, "currency"),
	}
	return nil
}

func isNull(raw map[string]json.RawMessage, key string) bool {
	v, ok := raw[key]
	return ok && strings.TrimSpace(string(v)) == jsonNull
}

// Decode разбирает JSON квитанции. Markdown-обертка ```json ... ``` удаляется.
func Decode(data []byte) (Receipt, error) {
	data = bytes.ReplaceAll(data, []byte("```json"), nil)
	data = bytes.ReplaceAll(data, []byte("```"), nil)
	data = bytes.TrimSpace(data)

	var r Receipt
	if err := json.Unmarshal(data, &r); err != nil {
		return Receipt{}, fmt.Errorf("failed to decode receipt: %w", err)
	}
	return r, nil
}

func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// Compare сравнивает ключевые поля квитанции пользователя с сертифицированной.
// Пустой результат означает совпадение.
func Compare(user, certified Receipt) []string {
	fields := []struct {
		name      string
		user      string
		certified string
	}{
		{"merchant", user.Merchant, certified.Merchant},
		{"date", stringOr(user.Date, "None"), stringOr(certified.Date, "None")},
		{"time", stringOr(user.Time, "None"), stringOr(certified.Time, "None")},
		{"currency", stringOr(user.Currency, "None"), stringOr(certified.Currency, "None")},
		{"subtotal", user.Subtotal.String(), certified.Subtotal.String()},
		{"tax", user.Tax.String(), certified.Tax.String()},
		{"total", user.Total.String(), certified.Total.String()},
	}

	var differences []string
	for _, f := range fields {
		if f.user != f.certified {
			differences = append(differences, fmt.Sprintf("%s: user has '%s', certified has '%s'", f.name, f.user, f.certified))
		}
	}
	return differences
}
