package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Card represents one card row. The embedded transaction list is stored in a
// JSONB column and decoded with CardTransaction's tolerant unmarshaller.
type Card struct {
	CardID       string `db:"card_id"`
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	LastFour     string `db:"last_four"`
	Transactions []byte `db:"transactions"` // raw JSONB
	AuditFields
}

// CardTransaction is one entry of the embedded list. The column is
// schemaless, so decoding applies the parse-or-default recovery policy: a
// missing or non-numeric amount becomes zero instead of failing the row.
type CardTransaction struct {
	Type   string
	Amount decimal.Decimal
	Date   time.Time
	Note   string
}

// UnmarshalJSON decodes one embedded entry, defaulting the amount to zero
// when it is absent or not a usable number.
func (t *CardTransaction) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type   string          `json:"type"`
		Amount json.RawMessage `json:"amount"`
		Date   time.Time       `json:"date"`
		Note   string          `json:"note"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Type = raw.Type
	t.Amount = DecimalOrZero(raw.Amount)
	t.Date = raw.Date
	t.Note = raw.Note
	return nil
}

// MarshalJSON encodes the entry with its canonical field names.
func (t CardTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string          `json:"type"`
		Amount decimal.Decimal `json:"amount"`
		Date   time.Time       `json:"date"`
		Note   string          `json:"note"`
	}{t.Type, t.Amount, t.Date, t.Note})
}

// DecimalOrZero parses a JSON value as a decimal, accepting numbers and
// numeric strings. Anything else, including null and absence, yields zero.
func DecimalOrZero(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if d, derr := decimal.NewFromString(num.String()); derr == nil {
			return d
		}
		return decimal.Zero
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if d, derr := decimal.NewFromString(str); derr == nil {
			return d
		}
	}
	return decimal.Zero
}
