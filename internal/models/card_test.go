package models_test

import (
	"encoding/json"
	"testing"

	"github.com/finflow/family_finance_app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalOrZero(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain number", input: `120.5`, want: "120.5"},
		{name: "numeric string", input: `"99.99"`, want: "99.99"},
		{name: "integer", input: `1000`, want: "1000"},
		{name: "null defaults to zero", input: `null`, want: "0"},
		{name: "non-numeric string defaults to zero", input: `"lots"`, want: "0"},
		{name: "object defaults to zero", input: `{"value": 5}`, want: "0"},
		{name: "array defaults to zero", input: `[1]`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := models.DecimalOrZero(json.RawMessage(tt.input))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDecimalOrZero_AbsentValue(t *testing.T) {
	got := models.DecimalOrZero(nil)
	assert.True(t, got.IsZero())
}

func TestCardTransaction_TolerantDecode(t *testing.T) {
	raw := `[
		{"type": "expense", "amount": 120.5, "date": "2024-05-10T10:00:00Z", "note": "fuel"},
		{"type": "expense", "amount": "80.25", "date": "2024-05-11T10:00:00Z"},
		{"type": "payment", "amount": "not a number", "date": "2024-05-12T10:00:00Z"},
		{"type": "expense", "date": "2024-05-13T10:00:00Z"}
	]`

	var entries []models.CardTransaction
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 4)

	assert.Equal(t, "120.5", entries[0].Amount.String())
	assert.Equal(t, "fuel", entries[0].Note)
	assert.Equal(t, "80.25", entries[1].Amount.String())
	// Unusable amounts decode to zero instead of failing the whole list.
	assert.True(t, entries[2].Amount.IsZero())
	assert.True(t, entries[3].Amount.IsZero())
}
