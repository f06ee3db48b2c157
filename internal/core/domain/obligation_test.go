package domain_test

import (
	"testing"
	"time"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScheduledObligation_MonthlyEquivalent(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		obligation domain.ScheduledObligation
		want       decimal.Decimal
	}{
		{
			name: "monthly passes through",
			obligation: domain.ScheduledObligation{
				Amount:    decimal.NewFromInt(500),
				Frequency: domain.Monthly,
			},
			want: decimal.NewFromInt(500),
		},
		{
			name: "quarterly divides by three",
			obligation: domain.ScheduledObligation{
				Amount:    decimal.NewFromInt(300),
				Frequency: domain.Quarterly,
			},
			want: decimal.NewFromInt(100),
		},
		{
			name: "yearly divides by twelve",
			obligation: domain.ScheduledObligation{
				Amount:    decimal.NewFromInt(1200),
				Frequency: domain.Yearly,
			},
			want: decimal.NewFromInt(100),
		},
		{
			name: "one-time due this month counts in full",
			obligation: domain.ScheduledObligation{
				Amount:    decimal.NewFromInt(750),
				Frequency: domain.OneTime,
				DueDate:   time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC),
			},
			want: decimal.NewFromInt(750),
		},
		{
			name: "one-time due next month counts nothing",
			obligation: domain.ScheduledObligation{
				Amount:    decimal.NewFromInt(750),
				Frequency: domain.OneTime,
				DueDate:   time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			},
			want: decimal.Zero,
		},
		{
			name: "one-time same month of a different year counts nothing",
			obligation: domain.ScheduledObligation{
				Amount:    decimal.NewFromInt(750),
				Frequency: domain.OneTime,
				DueDate:   time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
			},
			want: decimal.Zero,
		},
		{
			name: "unknown frequency counts nothing",
			obligation: domain.ScheduledObligation{
				Amount:    decimal.NewFromInt(750),
				Frequency: "WEEKLY",
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.obligation.MonthlyEquivalent(now)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
