package lineitem

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/billing/domain/frequency"
	"encore.app/billing/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFromContract(t *testing.T) {
	contract := &model.Contract{
		ID:             1,
		ContractNumber: "C-2026-0042",
		Services: []model.ContractService{
			{Name: "Window cleaning", UnitPrice: dec("80")},
			{Name: "Carpet treatment", UnitPrice: dec("45.50")},
		},
	}
	figures := frequency.Figures{MonthlyAmountExclVAT: dec("520")}

	lines, err := FromContract(contract, figures)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0].Description, "C-2026-0042")
	assert.True(t, lines[0].Quantity.Equal(dec("1")))
	assert.True(t, lines[0].UnitPrice.Equal(dec("520")))
	assert.True(t, lines[0].Total.Equal(dec("520")))

	assert.Equal(t, "Window cleaning", lines[1].Description)
	assert.True(t, lines[1].Total.Equal(dec("80")))
	assert.Equal(t, "Carpet treatment", lines[2].Description)
	assert.True(t, lines[2].Total.Equal(dec("45.50")))
}

func TestFromContractRejectsNegativeServicePrice(t *testing.T) {
	contract := &model.Contract{
		ContractNumber: "C-1",
		Services:       []model.ContractService{{Name: "Credit line", UnitPrice: dec("-10")}},
	}

	_, err := FromContract(contract, frequency.Figures{MonthlyAmountExclVAT: dec("100")})
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

func TestFromSchedule(t *testing.T) {
	location := &model.ServiceLocation{ID: 7, Name: "Riverside Office Park"}
	scheduledAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		schedule     *model.ScheduleOccurrence
		contract     *model.Contract
		wantQuantity string
		wantRate     string
		wantTotal    string
	}{
		{
			name: "actual_duration_wins",
			schedule: &model.ScheduleOccurrence{
				CleaningType:      "Deep cleaning",
				ScheduledAt:       scheduledAt,
				ActualDuration:    decPtr("3.5"),
				EstimatedDuration: decPtr("2"),
			},
			wantQuantity: "3.5",
			wantRate:     "46",
			wantTotal:    "161.00",
		},
		{
			name: "falls_back_to_estimated",
			schedule: &model.ScheduleOccurrence{
				CleaningType:      "Deep cleaning",
				ScheduledAt:       scheduledAt,
				EstimatedDuration: decPtr("2.5"),
			},
			wantQuantity: "2.5",
			wantRate:     "46",
			wantTotal:    "115.00",
		},
		{
			name: "falls_back_to_fixed_duration",
			schedule: &model.ScheduleOccurrence{
				CleaningType: "Regular cleaning",
				ScheduledAt:  scheduledAt,
			},
			wantQuantity: "2",
			wantRate:     "46",
			wantTotal:    "92.00",
		},
		{
			name: "contract_hourly_rate_wins",
			schedule: &model.ScheduleOccurrence{
				CleaningType:   "Regular cleaning",
				ScheduledAt:    scheduledAt,
				ActualDuration: decPtr("4"),
			},
			contract: &model.Contract{
				Calculation: &model.PaymentCalculation{HourlyRate: dec("52.50")},
			},
			wantQuantity: "4",
			wantRate:     "52.50",
			wantTotal:    "210.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := FromSchedule(tc.schedule, tc.contract, location)
			require.NoError(t, err)

			assert.True(t, line.Quantity.Equal(dec(tc.wantQuantity)), "quantity: %s", line.Quantity)
			assert.True(t, line.UnitPrice.Equal(dec(tc.wantRate)), "unit price: %s", line.UnitPrice)
			assert.True(t, line.Total.Equal(dec(tc.wantTotal)), "total: %s", line.Total)
			assert.Contains(t, line.Description, "Riverside Office Park")
			assert.Contains(t, line.Description, "2026-03-14")
		})
	}
}

func TestFromScheduleRejectsZeroDuration(t *testing.T) {
	schedule := &model.ScheduleOccurrence{
		CleaningType:   "Regular cleaning",
		ScheduledAt:    time.Now(),
		ActualDuration: decPtr("0"),
	}

	_, err := FromSchedule(schedule, nil, &model.ServiceLocation{Name: "Somewhere"})
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}
