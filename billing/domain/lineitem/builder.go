// Package lineitem turns contracts and completed schedule occurrences into
// invoice line items.
package lineitem

import (
	"fmt"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/domain/frequency"
	"encore.app/billing/model"
)

// DefaultHourlyRate applies when a schedule's contract carries no payment
// calculation to take an hourly rate from.
var DefaultHourlyRate = decimal.NewFromInt(46)

// FallbackDuration is charged when a completed visit recorded neither an
// actual nor an estimated duration. Two hours is the shortest bookable visit.
var FallbackDuration = decimal.NewFromInt(2)

// ErrInvalidLineItem is returned when a built line would violate the
// quantity > 0 / unit price >= 0 constraint.
var ErrInvalidLineItem = &errs.Error{
	Code:    errs.InvalidArgument,
	Message: "invalid line item: quantity must be positive and unit price non-negative",
}

// FromContract builds the line items for an on-demand contract invoice: one
// synthetic line for the monthly-equivalent contract value, then one line per
// explicit contract service at its listed price.
func FromContract(contract *model.Contract, figures frequency.Figures) ([]model.LineItem, error) {
	lines := []model.LineItem{{
		Description: fmt.Sprintf("Cleaning services per contract %s (monthly)", contract.ContractNumber),
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   figures.MonthlyAmountExclVAT,
	}}

	for _, svc := range contract.Services {
		lines = append(lines, model.LineItem{
			Description: svc.Name,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   svc.UnitPrice,
		})
	}

	for i := range lines {
		if err := finalize(&lines[i]); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// FromSchedule builds the single line item for a completed visit. Quantity is
// the actual duration, falling back to the estimate and then to
// FallbackDuration; the unit price is the contract's hourly rate when a
// payment calculation exists, otherwise DefaultHourlyRate.
func FromSchedule(schedule *model.ScheduleOccurrence, contract *model.Contract, location *model.ServiceLocation) (model.LineItem, error) {
	quantity := FallbackDuration
	switch {
	case schedule.ActualDuration != nil:
		quantity = *schedule.ActualDuration
	case schedule.EstimatedDuration != nil:
		quantity = *schedule.EstimatedDuration
	}

	rate := DefaultHourlyRate
	if contract != nil && contract.Calculation != nil {
		rate = contract.Calculation.HourlyRate
	}

	cleaningType := schedule.CleaningType
	if cleaningType == "" {
		cleaningType = "Cleaning service"
	}

	line := model.LineItem{
		Description: fmt.Sprintf("%s at %s on %s", cleaningType, location.Name, schedule.ScheduledAt.Format("2006-01-02")),
		Quantity:    quantity,
		UnitPrice:   rate,
	}
	if err := finalize(&line); err != nil {
		return model.LineItem{}, err
	}
	return line, nil
}

// finalize validates the line and fixes its total as quantity x unit price,
// rounded to cents.
func finalize(line *model.LineItem) error {
	if !line.Quantity.IsPositive() || line.UnitPrice.IsNegative() {
		return ErrInvalidLineItem
	}
	line.Total = line.Quantity.Mul(line.UnitPrice).Round(2)
	return nil
}
