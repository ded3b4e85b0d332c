// Package frequency normalizes a contract's raw payment parameters into
// monthly and annual money figures. All arithmetic runs on unrounded
// decimals; rounding to cents happens exactly once, when a figure is
// assigned to the output struct.
package frequency

import (
	"github.com/shopspring/decimal"

	"encore.app/billing/model"
)

// DefaultVATRate is the jurisdiction default, applied when neither the
// contract nor its payment calculation carries an explicit rate.
var DefaultVATRate = decimal.NewFromInt(18)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Input is the subset of a contract the normalizer reads.
type Input struct {
	ContractType     model.ContractType
	BillingFrequency model.BillingFrequency

	// FlatAmount is the contract's listed total, used only when no
	// payment calculation is present.
	FlatAmount decimal.Decimal

	// VATRate overrides the jurisdiction default on the fallback path.
	VATRate *decimal.Decimal

	Calculation *model.PaymentCalculation
}

// Figures is the full set of derived money figures, rounded to cents.
type Figures struct {
	TotalHoursPerEngagement      decimal.Decimal `json:"total_hours_per_engagement"`
	TotalAnnualizedQuantityHours decimal.Decimal `json:"total_annualized_quantity_hours"`
	TotalMonthWorkingHours       decimal.Decimal `json:"total_month_working_hours"`
	AnnualAmountExclVAT          decimal.Decimal `json:"annual_amount_excl_vat"`
	VATAmount                    decimal.Decimal `json:"vat_amount"`
	AnnualAmountInclVAT          decimal.Decimal `json:"annual_amount_incl_vat"`
	MonthlyAmountExclVAT         decimal.Decimal `json:"monthly_amount_excl_vat"`
	MonthlyContractValue         decimal.Decimal `json:"monthly_contract_value"`
	AppliedVATRate               decimal.Decimal `json:"applied_vat_rate"`
}

// Normalize derives the monthly/annual figures for a contract. With a
// payment calculation present the figures come purely from its base fields;
// without one it falls back to the occurrence-count heuristic over the
// contract's flat amount.
func Normalize(in Input) Figures {
	if in.Calculation != nil {
		return fromCalculation(in.Calculation)
	}
	return fromFlatAmount(in)
}

func fromCalculation(calc *model.PaymentCalculation) Figures {
	employees := decimal.NewFromInt32(calc.NumberOfEmployees)
	rhythm := decimal.NewFromInt32(calc.RhythmCountByYear)

	hoursPerEngagement := calc.EmployeeHoursPerEngagement.Mul(employees)
	annualHours := hoursPerEngagement.Mul(rhythm)
	monthlyHours := annualHours.Div(twelve)

	annualExcl := hoursPerEngagement.Mul(calc.HourlyRate).Mul(rhythm)
	vat := annualExcl.Mul(calc.VATRate).Div(hundred)
	annualIncl := annualExcl.Add(vat)

	return Figures{
		TotalHoursPerEngagement:      hoursPerEngagement.Round(2),
		TotalAnnualizedQuantityHours: annualHours.Round(2),
		TotalMonthWorkingHours:       monthlyHours.Round(2),
		AnnualAmountExclVAT:          annualExcl.Round(2),
		VATAmount:                    vat.Round(2),
		AnnualAmountInclVAT:          annualIncl.Round(2),
		MonthlyAmountExclVAT:         annualExcl.Div(twelve).Round(2),
		MonthlyContractValue:         annualIncl.Div(twelve).Round(2),
		AppliedVATRate:               calc.VATRate,
	}
}

func fromFlatAmount(in Input) Figures {
	monthlyExcl := in.FlatAmount
	if in.ContractType == model.ContractTypeRecurring || in.ContractType == model.ContractTypeLongTerm {
		monthlyExcl = in.FlatAmount.Mul(OccurrenceMultiplier(in.BillingFrequency))
	}

	rate := DefaultVATRate
	if in.VATRate != nil {
		rate = *in.VATRate
	}

	vat := monthlyExcl.Mul(rate).Div(hundred)
	monthlyIncl := monthlyExcl.Add(vat)
	annualExcl := monthlyExcl.Mul(twelve)
	annualVAT := annualExcl.Mul(rate).Div(hundred)

	return Figures{
		AnnualAmountExclVAT:  annualExcl.Round(2),
		VATAmount:            annualVAT.Round(2),
		AnnualAmountInclVAT:  annualExcl.Add(annualVAT).Round(2),
		MonthlyAmountExclVAT: monthlyExcl.Round(2),
		MonthlyContractValue: monthlyIncl.Round(2),
		AppliedVATRate:       rate,
	}
}

// OccurrenceMultiplier converts a billing frequency into the number of
// billed occurrences per month.
func OccurrenceMultiplier(f model.BillingFrequency) decimal.Decimal {
	switch f {
	case model.BillingWeekly:
		return decimal.NewFromInt(4)
	case model.BillingBiWeekly:
		return decimal.NewFromInt(2)
	case model.BillingQuarterly:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
	case model.BillingAnnually:
		return decimal.NewFromInt(1).Div(twelve)
	default:
		return decimal.NewFromInt(1)
	}
}
