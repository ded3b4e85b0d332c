package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractTypeOneTime   ContractType = "One-time"
	ContractTypeRecurring ContractType = "Recurring"
	ContractTypeLongTerm  ContractType = "Long-term"
	ContractTypeEmergency ContractType = "Emergency"
)

type BillingFrequency string

const (
	BillingWeekly    BillingFrequency = "Weekly"
	BillingBiWeekly  BillingFrequency = "Bi-weekly"
	BillingMonthly   BillingFrequency = "Monthly"
	BillingQuarterly BillingFrequency = "Quarterly"
	BillingAnnually  BillingFrequency = "Annually"
)

// PaymentCalculation holds the base fields a contract's money figures are
// derived from. When present it is the only authority: every derived total
// must be recomputable from these fields alone.
type PaymentCalculation struct {
	QuantityHours              decimal.Decimal `json:"quantity_hours"`
	HourlyRate                 decimal.Decimal `json:"hourly_rate"`
	VATRate                    decimal.Decimal `json:"vat_rate"`
	RhythmCountByYear          int32           `json:"rhythm_count_by_year"`
	EmployeeHoursPerEngagement decimal.Decimal `json:"employee_hours_per_engagement"`
	NumberOfEmployees          int32           `json:"number_of_employees"`
}

type ContractService struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Frequency string          `json:"frequency"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Contract struct {
	ID               int64               `json:"id"`
	ContractNumber   string              `json:"contract_number"`
	CustomerID       *int64              `json:"customer_id,omitempty"`
	Type             ContractType        `json:"contract_type"`
	BillingFrequency BillingFrequency    `json:"billing_frequency"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	VATRate          *decimal.Decimal    `json:"vat_rate,omitempty"`
	PaymentTermsDays int32               `json:"payment_terms_days"`
	Calculation      *PaymentCalculation `json:"payment_calculation,omitempty"`
	Services         []ContractService   `json:"services,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
