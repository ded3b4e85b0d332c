package contracts

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// Contract rows are read-only inside the billing engine; contract CRUD lives
// with the customer-management subsystem.
type Contract struct {
	ID               int64
	ContractNumber   string
	CustomerID       pgtype.Int8
	ContractType     string
	BillingFrequency string
	TotalAmount      pgtype.Numeric
	VatRate          pgtype.Numeric
	PaymentTermsDays pgtype.Int4

	// payment_calculation block; HourlyRate.Valid gates its presence
	QuantityHours              pgtype.Numeric
	HourlyRate                 pgtype.Numeric
	CalcVatRate                pgtype.Numeric
	RhythmCountByYear          pgtype.Int4
	EmployeeHoursPerEngagement pgtype.Numeric
	NumberOfEmployees          pgtype.Int4

	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type ContractService struct {
	ID         int64
	ContractID int64
	Name       string
	Frequency  pgtype.Text
	UnitPrice  pgtype.Numeric
}

type Customer struct {
	ID    int64
	Name  string
	Email pgtype.Text
}

type Querier interface {
	GetContract(ctx context.Context, id int64) (Contract, error)
	GetContractServices(ctx context.Context, contractID int64) ([]ContractService, error)
	GetCustomer(ctx context.Context, id int64) (Customer, error)
}

var _ Querier = (*Queries)(nil)

const getContract = `SELECT id, contract_number, customer_id, contract_type, billing_frequency,
total_amount, vat_rate, payment_terms_days,
quantity_hours, hourly_rate, calc_vat_rate, rhythm_count_by_year,
employee_hours_per_engagement, number_of_employees,
created_at, updated_at
FROM contracts WHERE id = $1`

func (q *Queries) GetContract(ctx context.Context, id int64) (Contract, error) {
	var c Contract
	err := q.db.QueryRow(ctx, getContract, id).Scan(
		&c.ID, &c.ContractNumber, &c.CustomerID, &c.ContractType, &c.BillingFrequency,
		&c.TotalAmount, &c.VatRate, &c.PaymentTermsDays,
		&c.QuantityHours, &c.HourlyRate, &c.CalcVatRate, &c.RhythmCountByYear,
		&c.EmployeeHoursPerEngagement, &c.NumberOfEmployees,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

const getContractServices = `SELECT id, contract_id, name, frequency, unit_price
FROM contract_services WHERE contract_id = $1 ORDER BY id`

func (q *Queries) GetContractServices(ctx context.Context, contractID int64) ([]ContractService, error) {
	rows, err := q.db.Query(ctx, getContractServices, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ContractService
	for rows.Next() {
		var s ContractService
		if err := rows.Scan(&s.ID, &s.ContractID, &s.Name, &s.Frequency, &s.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const getCustomer = `SELECT id, name, email FROM customers WHERE id = $1`

func (q *Queries) GetCustomer(ctx context.Context, id int64) (Customer, error) {
	var c Customer
	err := q.db.QueryRow(ctx, getCustomer, id).Scan(&c.ID, &c.Name, &c.Email)
	return c, err
}
