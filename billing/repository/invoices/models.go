package invoices

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Invoice struct {
	ID                  int64
	InvoiceNumber       string
	ContractID          pgtype.Int8
	ScheduleID          pgtype.Int8
	CustomerID          pgtype.Int8
	Currency            string
	Subtotal            pgtype.Numeric
	TaxRate             pgtype.Numeric
	TaxAmount           pgtype.Numeric
	Discount            pgtype.Numeric
	TotalAmount         pgtype.Numeric
	PaidAmount          pgtype.Numeric
	Balance             pgtype.Numeric
	Status              string
	IssueDate           pgtype.Timestamptz
	DueDate             pgtype.Timestamptz
	PaymentMethod       pgtype.Text
	PaymentReference    pgtype.Text
	PaymentDate         pgtype.Timestamptz
	EmailSent           bool
	EmailSentAt         pgtype.Timestamptz
	EmailRecipients     []string
	PaymentToken        pgtype.Text
	PaymentTokenExpires pgtype.Timestamptz
	WorkflowID          pgtype.Text
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type InvoiceLineItem struct {
	ID          int64
	InvoiceID   int64
	Description string
	Quantity    pgtype.Numeric
	UnitPrice   pgtype.Numeric
	Total       pgtype.Numeric
	CreatedAt   pgtype.Timestamptz
}
