package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID            int64      `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	ContractID    *int64     `json:"contract_id,omitempty"`
	ScheduleID    *int64     `json:"schedule_id,omitempty"`
	CustomerID    *int64     `json:"customer_id,omitempty"`
	Currency      string     `json:"currency"`
	LineItems     []LineItem `json:"line_items,omitempty"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Balance     decimal.Decimal `json:"balance"`

	Status    InvoiceStatus `json:"status"`
	IssueDate time.Time     `json:"issue_date"`
	DueDate   time.Time     `json:"due_date"`

	PaymentMethod    *string    `json:"payment_method,omitempty"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	PaymentDate      *time.Time `json:"payment_date,omitempty"`

	EmailSent       bool       `json:"email_sent"`
	EmailSentAt     *time.Time `json:"email_sent_at,omitempty"`
	EmailRecipients []string   `json:"email_recipients,omitempty"`

	// The payment token is a credential for the public mark-paid link
	// and must never leave the service in an API response.
	PaymentToken        *string    `json:"-"`
	PaymentTokenExpires *time.Time `json:"-"`

	WorkflowID *string `json:"workflow_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LineItem struct {
	ID          int64           `json:"id"`
	InvoiceID   int64           `json:"invoice_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "Draft"
	InvoiceStatusSent          InvoiceStatus = "Sent"
	InvoiceStatusPaid          InvoiceStatus = "Paid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "Partially Paid"
	InvoiceStatusOverdue       InvoiceStatus = "Overdue"
	InvoiceStatusCancelled     InvoiceStatus = "Cancelled"
)

// Settled reports whether the invoice needs no further payment.
func (inv *Invoice) Settled() bool {
	return inv.Status == InvoiceStatusPaid || inv.Status == InvoiceStatusCancelled
}
