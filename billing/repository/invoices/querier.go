package invoices

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	CreateInvoiceLineItem(ctx context.Context, arg CreateInvoiceLineItemParams) (InvoiceLineItem, error)
	GetInvoice(ctx context.Context, id int64) (Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, id int64) (Invoice, error)
	GetInvoiceByScheduleID(ctx context.Context, scheduleID pgtype.Int8) (Invoice, error)
	GetLineItemsByInvoice(ctx context.Context, invoiceID int64) ([]InvoiceLineItem, error)
	ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error)
	CountInvoices(ctx context.Context) (int64, error)
	UpdateInvoiceFinancials(ctx context.Context, arg UpdateInvoiceFinancialsParams) (Invoice, error)
	UpdateInvoiceEmail(ctx context.Context, arg UpdateInvoiceEmailParams) (Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error)
	SetPaymentToken(ctx context.Context, arg SetPaymentTokenParams) (Invoice, error)
	ConsumePaymentToken(ctx context.Context, arg ConsumePaymentTokenParams) (Invoice, error)
	NextInvoiceSequence(ctx context.Context, year int32) (int32, error)
}

var _ Querier = (*Queries)(nil)
