package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/domain/invoicestate"
	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

type insertParams struct {
	Number     string
	ContractID *int64
	ScheduleID *int64
	CustomerID *int64
	Lines      []model.LineItem
	TaxRate    decimal.Decimal
	Discount   decimal.Decimal
	Totals     invoicestate.Totals
	Status     model.InvoiceStatus
	IssueDate  time.Time
	DueDate    time.Time
}

// insertInvoice persists the invoice header and its line items in one
// transaction, so an invoice can never exist half-written.
func (b *business) insertInvoice(ctx context.Context, p insertParams) (*model.Invoice, error) {
	var result *model.Invoice
	err := b.locker.InTx(ctx, func(repo invoices.Querier) error {
		dbInv, err := repo.CreateInvoice(ctx, invoices.CreateInvoiceParams{
			InvoiceNumber: p.Number,
			ContractID:    int8FromPtr(p.ContractID),
			ScheduleID:    int8FromPtr(p.ScheduleID),
			CustomerID:    int8FromPtr(p.CustomerID),
			Currency:      Currency,
			Subtotal:      decimalToNumeric(p.Totals.Subtotal),
			TaxRate:       decimalToNumeric(p.TaxRate),
			TaxAmount:     decimalToNumeric(p.Totals.TaxAmount),
			Discount:      decimalToNumeric(p.Discount),
			TotalAmount:   decimalToNumeric(p.Totals.TotalAmount),
			PaidAmount:    decimalToNumeric(decimal.Zero),
			Balance:       decimalToNumeric(p.Totals.TotalAmount),
			Status:        string(p.Status),
			IssueDate:     pgtype.Timestamptz{Time: p.IssueDate, Valid: true},
			DueDate:       pgtype.Timestamptz{Time: p.DueDate, Valid: true},
			WorkflowID:    pgtype.Text{String: workflowIDFor(p.Number), Valid: true},
		})
		if err != nil {
			return err
		}

		inv := convertDBInvoiceToModel(dbInv)
		for _, line := range p.Lines {
			dbLine, err := repo.CreateInvoiceLineItem(ctx, invoices.CreateInvoiceLineItemParams{
				InvoiceID:   dbInv.ID,
				Description: line.Description,
				Quantity:    decimalToNumeric(line.Quantity),
				UnitPrice:   decimalToNumeric(line.UnitPrice),
				Total:       decimalToNumeric(line.Total),
			})
			if err != nil {
				return err
			}
			inv.LineItems = append(inv.LineItems, convertDBLineItemToModel(dbLine))
		}

		result = inv
		return nil
	})
	return result, err
}

func workflowIDFor(invoiceNumber string) string {
	return fmt.Sprintf("invoice-%s", invoiceNumber)
}

func int8FromPtr(p *int64) pgtype.Int8 {
	if p == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *p, Valid: true}
}

// isUniqueViolation reports whether err is a unique-constraint violation on
// the named constraint; an empty name matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// mapCreateError converts raw persistence errors from invoice creation into
// API errors; errs.Error values pass through untouched.
func mapCreateError(err error) error {
	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if isUniqueViolation(err, "") {
		return &errs.Error{Code: errs.AlreadyExists, Message: "invoice already exists"}
	}
	return &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
}
