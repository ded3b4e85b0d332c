package invoice

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/domain/invoicestate"
	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// RecordPayment adds amount to the invoice's paid total and re-derives the
// financial state, all under the invoice row lock.
func (b *business) RecordPayment(ctx context.Context, id int64, amount decimal.Decimal, method, reference string) (*model.Invoice, error) {
	if !amount.IsPositive() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "payment amount must be positive"}
	}

	var result *model.Invoice
	err := b.locker.WithInvoiceLock(ctx, id, func(current invoices.Invoice, repo invoices.Querier) error {
		inv := convertDBInvoiceToModel(current)
		if inv.Status == model.InvoiceStatusCancelled {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "cannot record a payment on a cancelled invoice"}
		}

		now := time.Now()
		inv.PaidAmount = inv.PaidAmount.Add(amount.Round(2))
		inv.PaymentMethod = &method
		inv.PaymentReference = &reference
		inv.PaymentDate = &now
		invoicestate.Recompute(inv, now)

		updated, err := repo.UpdateInvoiceFinancials(ctx, invoices.UpdateInvoiceFinancialsParams{
			ID:               id,
			PaidAmount:       decimalToNumeric(inv.PaidAmount),
			Balance:          decimalToNumeric(inv.Balance),
			Status:           string(inv.Status),
			PaymentMethod:    pgtype.Text{String: method, Valid: true},
			PaymentReference: pgtype.Text{String: reference, Valid: reference != ""},
			PaymentDate:      pgtype.Timestamptz{Time: now, Valid: true},
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to record payment"}
		}

		result = convertDBInvoiceToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
