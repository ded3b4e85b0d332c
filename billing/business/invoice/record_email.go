package invoice

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/billing/domain/invoicestate"
	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// RecordEmailSent marks the invoice as delivered to the given recipients.
// Financial fields are untouched, but the derived status is still refreshed
// before the write so an invoice emailed past its due date shows Overdue.
func (b *business) RecordEmailSent(ctx context.Context, id int64, recipients []string) (*model.Invoice, error) {
	if len(recipients) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "at least one recipient is required"}
	}

	var result *model.Invoice
	err := b.locker.WithInvoiceLock(ctx, id, func(current invoices.Invoice, repo invoices.Querier) error {
		inv := convertDBInvoiceToModel(current)
		invoicestate.Recompute(inv, time.Now())
		if string(inv.Status) != current.Status {
			if _, err := repo.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
				ID:     id,
				Status: string(inv.Status),
			}); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to refresh invoice status"}
			}
		}

		updated, err := repo.UpdateInvoiceEmail(ctx, invoices.UpdateInvoiceEmailParams{
			ID:              id,
			EmailRecipients: recipients,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to record email delivery"}
		}

		result = convertDBInvoiceToModel(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
