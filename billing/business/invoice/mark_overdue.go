package invoice

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/billing/domain/invoicestate"
	"encore.app/billing/repository/invoices"
)

// MarkOverdue re-derives the invoice status once its due date has passed.
// Called by the lifecycle workflow's due-date timer; a no-op for invoices
// that were settled or cancelled in the meantime.
func (b *business) MarkOverdue(ctx context.Context, id int64) error {
	return b.locker.WithInvoiceLock(ctx, id, func(current invoices.Invoice, repo invoices.Querier) error {
		inv := convertDBInvoiceToModel(current)
		if inv.Settled() {
			return nil
		}

		invoicestate.Recompute(inv, time.Now())
		if string(inv.Status) == current.Status {
			return nil
		}

		if _, err := repo.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
			ID:     id,
			Status: string(inv.Status),
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update invoice status"}
		}
		return nil
	})
}
