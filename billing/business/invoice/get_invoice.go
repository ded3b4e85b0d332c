package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// GetInvoice returns the invoice with its line items.
func (b *business) GetInvoice(ctx context.Context, id int64) (*model.Invoice, error) {
	dbInv, err := b.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}
	return b.withLineItems(ctx, convertDBInvoiceToModel(dbInv))
}

func (b *business) ListInvoices(ctx context.Context, limit, offset int32) ([]*model.Invoice, int64, error) {
	dbInvoices, err := b.invoiceRepo.ListInvoices(ctx, invoices.ListInvoicesParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
	}

	total, err := b.invoiceRepo.CountInvoices(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count invoices"}
	}

	result := make([]*model.Invoice, len(dbInvoices))
	for i, dbInv := range dbInvoices {
		result[i] = convertDBInvoiceToModel(dbInv)
	}
	return result, total, nil
}

func (b *business) withLineItems(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	dbLines, err := b.invoiceRepo.GetLineItemsByInvoice(ctx, inv.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice line items"}
	}

	inv.LineItems = make([]model.LineItem, len(dbLines))
	for i, dbLine := range dbLines {
		inv.LineItems[i] = convertDBLineItemToModel(dbLine)
	}
	return inv, nil
}
