package invoice

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
)

// NextInvoiceNumber allocates the next number for the year of now, formatted
// INV-<year>-<4-digit-seq>. Allocation bumps a per-year sequence row in a
// single statement, so concurrent callers can never draw the same number.
func (b *business) NextInvoiceNumber(ctx context.Context, now time.Time) (string, error) {
	year := int32(now.Year())
	seq, err := b.invoiceRepo.NextInvoiceSequence(ctx, year)
	if err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to allocate invoice number"}
	}
	return fmt.Sprintf("INV-%d-%04d", year, seq), nil
}
