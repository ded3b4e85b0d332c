// Package invoicestate keeps an invoice's derived financial fields
// consistent. Recompute runs immediately before every persisted invoice
// write; nothing else may set balance or derive status.
package invoicestate

import (
	"time"

	"github.com/shopspring/decimal"

	"encore.app/billing/model"
)

var hundred = decimal.NewFromInt(100)

// Totals are the invoice-level amounts derived from its line items.
type Totals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// ComputeTotals derives the invoice amounts from its lines: subtotal is the
// sum of line totals, tax applies on the subtotal, the grand total subtracts
// the discount. Line totals are already rounded to cents, so the subtotal is
// exact; tax is the only figure rounded here.
func ComputeTotals(lines []model.LineItem, taxRate, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total)
	}
	tax := subtotal.Mul(taxRate).Div(hundred).Round(2)
	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal.Add(tax).Sub(discount),
	}
}

// Recompute re-derives balance and status after a mutation. Status
// precedence is Paid > Partially Paid > Overdue > unchanged; Cancelled is
// terminal and never overwritten.
func Recompute(inv *model.Invoice, now time.Time) {
	inv.Balance = inv.TotalAmount.Sub(inv.PaidAmount)

	if inv.Status == model.InvoiceStatusCancelled {
		return
	}

	switch {
	case inv.PaidAmount.GreaterThanOrEqual(inv.TotalAmount):
		inv.Status = model.InvoiceStatusPaid
	case inv.PaidAmount.IsPositive():
		inv.Status = model.InvoiceStatusPartiallyPaid
	case now.After(inv.DueDate):
		inv.Status = model.InvoiceStatusOverdue
	}
}
