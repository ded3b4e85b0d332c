package workflow

import "time"

const (
	// InvoiceSettledSignalName ends an invoice's lifecycle workflow early
	// when the invoice is paid in full before its due date.
	InvoiceSettledSignalName = "invoice-settled"
)

// InvoiceSettledSignal carries the settlement details for logging; the
// workflow does not act on them beyond ending the due-date watch.
type InvoiceSettledSignal struct {
	PaidAt time.Time `json:"paid_at"`
	Method string    `json:"method"`
}
