package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type RecordPaymentRequest struct {
	IdempotencyKey string  `header:"X-Idempotency-Key" json:"-"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Method         string  `json:"method" validate:"required,oneof=cash bank_transfer card payment_link"`
	Reference      string  `json:"reference" validate:"omitempty,max=100"`
}

func (r *RecordPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid payment request: " + err.Error()}
	}
	return nil
}

// RecordPayment applies a payment to an invoice and re-derives its financial
// state. A payment that settles the invoice in full also ends its lifecycle
// workflow.
//
//encore:api public path=/invoices/:id/payments method=POST tag:idempotency
func (s *Service) RecordPayment(ctx context.Context, id int64, req *RecordPaymentRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	amount := decimal.NewFromFloat(req.Amount)
	result, err := s.business.RecordPayment(ctx, id, amount, req.Method, req.Reference)
	if err != nil {
		rlog.Error("failed to record payment", "invoice_id", id, "error", err)
		return nil, err
	}

	s.signalInvoiceSettled(result)

	rlog.Info("payment recorded", "invoice_id", id, "amount", req.Amount, "status", result.Status)
	return &InvoiceResponse{Invoice: *result}, nil
}
