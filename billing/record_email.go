package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type RecordEmailRequest struct {
	IdempotencyKey string   `header:"X-Idempotency-Key" json:"-"`
	Recipients     []string `json:"recipients" validate:"required,min=1,dive,email"`
}

func (r *RecordEmailRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "at least one valid recipient email is required"}
	}
	return nil
}

// RecordEmailSent marks an invoice as delivered to the customer. Sending the
// mail itself happens outside this service; this endpoint records the fact
// and moves a draft invoice to Sent.
//
//encore:api public path=/invoices/:id/email method=POST tag:idempotency
func (s *Service) RecordEmailSent(ctx context.Context, id int64, req *RecordEmailRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.business.RecordEmailSent(ctx, id, req.Recipients)
	if err != nil {
		rlog.Error("failed to record invoice email", "invoice_id", id, "error", err)
		return nil, err
	}

	rlog.Info("invoice email recorded", "invoice_id", id, "recipients", len(req.Recipients))
	return &InvoiceResponse{Invoice: *result}, nil
}
