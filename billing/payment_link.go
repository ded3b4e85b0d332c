package billing

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type PaymentLinkRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	// TTLHours overrides the default 72 hour link validity, capped at 30 days.
	TTLHours int `json:"ttl_hours" validate:"omitempty,min=1,max=720"`
}

func (r *PaymentLinkRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "ttl_hours must be between 1 and 720"}
	}
	return nil
}

type PaymentLinkResponse struct {
	InvoiceID int64     `json:"invoice_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreatePaymentLink issues a fresh single-use payment token for the invoice
// and returns the mark-paid link to embed in the customer email. Issuing a
// new link invalidates any previous one for the same invoice.
//
//encore:api public path=/invoices/:id/payment-link method=POST tag:idempotency
func (s *Service) CreatePaymentLink(ctx context.Context, id int64, req *PaymentLinkRequest) (*PaymentLinkResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ttl := time.Duration(req.TTLHours) * time.Hour

	result, err := s.business.IssuePaymentToken(ctx, id, ttl)
	if err != nil {
		rlog.Error("failed to issue payment token", "invoice_id", id, "error", err)
		return nil, err
	}
	if result.PaymentToken == nil || result.PaymentTokenExpires == nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "payment token was not stored"}
	}

	rlog.Info("payment link issued", "invoice_id", id, "expires_at", *result.PaymentTokenExpires)
	return &PaymentLinkResponse{
		InvoiceID: id,
		URL:       fmt.Sprintf("/invoices/%d/mark-paid?token=%s", id, *result.PaymentToken),
		ExpiresAt: *result.PaymentTokenExpires,
	}, nil
}
