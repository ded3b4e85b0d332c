package billing

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

func (r *VerifyTokenRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "token is required"}
	}
	return nil
}

type VerifyTokenResponse struct {
	Valid bool `json:"valid"`
	// Invoice is present only when the token checks out.
	Invoice *model.Invoice `json:"invoice,omitempty"`
}

// VerifyPaymentToken checks a payment link token without consuming it, so a
// payment page can render invoice details before the customer confirms.
// Invalid and expired tokens both come back as valid=false, not an error.
//
//encore:api public path=/invoices/:id/verify-token method=POST
func (s *Service) VerifyPaymentToken(ctx context.Context, id int64, req *VerifyTokenRequest) (*VerifyTokenResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, valid, err := s.business.VerifyPaymentToken(ctx, id, req.Token)
	if err != nil {
		return nil, err
	}
	if !valid {
		return &VerifyTokenResponse{Valid: false}, nil
	}
	return &VerifyTokenResponse{Valid: true, Invoice: inv}, nil
}
