package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

// GenerateInvoiceRequest carries only the idempotency header; the contract
// itself supplies everything the invoice needs.
type GenerateInvoiceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
}

type InvoiceResponse struct {
	Invoice model.Invoice `json:"invoice"`
}

// GenerateContractInvoice builds a draft invoice from an active contract's
// payment terms and starts its lifecycle workflow.
//
//encore:api public path=/customer-contracts/:id method=POST tag:idempotency
func (s *Service) GenerateContractInvoice(ctx context.Context, id int64, req *GenerateInvoiceRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid contract ID"}
	}

	result, err := s.business.GenerateFromContract(ctx, id)
	if err != nil {
		rlog.Error("failed to generate invoice from contract", "contract_id", id, "error", err)
		return nil, err
	}

	s.startInvoiceLifecycle(ctx, result)

	rlog.Info("invoice generated from contract", "contract_id", id, "invoice_id", result.ID, "invoice_number", result.InvoiceNumber)
	return &InvoiceResponse{Invoice: *result}, nil
}
