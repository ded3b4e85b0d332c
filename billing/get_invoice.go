package billing

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

//encore:api public path=/invoices/:id method=GET
func (s *Service) GetInvoice(ctx context.Context, id int64) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.business.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return &InvoiceResponse{Invoice: *result}, nil
}

type ListInvoicesRequest struct {
	Limit  int32 `query:"limit"`
	Offset int32 `query:"offset"`
}

type ListInvoicesResponse struct {
	Invoices []*model.Invoice `json:"invoices"`
	Total    int64            `json:"total"`
}

//encore:api public path=/invoices method=GET
func (s *Service) ListInvoices(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	invoices, total, err := s.business.ListInvoices(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &ListInvoicesResponse{Invoices: invoices, Total: total}, nil
}
