package billing

import (
	"context"
	"time"
)

type GenerateNumberResponse struct {
	InvoiceNumber string `json:"invoice_number"`
}

// GenerateInvoiceNumber reserves the next invoice number for the current
// year. Each call consumes a sequence slot, so two callers never see the
// same number.
//
//encore:api public path=/invoices/generate-number method=GET
func (s *Service) GenerateInvoiceNumber(ctx context.Context) (*GenerateNumberResponse, error) {
	number, err := s.business.NextInvoiceNumber(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return &GenerateNumberResponse{InvoiceNumber: number}, nil
}
