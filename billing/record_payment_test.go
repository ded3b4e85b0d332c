package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/invoice_business"
	"encore.app/billing/model"
)

func TestRecordPayment_FullPaymentSignalsWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{business: mockBusiness, temporal: mockTemporal}

	origRunAsync := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
	defer func() { runAsync = origRunAsync }()

	method := "bank_transfer"
	mockBusiness.EXPECT().
		RecordPayment(gomock.Any(), int64(7), gomock.Any(), "bank_transfer", "TXN-1").
		Return(&model.Invoice{
			ID:            7,
			Status:        model.InvoiceStatusPaid,
			PaymentMethod: &method,
			WorkflowID:    strPtr("invoice-INV-2026-0012"),
		}, nil)
	mockTemporal.On("SignalWorkflow",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(nil)

	resp, err := service.RecordPayment(context.Background(), 7, &RecordPaymentRequest{
		Amount: 189.98, Method: "bank_transfer", Reference: "TXN-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, resp.Invoice.Status)
	mockTemporal.AssertCalled(t, "SignalWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordPayment_PartialPaymentDoesNotSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{business: mockBusiness, temporal: mockTemporal}

	mockBusiness.EXPECT().
		RecordPayment(gomock.Any(), int64(7), gomock.Any(), "cash", "").
		Return(&model.Invoice{
			ID:         7,
			Status:     model.InvoiceStatusPartiallyPaid,
			WorkflowID: strPtr("invoice-INV-2026-0012"),
		}, nil)

	resp, err := service.RecordPayment(context.Background(), 7, &RecordPaymentRequest{Amount: 50, Method: "cash"})
	assert.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPartiallyPaid, resp.Invoice.Status)
	mockTemporal.AssertNotCalled(t, "SignalWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordPaymentRequest_Validation(t *testing.T) {
	testCases := []struct {
		name      string
		request   *RecordPaymentRequest
		expectErr bool
	}{
		{name: "valid", request: &RecordPaymentRequest{Amount: 50, Method: "cash"}},
		{name: "zero_amount", request: &RecordPaymentRequest{Amount: 0, Method: "cash"}, expectErr: true},
		{name: "negative_amount", request: &RecordPaymentRequest{Amount: -5, Method: "cash"}, expectErr: true},
		{name: "missing_method", request: &RecordPaymentRequest{Amount: 50}, expectErr: true},
		{name: "unknown_method", request: &RecordPaymentRequest{Amount: 50, Method: "iou"}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
