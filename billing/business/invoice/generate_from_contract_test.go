package invoice

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/domain/invoice_locker"
	"encore.app/billing/mocks/repository/contract_repo"
	"encore.app/billing/mocks/repository/invoice_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/contracts"
	"encore.app/billing/repository/invoices"
)

type contractFixture struct {
	invoiceRepo  *invoice_repo.MockQuerier
	contractRepo *contract_repo.MockQuerier
	locker       *invoice_locker.MockInvoiceLocker
	business     *business
}

func newContractFixture(t *testing.T) *contractFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &contractFixture{
		invoiceRepo:  invoice_repo.NewMockQuerier(ctrl),
		contractRepo: contract_repo.NewMockQuerier(ctrl),
		locker:       invoice_locker.NewMockInvoiceLocker(ctrl),
	}
	f.business = &business{
		invoiceRepo:  f.invoiceRepo,
		contractRepo: f.contractRepo,
		locker:       f.locker,
	}
	return f
}

// passthroughInTx makes InTx hand the plain invoice mock to the callback, as
// if it were transaction-scoped.
func (f *contractFixture) passthroughInTx(times int) {
	f.locker.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(invoices.Querier) error) error {
			return fn(f.invoiceRepo)
		},
	).Times(times)
}

func TestGenerateFromContract_FlatAmountFallback(t *testing.T) {
	f := newContractFixture(t)

	f.contractRepo.EXPECT().GetContract(gomock.Any(), int64(7)).Return(contracts.Contract{
		ID:               7,
		ContractNumber:   "C-2026-007",
		CustomerID:       pgtype.Int8{Int64: 3, Valid: true},
		ContractType:     string(model.ContractTypeRecurring),
		BillingFrequency: string(model.BillingWeekly),
		TotalAmount:      num(t, "120"),
		VatRate:          num(t, "18"),
		PaymentTermsDays: pgtype.Int4{Int32: 14, Valid: true},
	}, nil)
	f.contractRepo.EXPECT().GetContractServices(gomock.Any(), int64(7)).Return([]contracts.ContractService{
		{ID: 1, ContractID: 7, Name: "Window cleaning", UnitPrice: num(t, "50")},
	}, nil)

	f.invoiceRepo.EXPECT().NextInvoiceSequence(gomock.Any(), gomock.Any()).Return(int32(12), nil)
	f.passthroughInTx(1)

	var created invoices.CreateInvoiceParams
	f.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg invoices.CreateInvoiceParams) (invoices.Invoice, error) {
			created = arg
			return invoiceRowFromCreate(55, arg), nil
		},
	)
	var lineID int64
	f.invoiceRepo.EXPECT().CreateInvoiceLineItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg invoices.CreateInvoiceLineItemParams) (invoices.InvoiceLineItem, error) {
			lineID++
			return lineRowFromCreate(lineID, arg), nil
		},
	).Times(2)

	inv, err := f.business.GenerateFromContract(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(55), inv.ID)
	assert.Equal(t, model.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, "EUR", inv.Currency)
	require.NotNil(t, inv.ContractID)
	assert.Equal(t, int64(7), *inv.ContractID)
	require.NotNil(t, inv.CustomerID)
	assert.Equal(t, int64(3), *inv.CustomerID)

	// Weekly at 120 means 4 occurrences a month: 480 contract value plus the
	// 50 window cleaning service, taxed at 18%.
	assert.Equal(t, "530.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "95.40", inv.TaxAmount.StringFixed(2))
	assert.Equal(t, "625.40", inv.TotalAmount.StringFixed(2))
	assert.Equal(t, "625.40", inv.Balance.StringFixed(2))
	assert.Equal(t, "0.00", inv.PaidAmount.StringFixed(2))

	require.Len(t, inv.LineItems, 2)
	assert.Equal(t, "Cleaning services per contract C-2026-007 (monthly)", inv.LineItems[0].Description)
	assert.Equal(t, "480.00", inv.LineItems[0].Total.StringFixed(2))
	assert.Equal(t, "Window cleaning", inv.LineItems[1].Description)
	assert.Equal(t, "50.00", inv.LineItems[1].Total.StringFixed(2))

	require.NotNil(t, inv.WorkflowID)
	assert.Contains(t, *inv.WorkflowID, "invoice-INV-")
	assert.Contains(t, inv.InvoiceNumber, "INV-")
	assert.Contains(t, inv.InvoiceNumber, "0012")

	// The contract's own payment terms set the due date.
	assert.Equal(t, created.IssueDate.Time.AddDate(0, 0, 14), created.DueDate.Time)
}

func TestGenerateFromContract_PaymentCalculation(t *testing.T) {
	f := newContractFixture(t)

	f.contractRepo.EXPECT().GetContract(gomock.Any(), int64(9)).Return(contracts.Contract{
		ID:               9,
		ContractNumber:   "C-2026-009",
		CustomerID:       pgtype.Int8{Int64: 4, Valid: true},
		ContractType:     string(model.ContractTypeLongTerm),
		BillingFrequency: string(model.BillingMonthly),
		TotalAmount:      num(t, "99999"), // ignored once a calculation exists

		QuantityHours:              num(t, "8"),
		HourlyRate:                 num(t, "15"),
		CalcVatRate:                num(t, "8.1"),
		RhythmCountByYear:          pgtype.Int4{Int32: 52, Valid: true},
		EmployeeHoursPerEngagement: num(t, "4"),
		NumberOfEmployees:          pgtype.Int4{Int32: 2, Valid: true},
	}, nil)
	f.contractRepo.EXPECT().GetContractServices(gomock.Any(), int64(9)).Return(nil, nil)

	f.invoiceRepo.EXPECT().NextInvoiceSequence(gomock.Any(), gomock.Any()).Return(int32(13), nil)
	f.passthroughInTx(1)

	f.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg invoices.CreateInvoiceParams) (invoices.Invoice, error) {
			return invoiceRowFromCreate(56, arg), nil
		},
	)
	f.invoiceRepo.EXPECT().CreateInvoiceLineItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg invoices.CreateInvoiceLineItemParams) (invoices.InvoiceLineItem, error) {
			return lineRowFromCreate(1, arg), nil
		},
	)

	inv, err := f.business.GenerateFromContract(context.Background(), 9)
	require.NoError(t, err)

	// 4h x 2 employees x 15/h x 52 visits = 6240 a year, 520 a month,
	// taxed at the calculation's own 8.1%.
	assert.Equal(t, "520.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "8.1", inv.TaxRate.String())
	assert.Equal(t, "42.12", inv.TaxAmount.StringFixed(2))
	assert.Equal(t, "562.12", inv.TotalAmount.StringFixed(2))
	require.Len(t, inv.LineItems, 1)
	assert.Equal(t, "520.00", inv.LineItems[0].UnitPrice.StringFixed(2))
}

func TestGenerateFromContract_NotFound(t *testing.T) {
	f := newContractFixture(t)

	f.contractRepo.EXPECT().GetContract(gomock.Any(), int64(404)).Return(contracts.Contract{}, pgx.ErrNoRows)

	_, err := f.business.GenerateFromContract(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.Code(err))
}

func TestGenerateFromContract_RetriesOnNumberCollision(t *testing.T) {
	f := newContractFixture(t)

	f.contractRepo.EXPECT().GetContract(gomock.Any(), int64(7)).Return(contracts.Contract{
		ID:               7,
		ContractNumber:   "C-2026-007",
		CustomerID:       pgtype.Int8{Int64: 3, Valid: true},
		ContractType:     string(model.ContractTypeRecurring),
		BillingFrequency: string(model.BillingMonthly),
		TotalAmount:      num(t, "500"),
		VatRate:          num(t, "18"),
	}, nil)
	f.contractRepo.EXPECT().GetContractServices(gomock.Any(), int64(7)).Return(nil, nil)

	gomock.InOrder(
		f.invoiceRepo.EXPECT().NextInvoiceSequence(gomock.Any(), gomock.Any()).Return(int32(20), nil),
		f.invoiceRepo.EXPECT().NextInvoiceSequence(gomock.Any(), gomock.Any()).Return(int32(21), nil),
	)
	f.passthroughInTx(2)

	collision := &pgconn.PgError{Code: "23505", ConstraintName: "invoices_invoice_number_key"}
	first := f.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(invoices.Invoice{}, collision)
	f.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg invoices.CreateInvoiceParams) (invoices.Invoice, error) {
			assert.Contains(t, arg.InvoiceNumber, "0021")
			return invoiceRowFromCreate(57, arg), nil
		},
	).After(first)
	f.invoiceRepo.EXPECT().CreateInvoiceLineItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg invoices.CreateInvoiceLineItemParams) (invoices.InvoiceLineItem, error) {
			return lineRowFromCreate(1, arg), nil
		},
	)

	inv, err := f.business.GenerateFromContract(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(57), inv.ID)
	assert.Contains(t, inv.InvoiceNumber, "0021")
}
