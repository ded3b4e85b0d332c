package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/repository/invoice_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

func newTokenFixture(t *testing.T) (*invoice_repo.MockQuerier, *business) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := invoice_repo.NewMockQuerier(ctrl)
	return mockRepo, &business{invoiceRepo: mockRepo}
}

func TestIssuePaymentToken(t *testing.T) {
	mockRepo, b := newTokenFixture(t)

	var stored invoices.SetPaymentTokenParams
	mockRepo.EXPECT().SetPaymentToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg invoices.SetPaymentTokenParams) (invoices.Invoice, error) {
			stored = arg
			return invoices.Invoice{
				ID:                  arg.ID,
				PaymentToken:        arg.PaymentToken,
				PaymentTokenExpires: arg.PaymentTokenExpires,
			}, nil
		},
	)

	before := time.Now()
	inv, err := b.IssuePaymentToken(context.Background(), 7, 0)
	require.NoError(t, err)

	require.NotNil(t, inv.PaymentToken)
	assert.Len(t, *inv.PaymentToken, 64)
	assert.Regexp(t, "^[a-f0-9]{64}$", *inv.PaymentToken)

	require.True(t, stored.PaymentTokenExpires.Valid)
	expiry := stored.PaymentTokenExpires.Time
	assert.WithinDuration(t, before.Add(DefaultTokenTTL), expiry, time.Minute)
}

func TestIssuePaymentToken_CustomTTL(t *testing.T) {
	mockRepo, b := newTokenFixture(t)

	mockRepo.EXPECT().SetPaymentToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg invoices.SetPaymentTokenParams) (invoices.Invoice, error) {
			assert.WithinDuration(t, time.Now().Add(6*time.Hour), arg.PaymentTokenExpires.Time, time.Minute)
			return invoices.Invoice{ID: arg.ID, PaymentToken: arg.PaymentToken, PaymentTokenExpires: arg.PaymentTokenExpires}, nil
		},
	)

	_, err := b.IssuePaymentToken(context.Background(), 7, 6*time.Hour)
	require.NoError(t, err)
}

func TestIssuePaymentToken_InvoiceNotFound(t *testing.T) {
	mockRepo, b := newTokenFixture(t)

	mockRepo.EXPECT().SetPaymentToken(gomock.Any(), gomock.Any()).Return(invoices.Invoice{}, pgx.ErrNoRows)

	_, err := b.IssuePaymentToken(context.Background(), 404, 0)
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.Code(err))
}

func TestVerifyPaymentToken(t *testing.T) {
	const goodToken = "0f2b7c9d3e5a1648b0c2d4e6f8a9b1c3d5e7f90a2b4c6d8e0f1a3b5c7d9e2f40"

	rowWithToken := func(token string, expiresIn time.Duration) invoices.Invoice {
		return invoices.Invoice{
			ID:                  7,
			PaymentToken:        pgtype.Text{String: token, Valid: true},
			PaymentTokenExpires: pgtype.Timestamptz{Time: time.Now().Add(expiresIn), Valid: true},
		}
	}

	testCases := []struct {
		name      string
		row       invoices.Invoice
		rowErr    error
		token     string
		wantValid bool
	}{
		{
			name:      "matching_token",
			row:       rowWithToken(goodToken, time.Hour),
			token:     goodToken,
			wantValid: true,
		},
		{
			name:      "wrong_token",
			row:       rowWithToken(goodToken, time.Hour),
			token:     "not-the-token",
			wantValid: false,
		},
		{
			name:      "expired_token",
			row:       rowWithToken(goodToken, -time.Minute),
			token:     goodToken,
			wantValid: false,
		},
		{
			name:      "no_token_issued",
			row:       invoices.Invoice{ID: 7},
			token:     goodToken,
			wantValid: false,
		},
		{
			name:      "empty_token",
			row:       rowWithToken(goodToken, time.Hour),
			token:     "",
			wantValid: false,
		},
		{
			name:      "unknown_invoice",
			rowErr:    pgx.ErrNoRows,
			token:     goodToken,
			wantValid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo, b := newTokenFixture(t)
			mockRepo.EXPECT().GetInvoice(gomock.Any(), int64(7)).Return(tc.row, tc.rowErr)

			inv, valid, err := b.VerifyPaymentToken(context.Background(), 7, tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.wantValid, valid)
			if tc.wantValid {
				require.NotNil(t, inv)
			} else {
				assert.Nil(t, inv)
			}
		})
	}
}

func TestConsumePaymentToken_SettlesInFull(t *testing.T) {
	mockRepo, b := newTokenFixture(t)

	mockRepo.EXPECT().ConsumePaymentToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg invoices.ConsumePaymentTokenParams) (invoices.Invoice, error) {
			assert.Equal(t, int64(7), arg.ID)
			assert.Equal(t, "tok", arg.PaymentToken)
			assert.Contains(t, arg.PaymentReference.String, "plink-")
			return invoices.Invoice{
				ID:            7,
				Status:        string(model.InvoiceStatusPaid),
				TotalAmount:   num(t, "189.98"),
				PaidAmount:    num(t, "189.98"),
				Balance:       num(t, "0"),
				PaymentMethod: pgtype.Text{String: "payment_link", Valid: true},
			}, nil
		},
	)

	inv, err := b.ConsumePaymentToken(context.Background(), 7, "tok")
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, "0.00", inv.Balance.StringFixed(2))
	require.NotNil(t, inv.PaymentMethod)
	assert.Equal(t, "payment_link", *inv.PaymentMethod)
}

func TestConsumePaymentToken_UniformFailure(t *testing.T) {
	t.Run("empty_token", func(t *testing.T) {
		_, b := newTokenFixture(t)
		_, err := b.ConsumePaymentToken(context.Background(), 7, "")
		require.Error(t, err)
		assert.Equal(t, errs.PermissionDenied, errs.Code(err))
	})

	t.Run("no_matching_row", func(t *testing.T) {
		mockRepo, b := newTokenFixture(t)
		mockRepo.EXPECT().ConsumePaymentToken(gomock.Any(), gomock.Any()).Return(invoices.Invoice{}, pgx.ErrNoRows)

		_, err := b.ConsumePaymentToken(context.Background(), 7, "stale")
		require.Error(t, err)
		assert.Equal(t, errs.PermissionDenied, errs.Code(err))
		assert.Contains(t, err.Error(), "invalid or expired payment token")
	})
}
