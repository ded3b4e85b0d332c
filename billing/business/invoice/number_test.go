package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	invoice_repo "encore.app/billing/mocks/repository/invoice_repo"
)

func TestNextInvoiceNumber(t *testing.T) {
	testCases := []struct {
		name     string
		now      time.Time
		seq      int32
		expected string
	}{
		{
			name:     "first_number_of_year",
			now:      time.Date(2026, time.January, 2, 9, 0, 0, 0, time.UTC),
			seq:      1,
			expected: "INV-2026-0001",
		},
		{
			name:     "mid_year_sequence",
			now:      time.Date(2026, time.June, 15, 14, 30, 0, 0, time.UTC),
			seq:      42,
			expected: "INV-2026-0042",
		},
		{
			name:     "sequence_wider_than_padding",
			now:      time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC),
			seq:      12345,
			expected: "INV-2026-12345",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := invoice_repo.NewMockQuerier(ctrl)
			mockRepo.EXPECT().NextInvoiceSequence(gomock.Any(), int32(tc.now.Year())).Return(tc.seq, nil)

			b := &business{invoiceRepo: mockRepo}

			number, err := b.NextInvoiceNumber(context.Background(), tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, number)
		})
	}
}

func TestNextInvoiceNumber_SequenceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoice_repo.NewMockQuerier(ctrl)
	mockRepo.EXPECT().NextInvoiceSequence(gomock.Any(), gomock.Any()).Return(int32(0), errors.New("connection reset"))

	b := &business{invoiceRepo: mockRepo}

	_, err := b.NextInvoiceNumber(context.Background(), time.Now())
	require.Error(t, err)
	assert.Equal(t, errs.Internal, errs.Code(err))
}
