package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/contracts"
	"encore.app/billing/repository/invoices"
	"encore.app/billing/repository/schedules"
)

// Currency is fixed for this deployment.
const Currency = "EUR"

// DefaultPaymentTermsDays applies when a contract does not set its own terms.
const DefaultPaymentTermsDays = 30

type Business interface {
	GenerateFromContract(ctx context.Context, contractID int64) (*model.Invoice, error)
	GenerateFromSchedule(ctx context.Context, scheduleID int64) (*model.Invoice, error)
	UpdateScheduleStatus(ctx context.Context, scheduleID int64, status model.ScheduleStatus) (*model.ScheduleOccurrence, error)

	GetInvoice(ctx context.Context, id int64) (*model.Invoice, error)
	ListInvoices(ctx context.Context, limit, offset int32) ([]*model.Invoice, int64, error)
	NextInvoiceNumber(ctx context.Context, now time.Time) (string, error)

	RecordPayment(ctx context.Context, id int64, amount decimal.Decimal, method, reference string) (*model.Invoice, error)
	RecordEmailSent(ctx context.Context, id int64, recipients []string) (*model.Invoice, error)
	MarkOverdue(ctx context.Context, id int64) error

	IssuePaymentToken(ctx context.Context, id int64, ttl time.Duration) (*model.Invoice, error)
	VerifyPaymentToken(ctx context.Context, id int64, token string) (*model.Invoice, bool, error)
	ConsumePaymentToken(ctx context.Context, id int64, token string) (*model.Invoice, error)
}

type business struct {
	invoiceRepo  invoices.Querier
	contractRepo contracts.Querier
	scheduleRepo schedules.Querier
	locker       domain.InvoiceLocker
}

func NewInvoiceBusiness(
	invoiceRepo invoices.Querier,
	contractRepo contracts.Querier,
	scheduleRepo schedules.Querier,
	locker domain.InvoiceLocker,
) Business {
	return &business{
		invoiceRepo:  invoiceRepo,
		contractRepo: contractRepo,
		scheduleRepo: scheduleRepo,
		locker:       locker,
	}
}
