package billing

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/billing/business/invoice"
	"encore.app/billing/domain"
	"encore.app/billing/repository/contracts"
	"encore.app/billing/repository/invoices"
	"encore.app/billing/repository/schedules"
	"encore.app/billing/workflow"
)

var cleaningBillingDB = sqldb.NewDatabase("cleaning_billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

const taskQueue = "billing"

var validate = validator.New()

//encore:service
type Service struct {
	business invoice.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	db := sqldb.Driver(cleaningBillingDB)

	invoiceRepo := invoices.New(db)
	contractRepo := contracts.New(db)
	scheduleRepo := schedules.New(db)
	locker := domain.NewInvoiceLocker(db, invoiceRepo)

	biz := invoice.NewInvoiceBusiness(invoiceRepo, contractRepo, scheduleRepo, locker)

	c, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	workflow.SetActivityDependencies(biz)

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.InvoiceLifecycle)
	w.RegisterActivity(workflow.MarkOverdueActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("billing service initialized", "task_queue", taskQueue)

	return &Service{
		business: biz,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
