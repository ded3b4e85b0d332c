package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/business/invoice"
)

// ActivityDependencies holds what the activities need from the service.
type ActivityDependencies struct {
	InvoiceBusiness invoice.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies wires the business layer into the activities
// before the worker starts.
func SetActivityDependencies(invoiceBusiness invoice.Business) {
	activityDeps = &ActivityDependencies{
		InvoiceBusiness: invoiceBusiness,
	}
}

// MarkOverdueActivity re-derives the invoice's status once its due date has
// passed. Paid and cancelled invoices pass through unchanged.
func MarkOverdueActivity(ctx context.Context, invoiceID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing mark overdue activity", "invoiceID", invoiceID)

	if activityDeps == nil || activityDeps.InvoiceBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.InvoiceBusiness.MarkOverdue(ctx, invoiceID); err != nil {
		logger.Error("Failed to mark invoice overdue", "invoiceID", invoiceID, "error", err)
		return err
	}

	logger.Info("Invoice overdue check complete", "invoiceID", invoiceID)
	return nil
}
