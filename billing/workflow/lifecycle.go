package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// InvoiceLifecycleParams starts the due-date watch for one invoice.
type InvoiceLifecycleParams struct {
	InvoiceID int64     `json:"invoice_id"`
	DueDate   time.Time `json:"due_date"`
}

// InvoiceLifecycle watches one invoice until it is settled or its due date
// passes. Full payment signals the workflow and ends it; the due-date timer
// firing first runs the overdue transition. Later payments on an overdue
// invoice are handled by the financial recompute on the payment write
// itself, so the workflow ends after the transition either way.
func InvoiceLifecycle(ctx workflow.Context, params InvoiceLifecycleParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting invoice lifecycle workflow", "invoiceID", params.InvoiceID, "dueDate", params.DueDate)

	now := workflow.Now(ctx)
	remaining := params.DueDate.Sub(now)
	if remaining <= 0 {
		logger.Info("Invoice already past due at workflow start", "invoiceID", params.InvoiceID)
		return markOverdue(ctx, params.InvoiceID)
	}

	settledCh := workflow.GetSignalChannel(ctx, InvoiceSettledSignalName)
	timer := workflow.NewTimer(ctx, remaining)

	var workflowErr error
	selector := workflow.NewSelector(ctx)

	selector.AddReceive(settledCh, func(c workflow.ReceiveChannel, more bool) {
		var signal InvoiceSettledSignal
		c.Receive(ctx, &signal)
		logger.Info("Invoice settled before due date", "invoiceID", params.InvoiceID, "method", signal.Method, "paidAt", signal.PaidAt)
	})

	selector.AddFuture(timer, func(f workflow.Future) {
		logger.Info("Due date reached, checking for overdue transition", "invoiceID", params.InvoiceID)
		if err := markOverdue(ctx, params.InvoiceID); err != nil {
			logger.Error("Failed to mark invoice overdue", "invoiceID", params.InvoiceID, "error", err)
			workflowErr = err
		}
	})

	selector.Select(ctx)

	logger.Info("Invoice lifecycle workflow completed", "invoiceID", params.InvoiceID)
	return workflowErr
}

// markOverdue executes the MarkOverdue activity with retries.
func markOverdue(ctx workflow.Context, invoiceID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, MarkOverdueActivity, invoiceID).Get(ctx, nil)
}
