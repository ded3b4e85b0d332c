package billing

import (
	"context"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

// startInvoiceLifecycle launches the due-date watch for a freshly created
// invoice. Workflow IDs are derived from the invoice number, so a duplicate
// start for the same invoice is reported by Temporal and ignored here.
func (s *Service) startInvoiceLifecycle(ctx context.Context, inv *model.Invoice) {
	if inv.WorkflowID == nil {
		return
	}

	options := client.StartWorkflowOptions{
		ID:        *inv.WorkflowID,
		TaskQueue: taskQueue,
	}
	params := workflow.InvoiceLifecycleParams{
		InvoiceID: inv.ID,
		DueDate:   inv.DueDate,
	}

	if _, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.InvoiceLifecycle, params); err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("invoice lifecycle workflow already running", "invoice_id", inv.ID, "workflow_id", *inv.WorkflowID)
			return
		}
		rlog.Error("failed to start invoice lifecycle workflow", "invoice_id", inv.ID, "workflow_id", *inv.WorkflowID, "error", err)
	}
}

// signalInvoiceSettled tells the lifecycle workflow that the invoice is paid
// in full so it can stop watching the due date. Fire and forget: a failed
// signal only means the workflow ends via its timer instead.
func (s *Service) signalInvoiceSettled(inv *model.Invoice) {
	if inv.WorkflowID == nil || inv.Status != model.InvoiceStatusPaid {
		return
	}

	workflowID := *inv.WorkflowID
	signal := workflow.InvoiceSettledSignal{PaidAt: time.Now()}
	if inv.PaymentDate != nil {
		signal.PaidAt = *inv.PaymentDate
	}
	if inv.PaymentMethod != nil {
		signal.Method = *inv.PaymentMethod
	}

	runAsync("signal-invoice-settled", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.InvoiceSettledSignalName, signal)
	})
}
