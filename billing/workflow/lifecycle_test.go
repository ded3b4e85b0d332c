package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	invmock "encore.app/billing/mocks/business/invoice_business"
)

func TestInvoiceLifecycle_DueDateMarksOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBiz := invmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(MarkOverdueActivity)

	mockBiz.EXPECT().MarkOverdue(gomock.Any(), int64(101)).Return(nil).Times(1)

	params := InvoiceLifecycleParams{InvoiceID: 101, DueDate: time.Now().Add(30 * 24 * time.Hour)}
	env.ExecuteWorkflow(InvoiceLifecycle, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceLifecycle_SettleSignalEndsWatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBiz := invmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(MarkOverdueActivity)

	// No MarkOverdue expectation: settling before the due date must not
	// touch the invoice.
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(InvoiceSettledSignalName, InvoiceSettledSignal{PaidAt: time.Now(), Method: "bank_transfer"})
	}, time.Hour)

	params := InvoiceLifecycleParams{InvoiceID: 202, DueDate: time.Now().Add(14 * 24 * time.Hour)}
	env.ExecuteWorkflow(InvoiceLifecycle, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceLifecycle_PastDueAtStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBiz := invmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(MarkOverdueActivity)

	mockBiz.EXPECT().MarkOverdue(gomock.Any(), int64(303)).Return(nil).Times(1)

	params := InvoiceLifecycleParams{InvoiceID: 303, DueDate: time.Now().Add(-time.Hour)}
	env.ExecuteWorkflow(InvoiceLifecycle, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}
