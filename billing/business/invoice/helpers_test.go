package invoice

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"encore.app/billing/repository/invoices"
)

func num(t *testing.T, s string) pgtype.Numeric {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return decimalToNumeric(d)
}

// invoiceRowFromCreate builds the row the insert would return, the way the
// RETURNING clause echoes the written values back.
func invoiceRowFromCreate(id int64, arg invoices.CreateInvoiceParams) invoices.Invoice {
	return invoices.Invoice{
		ID:            id,
		InvoiceNumber: arg.InvoiceNumber,
		ContractID:    arg.ContractID,
		ScheduleID:    arg.ScheduleID,
		CustomerID:    arg.CustomerID,
		Currency:      arg.Currency,
		Subtotal:      arg.Subtotal,
		TaxRate:       arg.TaxRate,
		TaxAmount:     arg.TaxAmount,
		Discount:      arg.Discount,
		TotalAmount:   arg.TotalAmount,
		PaidAmount:    arg.PaidAmount,
		Balance:       arg.Balance,
		Status:        arg.Status,
		IssueDate:     arg.IssueDate,
		DueDate:       arg.DueDate,
		WorkflowID:    arg.WorkflowID,
	}
}

func lineRowFromCreate(id int64, arg invoices.CreateInvoiceLineItemParams) invoices.InvoiceLineItem {
	return invoices.InvoiceLineItem{
		ID:          id,
		InvoiceID:   arg.InvoiceID,
		Description: arg.Description,
		Quantity:    arg.Quantity,
		UnitPrice:   arg.UnitPrice,
		Total:       arg.Total,
	}
}
