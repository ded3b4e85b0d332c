package invoices

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `id, invoice_number, contract_id, schedule_id, customer_id, currency,
subtotal, tax_rate, tax_amount, discount, total_amount, paid_amount, balance,
status, issue_date, due_date, payment_method, payment_reference, payment_date,
email_sent, email_sent_at, email_recipients, payment_token, payment_token_expires,
workflow_id, created_at, updated_at`

func scanInvoice(row pgx.Row) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID, &i.InvoiceNumber, &i.ContractID, &i.ScheduleID, &i.CustomerID, &i.Currency,
		&i.Subtotal, &i.TaxRate, &i.TaxAmount, &i.Discount, &i.TotalAmount, &i.PaidAmount, &i.Balance,
		&i.Status, &i.IssueDate, &i.DueDate, &i.PaymentMethod, &i.PaymentReference, &i.PaymentDate,
		&i.EmailSent, &i.EmailSentAt, &i.EmailRecipients, &i.PaymentToken, &i.PaymentTokenExpires,
		&i.WorkflowID, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

type CreateInvoiceParams struct {
	InvoiceNumber string
	ContractID    pgtype.Int8
	ScheduleID    pgtype.Int8
	CustomerID    pgtype.Int8
	Currency      string
	Subtotal      pgtype.Numeric
	TaxRate       pgtype.Numeric
	TaxAmount     pgtype.Numeric
	Discount      pgtype.Numeric
	TotalAmount   pgtype.Numeric
	PaidAmount    pgtype.Numeric
	Balance       pgtype.Numeric
	Status        string
	IssueDate     pgtype.Timestamptz
	DueDate       pgtype.Timestamptz
	WorkflowID    pgtype.Text
}

const createInvoice = `INSERT INTO invoices (
	invoice_number, contract_id, schedule_id, customer_id, currency,
	subtotal, tax_rate, tax_amount, discount, total_amount, paid_amount, balance,
	status, issue_date, due_date, workflow_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING ` + invoiceColumns

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.InvoiceNumber, arg.ContractID, arg.ScheduleID, arg.CustomerID, arg.Currency,
		arg.Subtotal, arg.TaxRate, arg.TaxAmount, arg.Discount, arg.TotalAmount, arg.PaidAmount, arg.Balance,
		arg.Status, arg.IssueDate, arg.DueDate, arg.WorkflowID,
	)
	return scanInvoice(row)
}

type CreateInvoiceLineItemParams struct {
	InvoiceID   int64
	Description string
	Quantity    pgtype.Numeric
	UnitPrice   pgtype.Numeric
	Total       pgtype.Numeric
}

const createInvoiceLineItem = `INSERT INTO invoice_line_items (invoice_id, description, quantity, unit_price, total)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, invoice_id, description, quantity, unit_price, total, created_at`

func (q *Queries) CreateInvoiceLineItem(ctx context.Context, arg CreateInvoiceLineItemParams) (InvoiceLineItem, error) {
	row := q.db.QueryRow(ctx, createInvoiceLineItem,
		arg.InvoiceID, arg.Description, arg.Quantity, arg.UnitPrice, arg.Total,
	)
	var li InvoiceLineItem
	err := row.Scan(&li.ID, &li.InvoiceID, &li.Description, &li.Quantity, &li.UnitPrice, &li.Total, &li.CreatedAt)
	return li, err
}

const getInvoice = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

func (q *Queries) GetInvoice(ctx context.Context, id int64) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoice, id))
}

const getInvoiceForUpdate = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`

func (q *Queries) GetInvoiceForUpdate(ctx context.Context, id int64) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoiceForUpdate, id))
}

const getInvoiceByScheduleID = `SELECT ` + invoiceColumns + ` FROM invoices WHERE schedule_id = $1`

func (q *Queries) GetInvoiceByScheduleID(ctx context.Context, scheduleID pgtype.Int8) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoiceByScheduleID, scheduleID))
}

const getLineItemsByInvoice = `SELECT id, invoice_id, description, quantity, unit_price, total, created_at
FROM invoice_line_items WHERE invoice_id = $1 ORDER BY id`

func (q *Queries) GetLineItemsByInvoice(ctx context.Context, invoiceID int64) ([]InvoiceLineItem, error) {
	rows, err := q.db.Query(ctx, getLineItemsByInvoice, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []InvoiceLineItem
	for rows.Next() {
		var li InvoiceLineItem
		if err := rows.Scan(&li.ID, &li.InvoiceID, &li.Description, &li.Quantity, &li.UnitPrice, &li.Total, &li.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

type ListInvoicesParams struct {
	Limit  int32
	Offset int32
}

const listInvoices = `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoices, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countInvoices = `SELECT count(*) FROM invoices`

func (q *Queries) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countInvoices).Scan(&count)
	return count, err
}

type UpdateInvoiceFinancialsParams struct {
	ID               int64
	PaidAmount       pgtype.Numeric
	Balance          pgtype.Numeric
	Status           string
	PaymentMethod    pgtype.Text
	PaymentReference pgtype.Text
	PaymentDate      pgtype.Timestamptz
}

const updateInvoiceFinancials = `UPDATE invoices SET
	paid_amount = $2, balance = $3, status = $4,
	payment_method = $5, payment_reference = $6, payment_date = $7,
	updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

func (q *Queries) UpdateInvoiceFinancials(ctx context.Context, arg UpdateInvoiceFinancialsParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceFinancials,
		arg.ID, arg.PaidAmount, arg.Balance, arg.Status,
		arg.PaymentMethod, arg.PaymentReference, arg.PaymentDate,
	)
	return scanInvoice(row)
}

type UpdateInvoiceEmailParams struct {
	ID              int64
	EmailRecipients []string
}

const updateInvoiceEmail = `UPDATE invoices SET
	email_sent = TRUE, email_sent_at = now(), email_recipients = $2, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

func (q *Queries) UpdateInvoiceEmail(ctx context.Context, arg UpdateInvoiceEmailParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, updateInvoiceEmail, arg.ID, arg.EmailRecipients))
}

type UpdateInvoiceStatusParams struct {
	ID     int64
	Status string
}

const updateInvoiceStatus = `UPDATE invoices SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

func (q *Queries) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, updateInvoiceStatus, arg.ID, arg.Status))
}

type SetPaymentTokenParams struct {
	ID                  int64
	PaymentToken        pgtype.Text
	PaymentTokenExpires pgtype.Timestamptz
}

const setPaymentToken = `UPDATE invoices SET
	payment_token = $2, payment_token_expires = $3, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

func (q *Queries) SetPaymentToken(ctx context.Context, arg SetPaymentTokenParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, setPaymentToken, arg.ID, arg.PaymentToken, arg.PaymentTokenExpires))
}

type ConsumePaymentTokenParams struct {
	ID               int64
	PaymentToken     string
	PaymentReference pgtype.Text
}

// consumePaymentToken settles the invoice and clears the token in one
// conditional statement, so a replayed or raced consume matches zero rows
// instead of settling twice.
const consumePaymentToken = `UPDATE invoices SET
	paid_amount = total_amount, balance = 0, status = 'Paid',
	payment_method = 'payment_link', payment_reference = $3, payment_date = now(),
	payment_token = NULL, payment_token_expires = NULL, updated_at = now()
WHERE id = $1
	AND payment_token = $2
	AND payment_token_expires > now()
	AND status <> 'Cancelled'
RETURNING ` + invoiceColumns

func (q *Queries) ConsumePaymentToken(ctx context.Context, arg ConsumePaymentTokenParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, consumePaymentToken, arg.ID, arg.PaymentToken, arg.PaymentReference))
}

const nextInvoiceSequence = `INSERT INTO invoice_sequences (year, last_seq) VALUES ($1, 1)
ON CONFLICT (year) DO UPDATE SET last_seq = invoice_sequences.last_seq + 1
RETURNING last_seq`

func (q *Queries) NextInvoiceSequence(ctx context.Context, year int32) (int32, error) {
	var seq int32
	err := q.db.QueryRow(ctx, nextInvoiceSequence, year).Scan(&seq)
	return seq, err
}
