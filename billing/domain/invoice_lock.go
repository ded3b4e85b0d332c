package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/billing/repository/invoices"
)

// InvoiceLocker owns the transaction boundary for invoice mutation. The
// invoice row is the unit of mutual exclusion: every financial write runs
// inside a transaction holding the row lock, so recompute always sees the
// latest amounts.
type InvoiceLocker interface {
	// WithInvoiceLock locks the invoice row, hands the current row and a
	// transaction-scoped repository to fn, and commits if fn succeeds.
	WithInvoiceLock(ctx context.Context, id int64, fn func(current invoices.Invoice, repo invoices.Querier) error) error

	// InTx runs fn against a transaction-scoped repository without taking a
	// row lock; used when creating an invoice together with its line items.
	InTx(ctx context.Context, fn func(repo invoices.Querier) error) error
}

type invoiceLocker struct {
	db   *pgxpool.Pool
	repo *invoices.Queries
}

func NewInvoiceLocker(db *pgxpool.Pool, repo *invoices.Queries) InvoiceLocker {
	return &invoiceLocker{db: db, repo: repo}
}

func (l *invoiceLocker) WithInvoiceLock(ctx context.Context, id int64, fn func(invoices.Invoice, invoices.Querier) error) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	txRepo := l.repo.WithTx(tx)

	current, err := txRepo.GetInvoiceForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock invoice"}
	}

	if err := fn(current, txRepo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit invoice update"}
	}
	return nil
}

func (l *invoiceLocker) InTx(ctx context.Context, fn func(repo invoices.Querier) error) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(l.repo.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit invoice creation"}
	}
	return nil
}
