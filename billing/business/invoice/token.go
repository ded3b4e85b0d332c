package invoice

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// DefaultTokenTTL is how long a payment link stays valid when the caller
// does not choose a lifetime.
const DefaultTokenTTL = 72 * time.Hour

const tokenBytes = 32

// errInvalidToken is the uniform failure for every token problem - unknown
// invoice, mismatched token, expired token, already consumed. The caller
// must not be able to tell the cases apart.
var errInvalidToken = &errs.Error{Code: errs.PermissionDenied, Message: "invalid or expired payment token"}

// IssuePaymentToken attaches a fresh single-use token to the invoice,
// replacing any previously issued one. The token travels back on the
// returned invoice for the caller to embed in the payment link; it is never
// serialized in API responses.
func (b *business) IssuePaymentToken(ctx context.Context, id int64, ttl time.Duration) (*model.Invoice, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to generate payment token"}
	}
	token := hex.EncodeToString(buf)

	updated, err := b.invoiceRepo.SetPaymentToken(ctx, invoices.SetPaymentTokenParams{
		ID:                  id,
		PaymentToken:        pgtype.Text{String: token, Valid: true},
		PaymentTokenExpires: pgtype.Timestamptz{Time: time.Now().Add(ttl), Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to store payment token"}
	}

	return convertDBInvoiceToModel(updated), nil
}

// VerifyPaymentToken checks a token without consuming it, for the
// confirmation screen shown before final submission. Every failure mode
// reports the same way: valid=false.
func (b *business) VerifyPaymentToken(ctx context.Context, id int64, token string) (*model.Invoice, bool, error) {
	dbInv, err := b.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}

	inv := convertDBInvoiceToModel(dbInv)
	if token == "" || inv.PaymentToken == nil || inv.PaymentTokenExpires == nil {
		return nil, false, nil
	}
	if time.Now().After(*inv.PaymentTokenExpires) {
		return nil, false, nil
	}
	if subtle.ConstantTimeCompare([]byte(*inv.PaymentToken), []byte(token)) != 1 {
		return nil, false, nil
	}

	return inv, true, nil
}

// ConsumePaymentToken settles the invoice in full against a valid token.
// Match, expiry check, token clearing and the payment write all happen in
// one conditional update, so a raced or replayed consume cannot settle
// twice; whatever the reason no row matched, the caller sees the same
// uniform error.
func (b *business) ConsumePaymentToken(ctx context.Context, id int64, token string) (*model.Invoice, error) {
	if token == "" {
		return nil, errInvalidToken
	}

	reference := fmt.Sprintf("plink-%s", uuid.NewString())
	updated, err := b.invoiceRepo.ConsumePaymentToken(ctx, invoices.ConsumePaymentTokenParams{
		ID:               id,
		PaymentToken:     token,
		PaymentReference: pgtype.Text{String: reference, Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errInvalidToken
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to settle invoice"}
	}

	return convertDBInvoiceToModel(updated), nil
}
