package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/domain/frequency"
	"encore.app/billing/domain/invoicestate"
	"encore.app/billing/domain/lineitem"
	"encore.app/billing/model"
)

// GenerateFromContract materializes a Draft invoice from a contract: the
// monthly-equivalent contract value plus one line per explicit service,
// taxed at the rate the frequency normalizer settled on.
func (b *business) GenerateFromContract(ctx context.Context, contractID int64) (*model.Invoice, error) {
	dbContract, err := b.contractRepo.GetContract(ctx, contractID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "contract not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load contract"}
	}
	contract := convertDBContractToModel(dbContract)

	dbServices, err := b.contractRepo.GetContractServices(ctx, contractID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load contract services"}
	}
	contract.Services = convertDBContractServices(dbServices)

	figures := frequency.Normalize(frequency.Input{
		ContractType:     contract.Type,
		BillingFrequency: contract.BillingFrequency,
		FlatAmount:       contract.TotalAmount,
		VATRate:          contract.VATRate,
		Calculation:      contract.Calculation,
	})

	lines, err := lineitem.FromContract(contract, figures)
	if err != nil {
		return nil, err
	}

	totals := invoicestate.ComputeTotals(lines, figures.AppliedVATRate, decimal.Zero)
	issueDate := time.Now()

	// One retry on a number collision. The sequence makes collisions
	// possible only when numbers were backfilled by hand for the year.
	for attempt := 0; ; attempt++ {
		number, err := b.NextInvoiceNumber(ctx, issueDate)
		if err != nil {
			return nil, err
		}

		inv, err := b.insertInvoice(ctx, insertParams{
			Number:     number,
			ContractID: &contract.ID,
			CustomerID: contract.CustomerID,
			Lines:      lines,
			TaxRate:    figures.AppliedVATRate,
			Discount:   decimal.Zero,
			Totals:     totals,
			Status:     model.InvoiceStatusDraft,
			IssueDate:  issueDate,
			DueDate:    issueDate.AddDate(0, 0, int(contract.PaymentTermsDays)),
		})
		if err == nil {
			return inv, nil
		}
		if attempt == 0 && isUniqueViolation(err, "invoices_invoice_number_key") {
			continue
		}
		return nil, mapCreateError(err)
	}
}
