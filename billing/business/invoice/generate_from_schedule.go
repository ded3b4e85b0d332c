package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/domain/frequency"
	"encore.app/billing/domain/invoicestate"
	"encore.app/billing/domain/lineitem"
	"encore.app/billing/model"
)

// scheduleDueDays is the fixed payment window for visit invoices.
const scheduleDueDays = 30

// GenerateFromSchedule turns one completed visit into a Sent invoice. The
// operation is idempotent on the schedule: a replayed completion returns the
// invoice generated the first time instead of creating a second one.
// An unresolvable customer or location is a business error for the caller;
// the schedule's own status write has already been committed and stands.
func (b *business) GenerateFromSchedule(ctx context.Context, scheduleID int64) (*model.Invoice, error) {
	scheduleRef := pgtype.Int8{Int64: scheduleID, Valid: true}

	existing, err := b.invoiceRepo.GetInvoiceByScheduleID(ctx, scheduleRef)
	if err == nil {
		return b.withLineItems(ctx, convertDBInvoiceToModel(existing))
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to check for existing invoice"}
	}

	dbSchedule, err := b.scheduleRepo.GetSchedule(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "schedule not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load schedule"}
	}
	schedule := convertDBScheduleToModel(dbSchedule)

	contract, customerID, err := b.resolveScheduleContract(ctx, schedule)
	if err != nil {
		return nil, err
	}

	location, err := b.resolveScheduleLocation(ctx, schedule)
	if err != nil {
		return nil, err
	}

	line, err := lineitem.FromSchedule(schedule, contract, location)
	if err != nil {
		return nil, err
	}

	lines := []model.LineItem{line}
	totals := invoicestate.ComputeTotals(lines, frequency.DefaultVATRate, decimal.Zero)
	issueDate := time.Now()

	var contractID *int64
	if contract != nil {
		contractID = &contract.ID
	}

	for attempt := 0; ; attempt++ {
		number, err := b.NextInvoiceNumber(ctx, issueDate)
		if err != nil {
			return nil, err
		}

		inv, err := b.insertInvoice(ctx, insertParams{
			Number:     number,
			ContractID: contractID,
			ScheduleID: &scheduleID,
			CustomerID: customerID,
			Lines:      lines,
			TaxRate:    frequency.DefaultVATRate,
			Discount:   decimal.Zero,
			Totals:     totals,
			Status:     model.InvoiceStatusSent,
			IssueDate:  issueDate,
			DueDate:    issueDate.AddDate(0, 0, scheduleDueDays),
		})
		if err == nil {
			return inv, nil
		}

		// Lost the race against a concurrent completion of the same
		// schedule: the winner's invoice is the answer.
		if isUniqueViolation(err, "invoices_schedule_id_key") {
			winner, getErr := b.invoiceRepo.GetInvoiceByScheduleID(ctx, scheduleRef)
			if getErr != nil {
				return nil, &errs.Error{Code: errs.Internal, Message: "failed to load invoice for schedule"}
			}
			return b.withLineItems(ctx, convertDBInvoiceToModel(winner))
		}
		if attempt == 0 && isUniqueViolation(err, "invoices_invoice_number_key") {
			continue
		}
		return nil, mapCreateError(err)
	}
}

func (b *business) resolveScheduleContract(ctx context.Context, schedule *model.ScheduleOccurrence) (*model.Contract, *int64, error) {
	if schedule.ContractID == nil {
		return nil, nil, &errs.Error{Code: errs.FailedPrecondition, Message: "completed schedule has no contract to bill against"}
	}

	dbContract, err := b.contractRepo.GetContract(ctx, *schedule.ContractID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, &errs.Error{Code: errs.FailedPrecondition, Message: "cannot resolve contract for completed schedule"}
		}
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "failed to load contract"}
	}
	contract := convertDBContractToModel(dbContract)

	if contract.CustomerID == nil {
		return nil, nil, &errs.Error{Code: errs.FailedPrecondition, Message: "cannot resolve customer for completed schedule"}
	}
	if _, err := b.contractRepo.GetCustomer(ctx, *contract.CustomerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, &errs.Error{Code: errs.FailedPrecondition, Message: "cannot resolve customer for completed schedule"}
		}
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "failed to load customer"}
	}

	return contract, contract.CustomerID, nil
}

func (b *business) resolveScheduleLocation(ctx context.Context, schedule *model.ScheduleOccurrence) (*model.ServiceLocation, error) {
	if schedule.LocationID == nil {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "cannot resolve location for completed schedule"}
	}

	dbLocation, err := b.scheduleRepo.GetLocation(ctx, *schedule.LocationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "cannot resolve location for completed schedule"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load location"}
	}

	return &model.ServiceLocation{
		ID:      dbLocation.ID,
		Name:    dbLocation.Name,
		Address: dbLocation.Address.String,
	}, nil
}
