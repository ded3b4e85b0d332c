package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/schedules"
)

// UpdateScheduleStatus writes the occurrence's new status. The write is
// authoritative on its own: when the transition is into Completed the caller
// fires GenerateFromSchedule afterwards, and a billing failure never rolls
// this write back.
func (b *business) UpdateScheduleStatus(ctx context.Context, scheduleID int64, status model.ScheduleStatus) (*model.ScheduleOccurrence, error) {
	dbSchedule, err := b.scheduleRepo.UpdateScheduleStatus(ctx, schedules.UpdateScheduleStatusParams{
		ID:     scheduleID,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "schedule not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update schedule status"}
	}
	return convertDBScheduleToModel(dbSchedule), nil
}
