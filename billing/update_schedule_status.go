package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type UpdateScheduleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Scheduled 'In Progress' Completed Cancelled 'No Show'"`
}

func (r *UpdateScheduleStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid schedule status: " + r.Status}
	}
	return nil
}

type UpdateScheduleStatusResponse struct {
	Schedule model.ScheduleOccurrence `json:"schedule"`
	// Invoice is set when completing the schedule produced (or found) one.
	Invoice *model.Invoice `json:"invoice,omitempty"`
	// BillingError reports an invoice generation failure without undoing
	// the status change itself.
	BillingError string `json:"billing_error,omitempty"`
}

// UpdateScheduleStatus moves a schedule occurrence through its states.
// Completing an occurrence triggers per-visit invoicing; a billing failure
// is reported in the response but never rolls the completion back.
//
//encore:api public path=/schedules/:id/status method=PUT
func (s *Service) UpdateScheduleStatus(ctx context.Context, id int64, req *UpdateScheduleStatusRequest) (*UpdateScheduleStatusResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid schedule ID"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	schedule, err := s.business.UpdateScheduleStatus(ctx, id, model.ScheduleStatus(req.Status))
	if err != nil {
		rlog.Error("failed to update schedule status", "schedule_id", id, "status", req.Status, "error", err)
		return nil, err
	}

	resp := &UpdateScheduleStatusResponse{Schedule: *schedule}

	if schedule.Status == model.ScheduleStatusCompleted {
		inv, invErr := s.business.GenerateFromSchedule(ctx, id)
		if invErr != nil {
			rlog.Error("schedule completed but invoice generation failed", "schedule_id", id, "error", invErr)
			resp.BillingError = invErr.Error()
			return resp, nil
		}
		resp.Invoice = inv
		s.startInvoiceLifecycle(ctx, inv)
		rlog.Info("invoice generated from completed schedule", "schedule_id", id, "invoice_id", inv.ID)
	}

	return resp, nil
}
