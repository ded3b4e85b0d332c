package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ScheduleStatus string

const (
	ScheduleStatusScheduled  ScheduleStatus = "Scheduled"
	ScheduleStatusInProgress ScheduleStatus = "In Progress"
	ScheduleStatusCompleted  ScheduleStatus = "Completed"
	ScheduleStatusCancelled  ScheduleStatus = "Cancelled"
	ScheduleStatusNoShow     ScheduleStatus = "No Show"
)

// ScheduleOccurrence is one concrete service visit. The billing engine only
// reads it; the scheduling subsystem owns the record and its status writes.
type ScheduleOccurrence struct {
	ID                int64            `json:"id"`
	ContractID        *int64           `json:"contract_id,omitempty"`
	LocationID        *int64           `json:"location_id,omitempty"`
	CleaningType      string           `json:"cleaning_type"`
	Status            ScheduleStatus   `json:"status"`
	ScheduledAt       time.Time        `json:"scheduled_at"`
	EstimatedDuration *decimal.Decimal `json:"estimated_duration,omitempty"`
	ActualDuration    *decimal.Decimal `json:"actual_duration,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ServiceLocation is the cleaned object a schedule occurrence points at.
type ServiceLocation struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
