package schedules

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type Schedule struct {
	ID                int64
	ContractID        pgtype.Int8
	LocationID        pgtype.Int8
	CleaningType      pgtype.Text
	Status            string
	ScheduledAt       pgtype.Timestamptz
	EstimatedDuration pgtype.Numeric
	ActualDuration    pgtype.Numeric
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

type Location struct {
	ID      int64
	Name    string
	Address pgtype.Text
}

type Querier interface {
	GetSchedule(ctx context.Context, id int64) (Schedule, error)
	UpdateScheduleStatus(ctx context.Context, arg UpdateScheduleStatusParams) (Schedule, error)
	GetLocation(ctx context.Context, id int64) (Location, error)
}

var _ Querier = (*Queries)(nil)

const scheduleColumns = `id, contract_id, location_id, cleaning_type, status, scheduled_at,
estimated_duration, actual_duration, created_at, updated_at`

func scanSchedule(row pgx.Row) (Schedule, error) {
	var s Schedule
	err := row.Scan(
		&s.ID, &s.ContractID, &s.LocationID, &s.CleaningType, &s.Status, &s.ScheduledAt,
		&s.EstimatedDuration, &s.ActualDuration, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

const getSchedule = `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

func (q *Queries) GetSchedule(ctx context.Context, id int64) (Schedule, error) {
	return scanSchedule(q.db.QueryRow(ctx, getSchedule, id))
}

type UpdateScheduleStatusParams struct {
	ID     int64
	Status string
}

const updateScheduleStatus = `UPDATE schedules SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + scheduleColumns

func (q *Queries) UpdateScheduleStatus(ctx context.Context, arg UpdateScheduleStatusParams) (Schedule, error) {
	return scanSchedule(q.db.QueryRow(ctx, updateScheduleStatus, arg.ID, arg.Status))
}

const getLocation = `SELECT id, name, address FROM objects WHERE id = $1`

func (q *Queries) GetLocation(ctx context.Context, id int64) (Location, error) {
	var l Location
	err := q.db.QueryRow(ctx, getLocation, id).Scan(&l.ID, &l.Name, &l.Address)
	return l, err
}
