package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"collection-route-service/internal/domain"
	"collection-route-service/internal/platform/obs"
	"collection-route-service/internal/ports"
)

// Postgres-backed implementation of the ScheduleRepository port.
//
// The route, results and recurring config are stored as JSONB: a route is
// always read and written as a unit, never queried per point.
type PostgresScheduleRepository struct{ DB *sql.DB }

func NewPostgresScheduleRepository(db *sql.DB) *PostgresScheduleRepository {
	return &PostgresScheduleRepository{DB: db}
}

const scheduleColumns = `
	id,
	route,
	capacity_current,
	capacity_maximum,
	capacity_unit,
	scheduled_date,
	time_slot_start,
	time_slot_end,
	status,
	results,
	recurring,
	is_active,
	created_at,
	updated_at
`

func (r *PostgresScheduleRepository) Create(ctx context.Context, schedule *domain.CollectionSchedule) error {
	if r.DB == nil {
		return errors.New("schedule repository: DB is nil")
	}

	return r.CreateBatch(ctx, []*domain.CollectionSchedule{schedule})
}

// CreateBatch inserts a base schedule together with its recurrence chain in
// one transaction so a failed follow-up does not leave a partial chain.
func (r *PostgresScheduleRepository) CreateBatch(ctx context.Context, schedules []*domain.CollectionSchedule) error {
	if r.DB == nil {
		return errors.New("schedule repository: DB is nil")
	}

	if len(schedules) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create schedules: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO schedules (`+scheduleColumns+`)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`)
	if err != nil {
		return fmt.Errorf("create schedules: prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, s := range schedules {
		route, results, recurring, err := marshalScheduleDocs(s)
		if err != nil {
			return fmt.Errorf("create schedules: %w", err)
		}

		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		s.UpdatedAt = now

		_, err = stmt.ExecContext(ctx,
			s.ID,
			route,
			s.Capacity.Current,
			s.Capacity.Maximum,
			s.Capacity.Unit,
			s.ScheduledDate,
			s.TimeSlot.Start,
			s.TimeSlot.End,
			string(s.Status),
			results,
			recurring,
			s.IsActive,
			s.CreatedAt,
			s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("create schedules: insert id=%q: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create schedules: commit tx: %w", err)
	}

	return nil
}

func (r *PostgresScheduleRepository) GetByID(ctx context.Context, id string) (_ *domain.CollectionSchedule, err error) {
	defer obs.Time(ctx, "schedules.repo.GetByID")(&err)

	if r.DB == nil {
		return nil, errors.New("schedule repository: DB is nil")
	}

	row := r.DB.QueryRowContext(ctx, `
	SELECT `+scheduleColumns+`
	FROM schedules
	WHERE id = $1 AND is_active = TRUE;
	`, id)

	s, err := scanSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule id=%q: %w", id, err)
	}

	return s, nil
}

func (r *PostgresScheduleRepository) List(ctx context.Context, status string) (_ []*domain.CollectionSchedule, err error) {
	defer obs.Time(ctx, "schedules.repo.List")(&err)

	if r.DB == nil {
		return nil, errors.New("schedule repository: DB is nil")
	}

	query := `
	SELECT ` + scheduleColumns + `
	FROM schedules
	WHERE is_active = TRUE
	`
	args := []any{}
	if status != "" {
		query += ` AND status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY scheduled_date;`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: query schedules table: %w", err)
	}
	defer rows.Close()

	schedules := make([]*domain.CollectionSchedule, 0, 32)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("list schedules: %w", err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list schedules: row iteration: %w", err)
	}

	return schedules, nil
}

// Update replaces the stored schedule state. Last write wins; there is no
// version check against concurrent edits.
func (r *PostgresScheduleRepository) Update(ctx context.Context, schedule *domain.CollectionSchedule) error {
	if r.DB == nil {
		return errors.New("schedule repository: DB is nil")
	}

	route, results, recurring, err := marshalScheduleDocs(schedule)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}

	schedule.UpdatedAt = time.Now().UTC()

	res, err := r.DB.ExecContext(ctx, `
	UPDATE schedules
	SET route = $2,
		capacity_current = $3,
		capacity_maximum = $4,
		capacity_unit = $5,
		scheduled_date = $6,
		time_slot_start = $7,
		time_slot_end = $8,
		status = $9,
		results = $10,
		recurring = $11,
		updated_at = $12
	WHERE id = $1 AND is_active = TRUE;
	`,
		schedule.ID,
		route,
		schedule.Capacity.Current,
		schedule.Capacity.Maximum,
		schedule.Capacity.Unit,
		schedule.ScheduledDate,
		schedule.TimeSlot.Start,
		schedule.TimeSlot.End,
		string(schedule.Status),
		results,
		recurring,
		schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update schedule id=%q: %w", schedule.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update schedule id=%q: rows affected: %w", schedule.ID, err)
	}
	if n == 0 {
		return ports.ErrScheduleNotFound
	}

	return nil
}

func (r *PostgresScheduleRepository) Archive(ctx context.Context, id string) error {
	if r.DB == nil {
		return errors.New("schedule repository: DB is nil")
	}

	res, err := r.DB.ExecContext(ctx, `
	UPDATE schedules
	SET is_active = FALSE,
		updated_at = $2
	WHERE id = $1 AND is_active = TRUE;
	`, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("archive schedule id=%q: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive schedule id=%q: rows affected: %w", id, err)
	}
	if n == 0 {
		return ports.ErrScheduleNotFound
	}

	return nil
}

func marshalScheduleDocs(s *domain.CollectionSchedule) (route, results, recurring []byte, err error) {
	route, err = json.Marshal(s.Route)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal route: %w", err)
	}

	if s.Results != nil {
		results, err = json.Marshal(s.Results)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("marshal results: %w", err)
		}
	}

	if s.Recurring != nil {
		recurring, err = json.Marshal(s.Recurring)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("marshal recurring: %w", err)
		}
	}

	return route, results, recurring, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*domain.CollectionSchedule, error) {
	var (
		s      domain.CollectionSchedule
		status string

		route, results, recurring []byte
	)

	err := row.Scan(
		&s.ID,
		&route,
		&s.Capacity.Current,
		&s.Capacity.Maximum,
		&s.Capacity.Unit,
		&s.ScheduledDate,
		&s.TimeSlot.Start,
		&s.TimeSlot.End,
		&status,
		&results,
		&recurring,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Status = domain.ScheduleStatus(status)

	if err := json.Unmarshal(route, &s.Route); err != nil {
		return nil, fmt.Errorf("unmarshal route: %w", err)
	}

	if len(results) > 0 {
		s.Results = &domain.Results{}
		if err := json.Unmarshal(results, s.Results); err != nil {
			return nil, fmt.Errorf("unmarshal results: %w", err)
		}
	}

	if len(recurring) > 0 {
		s.Recurring = &domain.Recurring{}
		if err := json.Unmarshal(recurring, s.Recurring); err != nil {
			return nil, fmt.Errorf("unmarshal recurring: %w", err)
		}
	}

	return &s, nil
}
