package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/streakmind/internal/db"
	"github.com/alexanderramin/streakmind/internal/domain"
)

// SQLiteStateRepo implements StateRepo over the activities, streaks and
// log_entries tables. Row order is kept in a position column.
type SQLiteStateRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteStateRepo creates a repo whose saves run inside uow.
func NewSQLiteStateRepo(conn db.DBTX, uow db.UnitOfWork) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn, uow: uow}
}

func (r *SQLiteStateRepo) Load(ctx context.Context) (*domain.TrackerState, error) {
	st := &domain.TrackerState{}

	activities, err := r.loadActivities(ctx)
	if err != nil {
		return nil, err
	}
	st.Activities = activities

	logs, err := r.loadLogs(ctx)
	if err != nil {
		return nil, err
	}
	st.Logs = logs

	streaks, err := r.loadStreaks(ctx)
	if err != nil {
		return nil, err
	}
	st.Streaks = streaks
	return st, nil
}

func (r *SQLiteStateRepo) loadActivities(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, custom_points, visualization, description, created_at
		FROM activities ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanActivity(rows *sql.Rows) (domain.Activity, error) {
	var a domain.Activity
	var custom sql.NullFloat64
	var viz, createdAt string
	if err := rows.Scan(&a.ID, &a.Name, &custom, &viz, &a.Description, &createdAt); err != nil {
		return a, fmt.Errorf("scanning activity: %w", err)
	}
	a.CustomPointsPerUnit = floatPtr(custom)
	a.VisualizationType = domain.VisualizationType(viz)
	a.CreatedAt = parseTime(createdAt)
	return a, nil
}

func (r *SQLiteStateRepo) loadLogs(ctx context.Context) ([]domain.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, activity, amount, unit, date, message, timestamp, points
		FROM log_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying log entries: %w", err)
	}
	defer rows.Close()

	var out []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		var unit, ts string
		if err := rows.Scan(&e.ID, &e.Activity, &e.Amount, &unit, &e.Date, &e.Message, &ts, &e.Points); err != nil {
			return nil, fmt.Errorf("scanning log entry: %w", err)
		}
		e.Unit = domain.Unit(unit)
		e.Timestamp = parseTime(ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *SQLiteStateRepo) loadStreaks(ctx context.Context) (domain.StreakMap, error) {
	var m domain.StreakMap
	rows, err := r.db.QueryContext(ctx, `SELECT activity, count FROM streaks ORDER BY position`)
	if err != nil {
		return m, fmt.Errorf("querying streaks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var activity string
		var count int
		if err := rows.Scan(&activity, &count); err != nil {
			return m, fmt.Errorf("scanning streak: %w", err)
		}
		m.Set(activity, count)
	}
	return m, rows.Err()
}

// Save replaces all three tables inside one transaction.
func (r *SQLiteStateRepo) Save(ctx context.Context, st *domain.TrackerState) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, table := range []string{"activities", "streaks", "log_entries"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}

		for i, a := range st.Activities {
			_, err := tx.ExecContext(ctx, `INSERT INTO activities
				(name, id, custom_points, visualization, description, position, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				a.Name, a.ID, nullableFloat(a.CustomPointsPerUnit), string(a.VisualizationType),
				a.Description, i, formatTime(a.CreatedAt),
			)
			if err != nil {
				return fmt.Errorf("inserting activity %q: %w", a.Name, err)
			}
		}

		for i, e := range st.Streaks.Entries() {
			_, err := tx.ExecContext(ctx, `INSERT INTO streaks (activity, count, position) VALUES (?, ?, ?)`,
				e.Activity, e.Count, i)
			if err != nil {
				return fmt.Errorf("inserting streak %q: %w", e.Activity, err)
			}
		}

		for i, e := range st.Logs {
			_, err := tx.ExecContext(ctx, `INSERT INTO log_entries
				(id, activity, amount, unit, date, message, timestamp, points, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				e.ID, e.Activity, e.Amount, string(e.Unit), e.Date, e.Message,
				formatTime(e.Timestamp), e.Points, i,
			)
			if err != nil {
				return fmt.Errorf("inserting log entry %s: %w", e.ID, err)
			}
		}
		return nil
	})
}
