package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/streakmind/internal/db"
	"github.com/alexanderramin/streakmind/internal/domain"
)

// SQLiteTranscriptRepo implements TranscriptRepo over chat_messages.
type SQLiteTranscriptRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

func NewSQLiteTranscriptRepo(conn db.DBTX, uow db.UnitOfWork) *SQLiteTranscriptRepo {
	return &SQLiteTranscriptRepo{db: conn, uow: uow}
}

func (r *SQLiteTranscriptRepo) Load(ctx context.Context) ([]domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, role, message, timestamp FROM chat_messages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying chat messages: %w", err)
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var role, ts string
		if err := rows.Scan(&m.ID, &role, &m.Message, &ts); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.Role = domain.Role(role)
		m.Timestamp = parseTime(ts)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *SQLiteTranscriptRepo) Save(ctx context.Context, msgs []domain.ChatMessage) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM chat_messages`); err != nil {
			return fmt.Errorf("clearing chat messages: %w", err)
		}
		for i, m := range msgs {
			_, err := tx.ExecContext(ctx, `INSERT INTO chat_messages (id, role, message, timestamp, position)
				VALUES (?, ?, ?, ?, ?)`,
				m.ID, string(m.Role), m.Message, formatTime(m.Timestamp), i)
			if err != nil {
				return fmt.Errorf("inserting chat message %s: %w", m.ID, err)
			}
		}
		return nil
	})
}
