package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/streakmind/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return db.NewSQLiteUnitOfWork(database)
}

func insertDoc(ctx context.Context, tx db.DBTX, name, body string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO documents (name, body, updated_at) VALUES (?, ?, '2025-06-15T10:00:00Z')`, name, body)
	return err
}

// readDoc reads a document body through a read-only transaction.
func readDoc(uow *db.SQLiteUnitOfWork, name string) (string, bool) {
	var body string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT body FROM documents WHERE name = ?`, name)
		if err := row.Scan(&body); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return body, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertDoc(ctx, tx, "settings", `{"theme":"dark"}`)
	})
	require.NoError(t, err)

	body, found := readDoc(uow, "settings")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, `{"theme":"dark"}`, body)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertDoc(ctx, tx, "memory", `{}`); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readDoc(uow, "memory")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestDB(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertDoc(ctx, tx, "transcript", `[]`)
			panic("boom")
		})
	})

	_, found := readDoc(uow, "transcript")
	assert.False(t, found, "row should not exist after panic rollback")
}
