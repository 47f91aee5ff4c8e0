package store

import (
	"context"
	"fmt"

	"github.com/Daancoria/inventoryapp/internal/model"
)

// AppendLog records one audit entry. Callers pass the same DBTX as the
// business mutation so both commit or roll back together.
func AppendLog(ctx context.Context, q DBTX, username, action string) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO logs (username, action) VALUES (?, ?)`,
		username, action,
	)
	if err != nil {
		return fmt.Errorf("appending log entry: %w", err)
	}
	return nil
}

// ListLogs returns all log entries, most recent first.
func ListLogs(ctx context.Context, q DBTX) ([]model.LogEntry, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, username, action, timestamp FROM logs ORDER BY timestamp DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Action, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearLogs empties the log table.
func ClearLogs(ctx context.Context, q DBTX) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM logs`); err != nil {
		return fmt.Errorf("clearing logs: %w", err)
	}
	return nil
}
