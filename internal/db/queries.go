package db

import (
	"context"
	"fmt"
	"time"
)

const (
	OpUpload   = "upload"
	OpDownload = "download"
	OpDelete   = "delete"
)

type Transfer struct {
	ID         int64
	Operation  string
	LocalPath  string
	RemotePath string
	SizeBytes  int64
	CreatedAt  time.Time
}

func (d *Database) RecordTransfer(ctx context.Context, t Transfer) error {
	_, err := d.db.ExecContext(
		ctx,
		`INSERT INTO transfers (operation, local_path, remote_path, size_bytes) VALUES (?, ?, ?, ?)`,
		t.Operation, t.LocalPath, t.RemotePath, t.SizeBytes,
	)
	if err != nil {
		return fmt.Errorf("could not insert transfer record: %w", err)
	}
	return nil
}

func (d *Database) RecentTransfers(ctx context.Context, limit int64) ([]Transfer, error) {
	rows, err := d.db.QueryContext(
		ctx,
		`SELECT id, operation, local_path, remote_path, size_bytes, created_at
		 FROM transfers ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query transfers: %w", err)
	}
	defer rows.Close()

	var transfers []Transfer
	for rows.Next() {
		var t Transfer
		if err = rows.Scan(&t.ID, &t.Operation, &t.LocalPath, &t.RemotePath, &t.SizeBytes, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate transfer rows: %w", err)
	}
	return transfers, nil
}
