package scene

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	snapshotQuery = `SELECT snapshot FROM scene_snapshots WHERE name = $1 ORDER BY captured_at DESC LIMIT 1`
	catalogQuery  = `SELECT name, count(*), max(captured_at) FROM scene_snapshots GROUP BY name ORDER BY name`
)

// SnapshotInfo summarizes the captures stored under one snapshot name.
type SnapshotInfo struct {
	Name     string
	Captures int64
	Latest   time.Time
}

// Fetch loads the most recent snapshot stored under name. Snapshots are kept
// as JSON documents in the scene_snapshots table.
func Fetch(ctx context.Context, connStr string, name string) (*Scene, error) {
	var data []byte
	err := readOnly(ctx, connStr, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, snapshotQuery, name).Scan(&data)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("snapshot %q not found", name)
		}
		if err != nil {
			return fmt.Errorf("loading snapshot %q: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ParseJSON(data)
}

// ListSnapshots returns every snapshot name in the database with its number
// of captures and the time of the latest one.
func ListSnapshots(ctx context.Context, connStr string) ([]SnapshotInfo, error) {
	var infos []SnapshotInfo
	err := readOnly(ctx, connStr, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, catalogQuery)
		if err != nil {
			return fmt.Errorf("listing snapshots: %w", err)
		}
		infos, err = pgx.CollectRows(rows, pgx.RowToStructByPos[SnapshotInfo])
		if err != nil {
			return fmt.Errorf("listing snapshots: %w", err)
		}
		return nil
	})
	return infos, err
}

func readOnly(ctx context.Context, connStr string, fn func(pgx.Tx) error) error {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer conn.Close(ctx)

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return fn(tx)
}
