package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/floaty-cloud/internal/offline"
)

// PutEntry stores a cached response in bucket, replacing any previous copy.
func (s *Store) PutEntry(ctx context.Context, bucket string, e offline.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cache_entries (bucket, path, content_type, status, body)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(bucket, path) DO UPDATE SET
		   content_type = excluded.content_type,
		   status = excluded.status,
		   body = excluded.body,
		   cached_at = CURRENT_TIMESTAMP`,
		bucket, e.Path, e.ContentType, e.Status, e.Body,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot cache %s: %w", e.Path, err)
	}
	return nil
}

// GetEntry returns the cached response for path in bucket.
func (s *Store) GetEntry(ctx context.Context, bucket, path string) (offline.Entry, bool, error) {
	e := offline.Entry{Path: path}
	err := s.db.QueryRowContext(ctx,
		`SELECT content_type, status, body FROM cache_entries WHERE bucket = ? AND path = ?`,
		bucket, path,
	).Scan(&e.ContentType, &e.Status, &e.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return offline.Entry{}, false, nil
	}
	if err != nil {
		return offline.Entry{}, false, fmt.Errorf("storage: cannot read cached %s: %w", path, err)
	}
	return e, true, nil
}

// DropBucket removes every entry of bucket. Returns the number removed.
func (s *Store) DropBucket(ctx context.Context, bucket string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE bucket = ?", bucket)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot drop bucket %s: %w", bucket, err)
	}
	return res.RowsAffected()
}

var _ offline.Cache = (*Store)(nil)
