package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docmeta"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docmeta.RecordService = (*RecordService)(nil)

// RecordService implements docmeta.RecordService using SQLite.
// Metadata is stored as JSON.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores a new record.
func (s *RecordService) CreateRecord(ctx context.Context, rec *docmeta.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	metadata, err := json.Marshal(rec.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	rec.ID = uuid.New().String()
	rec.ExtractedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, source, content_hash, title, metadata, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Source, rec.ContentHash, rec.Metadata.Title, string(metadata), formatTime(rec.ExtractedAt))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*docmeta.Record, error) {
	recs, err := s.FindRecords(ctx, docmeta.RecordFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, docmeta.Errorf(docmeta.ENOTFOUND, "record not found")
	}
	return recs[0], nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter docmeta.RecordFilter) ([]*docmeta.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, content_hash, metadata, extracted_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*docmeta.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docmeta.Errorf(docmeta.ENOTFOUND, "record not found")
	}

	return nil
}

func scanRecord(rows *sql.Rows) (*docmeta.Record, error) {
	var rec docmeta.Record
	var metadata, extractedAt string

	if err := rows.Scan(&rec.ID, &rec.Source, &rec.ContentHash, &metadata, &extractedAt); err != nil {
		return nil, err
	}

	rec.Metadata = &docmeta.Metadata{}
	if err := json.Unmarshal([]byte(metadata), rec.Metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	var err error
	rec.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
