package docmeta

import (
	"context"
	"time"
)

// Record is a stored metadata extraction.
type Record struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	ContentHash string    `json:"contentHash"`
	Metadata    *Metadata `json:"metadata"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "record source required")
	}
	if r.Metadata == nil {
		return Errorf(EINVALID, "record metadata required")
	}
	return nil
}

// RecordWriter writes records to an output destination.
type RecordWriter interface {
	CreateRecord(ctx context.Context, rec *Record) error
}

// RecordService represents a service for managing stored records.
type RecordService interface {
	// CreateRecord stores a new record, assigning its ID and ExtractedAt.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter,
	// most recently extracted first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID          *string `json:"id"`
	Source      *string `json:"source"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
