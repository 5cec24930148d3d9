package mock

import (
	"context"

	"github.com/fwojciec/docmeta"
)

var _ docmeta.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of docmeta.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *docmeta.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*docmeta.Record, error)
	FindRecordsFn    func(ctx context.Context, filter docmeta.RecordFilter) ([]*docmeta.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *docmeta.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*docmeta.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter docmeta.RecordFilter) ([]*docmeta.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

var _ docmeta.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of docmeta.RecordWriter.
type RecordWriter struct {
	CreateRecordFn func(ctx context.Context, rec *docmeta.Record) error
}

func (w *RecordWriter) CreateRecord(ctx context.Context, rec *docmeta.Record) error {
	return w.CreateRecordFn(ctx, rec)
}
