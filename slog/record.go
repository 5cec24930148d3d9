package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docmeta"
)

// Ensure LoggingRecordService implements docmeta.RecordService.
var _ docmeta.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with logging.
type LoggingRecordService struct {
	next   docmeta.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next docmeta.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *docmeta.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create record",
			"id", rec.ID,
			"source", rec.Source,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

// FindRecordByID delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (rec *docmeta.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter docmeta.RecordFilter) (recs []*docmeta.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find records",
			"count", len(recs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}
