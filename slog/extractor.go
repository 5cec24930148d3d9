// Package slog provides logging decorators for docmeta services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docmeta"
)

// Ensure LoggingExtractor implements docmeta.MetadataExtractor.
var _ docmeta.MetadataExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MetadataExtractor with logging.
type LoggingExtractor struct {
	next   docmeta.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docmeta.MetadataExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (m *docmeta.Metadata, err error) {
	defer func(begin time.Time) {
		var title string
		var other int
		if m != nil {
			title = m.Title
			other = len(m.Other)
		}
		e.logger.Info("extract",
			"bytes", len(html),
			"title", title,
			"other", other,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
