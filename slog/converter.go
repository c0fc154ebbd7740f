// Package slog provides logging decorators for cardtext service
// interfaces using log/slog.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/cardtext"
)

// Ensure LoggingConverter implements cardtext.Converter.
var _ cardtext.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   cardtext.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next cardtext.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(html string) (md string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("markdown conversion",
			"input_len", len(html),
			"output_len", len(md),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}
