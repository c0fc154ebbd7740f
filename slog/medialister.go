package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/cardtext"
)

// Ensure LoggingMediaLister implements cardtext.MediaLister.
var _ cardtext.MediaLister = (*LoggingMediaLister)(nil)

// LoggingMediaLister wraps a MediaLister with debug logging.
type LoggingMediaLister struct {
	next   cardtext.MediaLister
	logger *slog.Logger
}

// NewLoggingMediaLister creates a new LoggingMediaLister.
func NewLoggingMediaLister(next cardtext.MediaLister, logger *slog.Logger) *LoggingMediaLister {
	return &LoggingMediaLister{next: next, logger: logger}
}

// ListMedia delegates to the wrapped lister and logs the operation.
func (l *LoggingMediaLister) ListMedia(html string) (files []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("media listing",
			"input_len", len(html),
			"count", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.ListMedia(html)
}
