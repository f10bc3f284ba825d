package bootstrap

import (
	"context"
	"time"

	"hr-portal/internal/shared/clock"
	"hr-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through zap. A nil clock uses the
// system clock.
type StdoutAuditLogger struct {
	logger *zap.Logger
	clock  clock.Clock
}

func NewStdoutAuditLogger(clk clock.Clock, logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	if clk == nil {
		clk = clock.New(time.UTC)
	}
	return &StdoutAuditLogger{logger: l, clock: clk}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", l.clock.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	fields = append(fields, contextutil.ExtractMetadata(ctx).Fields()...)
	l.logger.Info("audit event", fields...)
}
