// Package audit writes structured audit lines through zap. Entries are not
// persisted anywhere else.
package audit

import (
	"context"
	"time"

	"school-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Entry struct {
	Action  string
	Message string
	Meta    map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry Entry)
}

type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(base *zap.Logger) *ZapLogger {
	if base == nil {
		base = zap.L()
	}
	return &ZapLogger{logger: base.Named("audit")}
}

func (l *ZapLogger) Log(ctx context.Context, entry Entry) {
	md := contextutil.ExtractMetadata(ctx)
	l.logger.Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("request_id", md.RequestID),
		zap.String("actor_id", md.UserID),
		zap.String("actor_role", md.Role),
		zap.Any("meta", entry.Meta),
	)
}
