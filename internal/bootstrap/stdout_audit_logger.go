package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

type stdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger() AuditLogger {
	return &stdoutAuditLogger{logger: zap.L().Named("audit")}
}

func (l *stdoutAuditLogger) Log(_ context.Context, entry AuditLog) {
	l.logger.Info(entry.Message,
		zap.String("action", entry.Action),
		zap.Any("meta", entry.Meta),
	)
}
