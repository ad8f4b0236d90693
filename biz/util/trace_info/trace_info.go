package trace_info

import (
	"context"
)

type logIdKey struct{}

// WithLogId stores the request's log id on ctx so every log line can carry it.
func WithLogId(ctx context.Context, logId string) context.Context {
	if logId == "" {
		return ctx
	}
	return context.WithValue(ctx, logIdKey{}, logId)
}

func GetLogId(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	logId, _ := ctx.Value(logIdKey{}).(string)
	return logId
}
