package trace

import (
	"context"

	"authgate/biz/util/id_gen"
	"authgate/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const HeaderKeyLogId = "X-Log-ID"

// New tags the request context with the caller's X-Log-ID, or a fresh one,
// and echoes it on the response.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := string(c.Request.Header.Peek(HeaderKeyLogId))
		if logID == "" {
			logID = id_gen.NewID()
		}
		c.Header(HeaderKeyLogId, logID)
		c.Next(trace_info.WithLogId(ctx, logID))
	}
}
