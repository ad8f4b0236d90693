package middleware

import (
	"authgate/biz/middleware/accesslog"
	"authgate/biz/middleware/cors"
	"authgate/biz/middleware/recovery"
	"authgate/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // log id
		accesslog.New(), // access log
		cors.New(),      // cross origin
	}
}
