package cors

import (
	"slices"
	"time"

	"authgate/biz/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

// New builds the CORS middleware. An empty allow list keeps the service
// same-origin, which is all the bundled pages need.
func New() app.HandlerFunc {
	corsConf := config.GetCORSConf()

	cfg := cors.Config{
		AllowMethods:     defaultIfEmpty(corsConf.AllowMethods, []string{"GET", "POST", "HEAD", "OPTIONS"}),
		AllowHeaders:     defaultIfEmpty(corsConf.AllowHeaders, []string{"Origin", "Content-Length", "Content-Type", "X-Log-ID"}),
		ExposeHeaders:    []string{"X-Log-ID"},
		AllowCredentials: corsConf.AllowCredentials,
		MaxAge:           time.Duration(corsConf.MaxAge) * time.Second,
	}

	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 12 * time.Hour
	}

	switch {
	case len(corsConf.AllowOrigins) == 0:
		cfg.AllowOriginFunc = func(string) bool { return false }
	case slices.Contains(corsConf.AllowOrigins, "*"):
		if corsConf.AllowCredentials {
			cfg.AllowOriginFunc = func(string) bool { return true }
		} else {
			cfg.AllowAllOrigins = true
		}
	default:
		cfg.AllowOrigins = corsConf.AllowOrigins
	}

	return cors.New(cfg)
}

func defaultIfEmpty(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}
