package cors

import (
	"context"
	"net/http"
	"testing"

	"authgate/biz/config"

	"github.com/bytedance/mockey"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func preflight(mw app.HandlerFunc, origin string) *app.RequestContext {
	c := app.NewContext(0)
	c.SetHandlers(app.HandlersChain{mw})
	c.Request.SetMethod(http.MethodOptions)
	c.Request.SetRequestURI("/register")
	c.Request.Header.Set("Origin", origin)
	c.Request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	c.Next(context.Background())
	return c
}

func TestCORS(t *testing.T) {
	mockey.PatchConvey("TestCORS", t, func() {
		t.Run("listed origin", func(t *testing.T) {
			patch := mockey.Mock(config.GetCORSConf).Return(config.CORSConf{
				AllowOrigins: []string{"https://app.example.com"},
			}).Build()
			defer patch.UnPatch()

			c := preflight(New(), "https://app.example.com")
			assert.Equal(t, "https://app.example.com", string(c.Response.Header.Peek("Access-Control-Allow-Origin")))
		})

		t.Run("wildcard", func(t *testing.T) {
			patch := mockey.Mock(config.GetCORSConf).Return(config.CORSConf{
				AllowOrigins: []string{"*"},
			}).Build()
			defer patch.UnPatch()

			c := preflight(New(), "https://any.example.com")
			assert.Equal(t, "*", string(c.Response.Header.Peek("Access-Control-Allow-Origin")))
		})

		t.Run("empty list is same origin only", func(t *testing.T) {
			patch := mockey.Mock(config.GetCORSConf).Return(config.CORSConf{}).Build()
			defer patch.UnPatch()

			c := preflight(New(), "https://evil.example.com")
			assert.Empty(t, c.Response.Header.Peek("Access-Control-Allow-Origin"))
		})
	})
}
