package resp

import (
	"net/http"

	"authgate/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

// Text writes msg as a plain text body.
func Text(c *app.RequestContext, httpCode int, msg string) {
	c.String(httpCode, msg)
}

func SuccessResp(c *app.RequestContext, msg string) {
	Text(c, http.StatusOK, msg)
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	if bizErr == nil {
		bizErr = errs.ServerError
	}
	Text(c, bizErr.Status(), bizErr.Msg())
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error) {
	FailResp(c, bizErr)
	c.Abort()
}
