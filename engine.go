// Package authgate wires the HTTP engine for the registration and login service.
package authgate

import (
	"authgate/biz/config"
	"authgate/biz/handler"
	"authgate/biz/middleware"
	"authgate/biz/service/user"

	"github.com/cloudwego/hertz/pkg/app/server"
)

const defaultAddr = ":3302"

// NewEngine builds the server with its middleware and routes. It does not
// start listening; call Spin on the result.
func NewEngine(users *user.Service) *server.Hertz {
	conf := config.GetServerConf()
	addr := conf.Addr
	if addr == "" {
		addr = defaultAddr
	}

	h := server.New(server.WithHostPorts(addr))
	h.Use(middleware.Suite()...)
	register(h, handler.NewUserHandler(users), conf)
	return h
}
