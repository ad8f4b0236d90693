package authgate

import (
	"path/filepath"

	"authgate/biz/config"
	"authgate/biz/handler"
	_ "authgate/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

const defaultStaticDir = "./static"

func register(r *server.Hertz, users *handler.UserHandler, conf config.ServerConf) {
	staticDir := conf.StaticDir
	if staticDir == "" {
		staticDir = defaultStaticDir
	}

	r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	r.StaticFile("/login", filepath.Join(staticDir, "login.html"))
	r.StaticFile("/register", filepath.Join(staticDir, "register.html"))

	r.POST("/register", users.Register)
	r.POST("/login", users.Login)

	if conf.Swagger {
		r.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler, swagger.URL("/swagger/doc.json")))
	}
}
