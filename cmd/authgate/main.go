package main

import (
	"context"
	"flag"

	"authgate"
	"authgate/biz/config"
	"authgate/biz/db"
	"authgate/biz/service/user"
	"authgate/biz/util/encode"
	"authgate/biz/util/ip"
	"authgate/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "path to the yaml config")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()

	stores := db.Init(context.Background())
	svc := user.New(stores.Users, encode.NewBcryptHasher(config.GetHasherConf().Cost))

	h := authgate.NewEngine(svc)
	h.OnShutdown = append(h.OnShutdown, stores.Close)

	addr := config.GetServerConf().Addr
	if addr == "" {
		addr = ":3302"
	}
	hlog.Infof("Server is running on %s (host %s)", addr, ip.IPv4())
	h.Spin()
}
