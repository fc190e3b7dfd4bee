package main

import (
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/example/gocheckout/internal/config"
	"github.com/example/gocheckout/internal/logging"
	"github.com/example/gocheckout/internal/server"
)

func main() {
	cfg, err := config.Load("./config")
	if err != nil {
		panic(err)
	}

	if err := logging.Init(false); err != nil {
		panic(err)
	}

	deps := server.BuildDeps(cfg)

	app := iris.New()
	server.RegisterAdminRoutes(app, deps)

	addr := cfg.AdminServer.Addr()
	zap.L().Info("admin server listening", zap.String("addr", addr))
	if err := app.Run(iris.Addr(addr), iris.WithoutServerError(iris.ErrServerClosed)); err != nil {
		zap.L().Fatal("failed to run admin server", zap.Error(err))
	}
}
