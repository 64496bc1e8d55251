package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/atomic"

	"rlconnector/internal/app/bootstrap"
	"rlconnector/internal/app/config"
	"rlconnector/internal/app/pkg/logger"
	"rlconnector/internal/app/server/handlers/orderinfo"
	"rlconnector/internal/app/server/routers"
)

// App 应用实例
type App struct {
	Engine *gin.Engine
	Ready  *atomic.Bool
}

// InitializeApp 组装依赖：Infra → Repo → Module → Service → Handler → Router
func InitializeApp(cfg *config.Config, log logger.Logger) (*App, func(), error) {
	gin.SetMode(cfg.Server.Mode)

	infra, cleanup, err := bootstrap.OpenInfra(context.Background(), cfg, log)
	if err != nil {
		return nil, nil, err
	}

	opts := routers.Options{
		ServiceName: cfg.App.Name,
		Logger:      log,
		Ready:       atomic.NewBool(true),
	}

	var reg prometheus.Registerer
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		reg = registry
		opts.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	orderInfoService := bootstrap.NewOrderInfoService(infra, cfg, log, reg)
	orderInfoHandler := orderinfo.NewOrderInfoHandler(orderInfoService)

	return &App{
		Engine: routers.SetupRoutes(orderInfoHandler, opts),
		Ready:  opts.Ready,
	}, cleanup, nil
}
