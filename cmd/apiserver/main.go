package main

// @title           Returnless Connector API
// @version         1.0
// @description     为 Returnless 退货平台提供 Magento 订单快照查询
// @BasePath        /api/v1

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"rlconnector/internal/app/config"
	"rlconnector/internal/app/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// 1. 加载配置（.env 可选，环境变量优先于配置文件）
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	zl, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	// 2. 初始化应用
	app, cleanup, err := InitializeApp(cfg, zl)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	// 3. 创建 HTTP Server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: app.Engine,
	}

	// 4. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		zl.Infof(context.Background(), "Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 5. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		zl.Infof(context.Background(), "Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server, app, cfg, zl)
	case err := <-serverErrChan:
		zl.Errorf(context.Background(), "HTTP server error: %v", err)
		return
	}

	zl.Infof(context.Background(), "Application stopped")
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server, app *App, cfg *config.Config, log logger.Logger) {
	ctx := context.Background()

	// 1. 摘流：/health 返回 503
	app.Ready.Store(false)

	// 2. 停止 HTTP Server，等待在途请求完成
	log.Infof(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf(ctx, "HTTP server shutdown error: %v", err)
	} else {
		log.Infof(ctx, "HTTP server stopped gracefully")
	}
}
