// Package main 行业洞察后台刷新器入口（insights-worker）
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"senai-coach-api/internal/config"
	"senai-coach-api/internal/infrastructure/messaging"
	"senai-coach-api/internal/wire"
	"senai-coach-api/internal/worker"
	"senai-coach-api/pkg/logger"
	"senai-coach-api/pkg/tracer"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	log := logger.FromContext(ctx)

	shutdown, err := tracer.Init(ctx, tracer.Config{
		ServiceName: "insights-worker",
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to init tracer", err)
	}
	defer func() { _ = shutdown(ctx) }()

	dl, cleanup, err := wire.InitializeDataLayer(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize data layer", err)
	}
	defer cleanup()

	gl := wire.InitializeGenLayer(cfg, dl)

	// 消费洞察刷新任务
	refreshHandler := worker.NewRefreshHandler(gl.Insight, dl.InsightRepo, dl.Cache)
	consumer := messaging.NewConsumer(dl.RedisClient.Redis(), messaging.ConsumerConfig{
		Stream:       messaging.Stream(cfg.Worker.Stream),
		Group:        messaging.ConsumerGroup(cfg.Worker.Group),
		ConsumerName: consumerName(cfg.Worker.ConsumerName),
		RetryLimit:   cfg.Worker.RetryLimit,
	})
	consumer.RegisterHandler(messaging.MsgTypeInsightRefresh, refreshHandler.Handle)

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start consumer", err)
	}
	defer consumer.Stop()

	// 周期扫描需要刷新的行业
	scheduler := worker.NewScheduler(dl.UserRepo, dl.InsightRepo, dl.Producer, cfg.Worker.ScanInterval)
	go scheduler.Run(ctx)

	log.Info("insights-worker started",
		"stream", cfg.Worker.Stream,
		"group", cfg.Worker.Group,
		"scan_interval", cfg.Worker.ScanInterval,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down insights-worker...")
	cancel()
	log.Info("insights-worker exited")
}

// consumerName 消费者名，多实例下用主机名区分
func consumerName(base string) string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return base
	}
	return base + "-" + hostname
}
