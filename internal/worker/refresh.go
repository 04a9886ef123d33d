// Package worker 实现行业洞察的后台刷新
package worker

import (
	"context"
	"fmt"

	"senai-coach-api/internal/application/coach"
	"senai-coach-api/internal/domain/repository"
	"senai-coach-api/internal/infrastructure/messaging"
	rediscache "senai-coach-api/internal/infrastructure/persistence/redis"
	"senai-coach-api/pkg/logger"
	"senai-coach-api/pkg/metrics"
)

// RefreshHandler 消费洞察刷新任务：生成、落库、失效缓存
type RefreshHandler struct {
	generator   *coach.InsightGenerator
	insightRepo repository.InsightRepository
	cache       *rediscache.Cache
}

// NewRefreshHandler 创建刷新处理器
func NewRefreshHandler(generator *coach.InsightGenerator, insightRepo repository.InsightRepository, cache *rediscache.Cache) *RefreshHandler {
	return &RefreshHandler{
		generator:   generator,
		insightRepo: insightRepo,
		cache:       cache,
	}
}

// Handle 处理单条刷新任务。返回错误会触发消费者的退避重试。
func (h *RefreshHandler) Handle(ctx context.Context, msg *messaging.Message) error {
	var payload messaging.InsightRefreshMessage
	if err := msg.UnmarshalPayload(&payload); err != nil {
		// 载荷坏了重试也没用，记日志后吞掉
		logger.Error(ctx, "invalid insight refresh payload", err, "message_id", msg.ID)
		return nil
	}

	trigger := payload.Trigger
	if trigger == "" {
		trigger = "scheduled"
	}

	log := logger.FromContext(ctx)
	log.Info("refreshing industry insight", "industry", payload.Industry, "trigger", trigger)

	insight, err := h.generator.Generate(ctx, "", payload.Industry)
	if err != nil {
		metrics.InsightRefreshTotal.WithLabelValues(trigger, "error").Inc()
		return fmt.Errorf("failed to generate insight for %s: %w", payload.Industry, err)
	}

	if err := h.insightRepo.Upsert(ctx, insight); err != nil {
		metrics.InsightRefreshTotal.WithLabelValues(trigger, "error").Inc()
		return fmt.Errorf("failed to store insight for %s: %w", payload.Industry, err)
	}

	// 失效缓存，下次读取回源取新值
	if err := h.cache.Delete(ctx, "insight:"+payload.Industry); err != nil {
		log.Warn("failed to invalidate insight cache", "error", err, "industry", payload.Industry)
	}

	metrics.InsightRefreshTotal.WithLabelValues(trigger, "success").Inc()
	log.Info("industry insight refreshed", "industry", payload.Industry, "next_update", insight.NextUpdate)
	return nil
}
