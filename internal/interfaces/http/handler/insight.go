// Package handler 提供 HTTP 请求处理器
package handler

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"senai-coach-api/internal/application/coach"
	"senai-coach-api/internal/application/quota"
	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/domain/repository"
	"senai-coach-api/internal/infrastructure/messaging"
	rediscache "senai-coach-api/internal/infrastructure/persistence/redis"
	"senai-coach-api/internal/interfaces/http/dto"
	"senai-coach-api/internal/interfaces/http/middleware"
	"senai-coach-api/pkg/logger"
	"senai-coach-api/pkg/metrics"
)

// errInsightMissing 缓存加载器用于区分"行业尚无洞察"与真实故障
var errInsightMissing = errors.New("insight missing")

// InsightHandler 行业洞察处理器
type InsightHandler struct {
	userRepo    repository.UserRepository
	insightRepo repository.InsightRepository
	cache       *rediscache.Cache
	generator   *coach.InsightGenerator
	checker     *quota.CallQuotaChecker
	producer    *messaging.Producer
	cacheTTL    time.Duration
}

// NewInsightHandler 创建行业洞察处理器
func NewInsightHandler(
	userRepo repository.UserRepository,
	insightRepo repository.InsightRepository,
	cache *rediscache.Cache,
	generator *coach.InsightGenerator,
	checker *quota.CallQuotaChecker,
	producer *messaging.Producer,
	cacheTTL time.Duration,
) *InsightHandler {
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &InsightHandler{
		userRepo:    userRepo,
		insightRepo: insightRepo,
		cache:       cache,
		generator:   generator,
		checker:     checker,
		producer:    producer,
		cacheTTL:    cacheTTL,
	}
}

// GetMine 获取当前用户行业的洞察。
// 该行业还没有洞察时同步生成一份（计入用户配额）。
// @Summary 获取行业洞察
// @Tags Insight
// @Produce json
// @Success 200 {object} dto.Response[dto.InsightResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/insights [get]
func (h *InsightHandler) GetMine(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error(ctx, "failed to get user", err)
		dto.InternalError(c, "failed to get insight")
		return
	}
	if user == nil {
		dto.NotFound(c, "user not found")
		return
	}
	if !user.IsOnboarded() {
		dto.BadRequest(c, "complete your profile to see industry insights")
		return
	}

	industry := user.Industry
	raw, err := h.cache.GetOrLoad(ctx, insightCacheKey(industry), h.cacheTTL, func() (interface{}, error) {
		insight, err := h.insightRepo.GetByIndustry(ctx, industry)
		if err != nil {
			return nil, err
		}
		if insight == nil {
			return nil, errInsightMissing
		}
		return insight, nil
	})

	switch {
	case err == nil:
		var insight entity.IndustryInsight
		if err := json.Unmarshal(raw, &insight); err != nil {
			logger.Error(ctx, "failed to decode cached insight", err, "industry", industry)
			dto.InternalError(c, "failed to get insight")
			return
		}
		dto.Success(c, dto.ToInsightDTO(&insight))

	case errors.Is(err, errInsightMissing):
		insight, ok := h.generateAndStore(c, userID, industry)
		if !ok {
			return
		}
		dto.Success(c, dto.ToInsightDTO(insight))

	default:
		logger.Error(ctx, "failed to load insight", err, "industry", industry)
		dto.InternalError(c, "failed to get insight")
	}
}

// Refresh 主动触发当前行业洞察刷新（异步）
// @Summary 触发行业洞察刷新
// @Tags Insight
// @Produce json
// @Success 202 {object} dto.Response[gin.H]
// @Router /api/v1/insights/refresh [post]
func (h *InsightHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.userRepo.GetByID(ctx, middleware.GetUserID(c))
	if err != nil {
		logger.Error(ctx, "failed to get user", err)
		dto.InternalError(c, "failed to trigger refresh")
		return
	}
	if user == nil || !user.IsOnboarded() {
		dto.BadRequest(c, "complete your profile to refresh industry insights")
		return
	}

	jobID := uuid.New().String()
	if _, err := h.producer.PublishInsightRefresh(ctx, &messaging.InsightRefreshMessage{
		JobID:    jobID,
		Industry: user.Industry,
		Trigger:  "manual",
	}); err != nil {
		logger.Error(ctx, "failed to enqueue insight refresh", err, "industry", user.Industry)
		dto.InternalError(c, "failed to trigger refresh")
		return
	}

	dto.Accepted(c, gin.H{
		"job_id":   jobID,
		"industry": user.Industry,
	})
}

// generateAndStore 同步生成并落库。出错时已写响应，返回 ok=false。
func (h *InsightHandler) generateAndStore(c *gin.Context, userID, industry string) (*entity.IndustryInsight, bool) {
	ctx := c.Request.Context()

	if _, _, err := h.checker.CheckDaily(ctx, userID); err != nil {
		var quotaErr quota.CallQuotaExceededError
		if errors.As(err, &quotaErr) {
			dto.TooManyRequests(c, "daily ai quota exceeded")
			return nil, false
		}
		logger.Error(ctx, "failed to check quota", err)
		dto.InternalError(c, "failed to get insight")
		return nil, false
	}

	insight, err := h.generator.Generate(ctx, userID, industry)
	if err != nil {
		metrics.InsightRefreshTotal.WithLabelValues("api", "error").Inc()
		logger.Error(ctx, "failed to generate insight", err, "industry", industry)
		if dto.FromAppError(c, err) {
			return nil, false
		}
		dto.InternalError(c, "failed to generate insight")
		return nil, false
	}

	if err := h.insightRepo.Upsert(ctx, insight); err != nil {
		logger.Error(ctx, "failed to store insight", err, "industry", industry)
		dto.InternalError(c, "failed to store insight")
		return nil, false
	}

	metrics.InsightRefreshTotal.WithLabelValues("api", "success").Inc()

	// 覆盖缓存，失败不影响响应
	if err := h.cache.Set(ctx, insightCacheKey(industry), insight, h.cacheTTL); err != nil {
		logger.Warn(ctx, "failed to cache insight", "error", err, "industry", industry)
	}
	return insight, true
}

func insightCacheKey(industry string) string {
	return "insight:" + industry
}
