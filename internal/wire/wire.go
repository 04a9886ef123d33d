// Package wire 提供依赖装配。各组件在此按层手工组装，
// 构造顺序即依赖顺序，cleanup 按构造的逆序执行。
package wire

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"senai-coach-api/internal/application/coach"
	"senai-coach-api/internal/application/quota"
	"senai-coach-api/internal/config"
	"senai-coach-api/internal/genai"
	"senai-coach-api/internal/infrastructure/gemini"
	"senai-coach-api/internal/infrastructure/messaging"
	"senai-coach-api/internal/infrastructure/persistence/postgres"
	"senai-coach-api/internal/infrastructure/persistence/redis"
	"senai-coach-api/internal/interfaces/http/handler"
	"senai-coach-api/internal/interfaces/http/router"
	"senai-coach-api/pkg/logger"
)

// DataLayer 数据层依赖容器
type DataLayer struct {
	// PostgreSQL
	PgClient       *postgres.Client
	TxManager      *postgres.TxManager
	UserRepo       *postgres.UserRepository
	InsightRepo    *postgres.InsightRepository
	AssessmentRepo *postgres.AssessmentRepository
	ResumeRepo     *postgres.ResumeRepository
	LetterRepo     *postgres.CoverLetterRepository
	UsageRepo      *postgres.UsageRepository

	// Redis
	RedisClient *redis.Client
	Cache       *redis.Cache
	RateLimiter *redis.RateLimiter

	// Messaging
	Producer *messaging.Producer
}

// GenLayer 生成层依赖容器
type GenLayer struct {
	Invoker     *genai.Invoker
	Recorder    *quota.UsageRecorder
	Checker     *quota.CallQuotaChecker
	Insight     *coach.InsightGenerator
	Assessment  *coach.AssessmentGenerator
	Resume      *coach.ResumeImprover
	CoverLetter *coach.CoverLetterGenerator
}

// App 组装完成的应用
type App struct {
	Data   *DataLayer
	Gen    *GenLayer
	Router *router.Router
}

// Engine 返回 HTTP 引擎
func (a *App) Engine() *gin.Engine {
	return a.Router.Engine()
}

// InitializeDataLayer 初始化数据层
func InitializeDataLayer(ctx context.Context, cfg *config.Config) (*DataLayer, func(), error) {
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	redisClient, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		_ = pgClient.Close()
		return nil, nil, fmt.Errorf("failed to init redis: %w", err)
	}

	dl := &DataLayer{
		PgClient:       pgClient,
		TxManager:      postgres.NewTxManager(pgClient),
		UserRepo:       postgres.NewUserRepository(pgClient),
		InsightRepo:    postgres.NewInsightRepository(pgClient),
		AssessmentRepo: postgres.NewAssessmentRepository(pgClient),
		ResumeRepo:     postgres.NewResumeRepository(pgClient),
		LetterRepo:     postgres.NewCoverLetterRepository(pgClient),
		UsageRepo:      postgres.NewUsageRepository(pgClient),
		RedisClient:    redisClient,
		Cache:          redis.NewCache(redisClient),
		RateLimiter:    redis.NewRateLimiter(redisClient),
		Producer:       messaging.NewProducer(redisClient.Redis(), 0),
	}

	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn(ctx, "failed to close redis", "error", err)
		}
		if err := pgClient.Close(); err != nil {
			logger.Warn(ctx, "failed to close postgres", "error", err)
		}
	}
	return dl, cleanup, nil
}

// InitializeGenLayer 初始化生成层
func InitializeGenLayer(cfg *config.Config, dl *DataLayer) *GenLayer {
	backend := gemini.NewClient(&cfg.Gemini)
	invoker := genai.NewInvoker(backend)
	recorder := quota.NewUsageRecorder(dl.UsageRepo)
	checker := quota.NewCallQuotaChecker(dl.UsageRepo, cfg.Quota.Enabled, cfg.Quota.DailyCallLimit)

	return &GenLayer{
		Invoker:     invoker,
		Recorder:    recorder,
		Checker:     checker,
		Insight:     coach.NewInsightGenerator(invoker, cfg.Gemini, recorder, cfg.Worker.RefreshCadence),
		Assessment:  coach.NewAssessmentGenerator(invoker, cfg.Gemini, recorder),
		Resume:      coach.NewResumeImprover(invoker, cfg.Gemini, recorder),
		CoverLetter: coach.NewCoverLetterGenerator(invoker, cfg.Gemini, recorder),
	}
}

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	dl, cleanup, err := InitializeDataLayer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	gl := InitializeGenLayer(cfg, dl)

	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(cfg.Security.JWT, dl.UserRepo),
		User:        handler.NewUserHandler(dl.UserRepo, dl.InsightRepo, dl.TxManager, dl.Producer),
		Insight:     handler.NewInsightHandler(dl.UserRepo, dl.InsightRepo, dl.Cache, gl.Insight, gl.Checker, dl.Producer, cfg.Cache.InsightTTL),
		Assessment:  handler.NewAssessmentHandler(dl.UserRepo, dl.AssessmentRepo, gl.Assessment, gl.Checker),
		Resume:      handler.NewResumeHandler(dl.UserRepo, dl.ResumeRepo, gl.Resume, gl.Checker),
		CoverLetter: handler.NewCoverLetterHandler(dl.UserRepo, dl.LetterRepo, gl.CoverLetter, gl.Checker),
		Health:      handler.NewHealthHandler(dl.PgClient, dl.RedisClient, cfg.App.Version),
	}

	app := &App{
		Data:   dl,
		Gen:    gl,
		Router: router.New(cfg, handlers, dl.RateLimiter),
	}
	return app, cleanup, nil
}
