package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"senai-coach-api/internal/domain/repository"
	"senai-coach-api/internal/infrastructure/messaging"
	"senai-coach-api/pkg/logger"
)

// InsightPublisher 刷新任务发布端，由 messaging.Producer 实现
type InsightPublisher interface {
	PublishInsightRefresh(ctx context.Context, job *messaging.InsightRefreshMessage) (string, error)
}

// Scheduler 周期扫描需要刷新的行业并入队刷新任务。
// 真正的刷新由消费侧完成，扫描器只负责发现。
type Scheduler struct {
	userRepo    repository.UserRepository
	insightRepo repository.InsightRepository
	producer    InsightPublisher
	interval    time.Duration
	now         func() time.Time
}

// NewScheduler 创建扫描器
func NewScheduler(userRepo repository.UserRepository, insightRepo repository.InsightRepository, producer InsightPublisher, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		userRepo:    userRepo,
		insightRepo: insightRepo,
		producer:    producer,
		interval:    interval,
		now:         time.Now,
	}
}

// Run 阻塞运行扫描循环，直到 ctx 取消。启动时先扫一次。
func (s *Scheduler) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info("insight scheduler started", "interval", s.interval)

	s.scan(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("insight scheduler stopped")
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

// scan 找出过期或缺失的行业洞察并入队
func (s *Scheduler) scan(ctx context.Context) {
	log := logger.FromContext(ctx)
	now := s.now()

	// 已有但过期的
	due, err := s.insightRepo.ListDue(ctx, now)
	if err != nil {
		log.Error("failed to list due insights", "error", err)
		return
	}

	queued := make(map[string]bool, len(due))
	for _, insight := range due {
		if s.enqueue(ctx, insight.Industry) {
			queued[insight.Industry] = true
		}
	}

	// 有用户但还没有洞察的
	industries, err := s.userRepo.DistinctIndustries(ctx)
	if err != nil {
		log.Error("failed to list industries", "error", err)
		return
	}
	for _, industry := range industries {
		if industry == "" || queued[industry] {
			continue
		}
		existing, err := s.insightRepo.GetByIndustry(ctx, industry)
		if err != nil {
			log.Error("failed to check insight", "error", err, "industry", industry)
			continue
		}
		if existing != nil {
			continue
		}
		if s.enqueue(ctx, industry) {
			queued[industry] = true
		}
	}

	if len(queued) > 0 {
		log.Info("insight refresh jobs queued", "count", len(queued))
	}
}

func (s *Scheduler) enqueue(ctx context.Context, industry string) bool {
	_, err := s.producer.PublishInsightRefresh(ctx, &messaging.InsightRefreshMessage{
		JobID:    uuid.New().String(),
		Industry: industry,
		Trigger:  "scheduled",
	})
	if err != nil {
		logger.FromContext(ctx).Error("failed to enqueue insight refresh", "error", err, "industry", industry)
		return false
	}
	return true
}
