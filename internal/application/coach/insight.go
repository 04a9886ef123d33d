package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"senai-coach-api/internal/application/quota"
	"senai-coach-api/internal/config"
	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/genai"
)

// insightPayload 模型返回的行业洞察 JSON 结构
type insightPayload struct {
	SalaryRanges []struct {
		Role     string  `json:"role"`
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Median   float64 `json:"median"`
		Location string  `json:"location"`
	} `json:"salaryRanges"`
	GrowthRate        float64  `json:"growthRate"`
	DemandLevel       string   `json:"demandLevel"`
	TopSkills         []string `json:"topSkills"`
	MarketOutlook     string   `json:"marketOutlook"`
	KeyTrends         []string `json:"keyTrends"`
	RecommendedSkills []string `json:"recommendedSkills"`
}

// InsightGenerator 生成行业洞察
type InsightGenerator struct {
	core
	cadence time.Duration
	now     func() time.Time
}

// NewInsightGenerator 创建行业洞察生成器。cadence 为刷新周期。
func NewInsightGenerator(invoker *genai.Invoker, cfg config.GeminiConfig, recorder *quota.UsageRecorder, cadence time.Duration) *InsightGenerator {
	if cadence <= 0 {
		cadence = 7 * 24 * time.Hour
	}
	return &InsightGenerator{
		core:    newCore(invoker, cfg, recorder),
		cadence: cadence,
		now:     time.Now,
	}
}

// Generate 为指定行业生成一份洞察。userID 为空时（后台刷新）不记用量。
func (g *InsightGenerator) Generate(ctx context.Context, userID, industry string) (*entity.IndustryInsight, error) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil, fmt.Errorf("industry is required")
	}

	result, err := g.generate(ctx, userID, entity.KindInsight, buildInsightPrompt(industry), genai.FormatJSON)
	if err != nil {
		return nil, err
	}

	var payload insightPayload
	if err := genai.DecodeJSON(result.RawText, &payload); err != nil {
		return nil, mapGenError(err)
	}

	now := g.now().UTC()
	insight := &entity.IndustryInsight{
		Industry:          industry,
		GrowthRate:        payload.GrowthRate,
		DemandLevel:       normalizeDemandLevel(payload.DemandLevel),
		TopSkills:         payload.TopSkills,
		MarketOutlook:     normalizeMarketOutlook(payload.MarketOutlook),
		KeyTrends:         payload.KeyTrends,
		RecommendedSkills: payload.RecommendedSkills,
		LastUpdated:       now,
		NextUpdate:        now.Add(g.cadence),
	}
	for _, sr := range payload.SalaryRanges {
		insight.SalaryRanges = append(insight.SalaryRanges, entity.SalaryRange{
			Role:     sr.Role,
			Min:      sr.Min,
			Max:      sr.Max,
			Median:   sr.Median,
			Location: sr.Location,
		})
	}
	return insight, nil
}

// normalizeDemandLevel 模型偶尔返回小写或缩写，归一到既定枚举
func normalizeDemandLevel(s string) entity.DemandLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return entity.DemandHigh
	case "low":
		return entity.DemandLow
	default:
		return entity.DemandMedium
	}
}

func normalizeMarketOutlook(s string) entity.MarketOutlook {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return entity.OutlookPositive
	case "negative":
		return entity.OutlookNegative
	default:
		return entity.OutlookNeutral
	}
}
