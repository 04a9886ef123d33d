package dto

import (
	"time"

	"senai-coach-api/internal/domain/entity"
)

// InsightResponse 行业洞察响应
type InsightResponse struct {
	Industry          string               `json:"industry"`
	SalaryRanges      []entity.SalaryRange `json:"salary_ranges"`
	GrowthRate        float64              `json:"growth_rate"`
	DemandLevel       string               `json:"demand_level"`
	TopSkills         []string             `json:"top_skills"`
	MarketOutlook     string               `json:"market_outlook"`
	KeyTrends         []string             `json:"key_trends"`
	RecommendedSkills []string             `json:"recommended_skills"`
	LastUpdated       time.Time            `json:"last_updated"`
	NextUpdate        time.Time            `json:"next_update"`
}

// ToInsightDTO 由实体转换
func ToInsightDTO(insight *entity.IndustryInsight) *InsightResponse {
	if insight == nil {
		return nil
	}
	return &InsightResponse{
		Industry:          insight.Industry,
		SalaryRanges:      insight.SalaryRanges,
		GrowthRate:        insight.GrowthRate,
		DemandLevel:       string(insight.DemandLevel),
		TopSkills:         insight.TopSkills,
		MarketOutlook:     string(insight.MarketOutlook),
		KeyTrends:         insight.KeyTrends,
		RecommendedSkills: insight.RecommendedSkills,
		LastUpdated:       insight.LastUpdated,
		NextUpdate:        insight.NextUpdate,
	}
}
