package entity

import "time"

// DemandLevel 需求热度
type DemandLevel string

const (
	DemandHigh   DemandLevel = "High"
	DemandMedium DemandLevel = "Medium"
	DemandLow    DemandLevel = "Low"
)

// MarketOutlook 市场前景
type MarketOutlook string

const (
	OutlookPositive MarketOutlook = "Positive"
	OutlookNeutral  MarketOutlook = "Neutral"
	OutlookNegative MarketOutlook = "Negative"
)

// SalaryRange 某职位的薪资区间
type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location,omitempty"`
}

// IndustryInsight 行业洞察。每个行业一行，由模型生成并按周期刷新。
type IndustryInsight struct {
	ID                string        `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Industry          string        `json:"industry" gorm:"type:varchar(64);uniqueIndex;not null"`
	SalaryRanges      []SalaryRange `json:"salary_ranges" gorm:"serializer:json"`
	GrowthRate        float64       `json:"growth_rate"`
	DemandLevel       DemandLevel   `json:"demand_level" gorm:"type:varchar(16)"`
	TopSkills         []string      `json:"top_skills" gorm:"serializer:json"`
	MarketOutlook     MarketOutlook `json:"market_outlook" gorm:"type:varchar(16)"`
	KeyTrends         []string      `json:"key_trends" gorm:"serializer:json"`
	RecommendedSkills []string      `json:"recommended_skills" gorm:"serializer:json"`
	LastUpdated       time.Time     `json:"last_updated"`
	NextUpdate        time.Time     `json:"next_update" gorm:"index"`
}

// TableName 指定表名
func (IndustryInsight) TableName() string {
	return "industry_insights"
}

// IsStale 检查是否已到刷新时间
func (i *IndustryInsight) IsStale(now time.Time) bool {
	return !i.NextUpdate.After(now)
}
