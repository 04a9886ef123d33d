package entity

import "time"

// GenerationKind 生成用途
type GenerationKind string

const (
	KindInsight     GenerationKind = "insight"
	KindQuiz        GenerationKind = "quiz"
	KindTip         GenerationKind = "tip"
	KindResume      GenerationKind = "resume"
	KindCoverLetter GenerationKind = "cover_letter"
)

// UsageEvent 单次模型调用的用量记录，配额统计的依据
type UsageEvent struct {
	ID         string         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     string         `json:"user_id" gorm:"type:uuid;index;not null"`
	Kind       GenerationKind `json:"kind" gorm:"type:varchar(32);not null"`
	Model      string         `json:"model" gorm:"type:varchar(64);not null"`
	UsedFallback bool         `json:"used_fallback" gorm:"not null;default:false"`
	DurationMs int            `json:"duration_ms" gorm:"not null;default:0"`
	CreatedAt  time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName 指定表名
func (UsageEvent) TableName() string {
	return "usage_events"
}
