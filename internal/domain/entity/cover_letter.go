package entity

import "time"

// CoverLetterStatus 求职信状态
type CoverLetterStatus string

const (
	CoverLetterDraft     CoverLetterStatus = "draft"
	CoverLetterCompleted CoverLetterStatus = "completed"
)

// CoverLetter 求职信，由模型基于用户画像与职位描述生成
type CoverLetter struct {
	ID             string            `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         string            `json:"user_id" gorm:"type:uuid;index;not null"`
	CompanyName    string            `json:"company_name" gorm:"type:varchar(128);not null"`
	JobTitle       string            `json:"job_title" gorm:"type:varchar(128);not null"`
	JobDescription string            `json:"job_description" gorm:"type:text"`
	Content        string            `json:"content" gorm:"type:text"`
	Status         CoverLetterStatus `json:"status" gorm:"type:varchar(16);default:draft"`
	CreatedAt      time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (CoverLetter) TableName() string {
	return "cover_letters"
}
