package entity

import "time"

// Resume 简历。每个用户至多一份，内容为 Markdown。
type Resume struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	AtsScore  float64   `json:"ats_score,omitempty"`
	Feedback  string    `json:"feedback,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Resume) TableName() string {
	return "resumes"
}
