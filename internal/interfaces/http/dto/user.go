package dto

import (
	"time"

	"senai-coach-api/internal/domain/entity"
)

// UserDTO 用户信息
type UserDTO struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Industry   string    `json:"industry,omitempty"`
	Experience int       `json:"experience,omitempty"`
	Skills     []string  `json:"skills,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	Onboarded  bool      `json:"onboarded"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToUserDTO 由实体转换
func ToUserDTO(user *entity.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Industry:   user.Industry,
		Experience: user.Experience,
		Skills:     user.Skills,
		Bio:        user.Bio,
		Onboarded:  user.IsOnboarded(),
		CreatedAt:  user.CreatedAt,
	}
}

// UpdateProfileRequest 更新求职画像请求
type UpdateProfileRequest struct {
	Name       *string  `json:"name,omitempty"`
	Industry   *string  `json:"industry,omitempty"`
	Experience *int     `json:"experience,omitempty" binding:"omitempty,gte=0,lte=60"`
	Skills     []string `json:"skills,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
}
