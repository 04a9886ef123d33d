// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/domain/repository"
	"senai-coach-api/internal/infrastructure/messaging"
	"senai-coach-api/internal/interfaces/http/dto"
	"senai-coach-api/internal/interfaces/http/middleware"
	"senai-coach-api/pkg/logger"
)

// UserHandler 用户处理器
type UserHandler struct {
	userRepo    repository.UserRepository
	insightRepo repository.InsightRepository
	tx          repository.Transactor
	producer    *messaging.Producer
}

// NewUserHandler 创建用户处理器
func NewUserHandler(userRepo repository.UserRepository, insightRepo repository.InsightRepository, tx repository.Transactor, producer *messaging.Producer) *UserHandler {
	return &UserHandler{
		userRepo:    userRepo,
		insightRepo: insightRepo,
		tx:          tx,
		producer:    producer,
	}
}

// GetMe 获取当前用户
// @Summary 获取当前用户
// @Tags User
// @Produce json
// @Success 200 {object} dto.Response[dto.UserDTO]
// @Router /api/v1/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.userRepo.GetByID(ctx, middleware.GetUserID(c))
	if err != nil {
		logger.Error(ctx, "failed to get user", err)
		dto.InternalError(c, "failed to get user")
		return
	}
	if user == nil {
		dto.NotFound(c, "user not found")
		return
	}

	dto.Success(c, dto.ToUserDTO(user))
}

// UpdateMe 更新求职画像。
// 行业变更且该行业还没有洞察时，异步触发一次生成。
// @Summary 更新当前用户画像
// @Tags User
// @Accept json
// @Produce json
// @Param body body dto.UpdateProfileRequest true "画像信息"
// @Success 200 {object} dto.Response[dto.UserDTO]
// @Router /api/v1/users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	var user *entity.User
	var prevIndustry string

	// 读改写放进一个事务，避免并发画像更新互相覆盖
	err := h.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = h.userRepo.GetByID(ctx, middleware.GetUserID(c))
		if err != nil {
			return err
		}
		if user == nil {
			return nil
		}

		prevIndustry = user.Industry
		if req.Name != nil {
			user.Name = strings.TrimSpace(*req.Name)
		}
		if req.Industry != nil {
			user.Industry = strings.TrimSpace(*req.Industry)
		}
		if req.Experience != nil {
			user.Experience = *req.Experience
		}
		if req.Skills != nil {
			user.Skills = req.Skills
		}
		if req.Bio != nil {
			user.Bio = *req.Bio
		}

		return h.userRepo.Update(ctx, user)
	})
	if err != nil {
		logger.Error(ctx, "failed to update user", err)
		dto.InternalError(c, "failed to update profile")
		return
	}
	if user == nil {
		dto.NotFound(c, "user not found")
		return
	}

	if user.Industry != "" && user.Industry != prevIndustry {
		h.ensureInsightQueued(c, user.Industry)
	}

	dto.Success(c, dto.ToUserDTO(user))
}

// ensureInsightQueued 新行业没有洞察时入队一次生成任务。
// 失败只打日志，画像更新本身不受影响。
func (h *UserHandler) ensureInsightQueued(c *gin.Context, industry string) {
	ctx := c.Request.Context()

	insight, err := h.insightRepo.GetByIndustry(ctx, industry)
	if err != nil {
		logger.Warn(ctx, "failed to check industry insight", "error", err, "industry", industry)
		return
	}
	if insight != nil {
		return
	}

	if _, err := h.producer.PublishInsightRefresh(ctx, &messaging.InsightRefreshMessage{
		JobID:    uuid.New().String(),
		Industry: industry,
		Trigger:  "onboarding",
	}); err != nil {
		logger.Warn(ctx, "failed to enqueue insight refresh", "error", err, "industry", industry)
	}
}
