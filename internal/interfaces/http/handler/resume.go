// Package handler 提供 HTTP 请求处理器
package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"senai-coach-api/internal/application/coach"
	"senai-coach-api/internal/application/quota"
	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/domain/repository"
	"senai-coach-api/internal/interfaces/http/dto"
	"senai-coach-api/internal/interfaces/http/middleware"
	"senai-coach-api/pkg/logger"
)

// ResumeHandler 简历处理器
type ResumeHandler struct {
	userRepo   repository.UserRepository
	resumeRepo repository.ResumeRepository
	improver   *coach.ResumeImprover
	checker    *quota.CallQuotaChecker
}

// NewResumeHandler 创建简历处理器
func NewResumeHandler(
	userRepo repository.UserRepository,
	resumeRepo repository.ResumeRepository,
	improver *coach.ResumeImprover,
	checker *quota.CallQuotaChecker,
) *ResumeHandler {
	return &ResumeHandler{
		userRepo:   userRepo,
		resumeRepo: resumeRepo,
		improver:   improver,
		checker:    checker,
	}
}

// Get 获取当前用户简历
// @Summary 获取简历
// @Tags Resume
// @Produce json
// @Success 200 {object} dto.Response[dto.ResumeResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/resume [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	resume, err := h.resumeRepo.GetByUser(ctx, middleware.GetUserID(c))
	if err != nil {
		logger.Error(ctx, "failed to get resume", err)
		dto.InternalError(c, "failed to get resume")
		return
	}
	if resume == nil {
		dto.NotFound(c, "resume not found")
		return
	}

	dto.Success(c, dto.ToResumeDTO(resume))
}

// Save 保存（插入或覆盖）当前用户简历
// @Summary 保存简历
// @Tags Resume
// @Accept json
// @Produce json
// @Param body body dto.SaveResumeRequest true "简历内容"
// @Success 200 {object} dto.Response[dto.ResumeResponse]
// @Router /api/v1/resume [put]
func (h *ResumeHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	resume := &entity.Resume{
		UserID:  middleware.GetUserID(c),
		Content: req.Content,
	}
	if err := h.resumeRepo.Upsert(ctx, resume); err != nil {
		logger.Error(ctx, "failed to save resume", err)
		dto.InternalError(c, "failed to save resume")
		return
	}

	dto.Success(c, dto.ToResumeDTO(resume))
}

// Improve 润色一段简历内容
// @Summary 润色简历片段
// @Tags Resume
// @Accept json
// @Produce json
// @Param body body dto.ImproveResumeRequest true "待润色内容"
// @Success 200 {object} dto.Response[dto.ImproveResumeResponse]
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/v1/resume/improve [post]
func (h *ResumeHandler) Improve(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	var req dto.ImproveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error(ctx, "failed to get user", err)
		dto.InternalError(c, "failed to improve resume")
		return
	}
	if user == nil {
		dto.NotFound(c, "user not found")
		return
	}

	if _, _, err := h.checker.CheckDaily(ctx, userID); err != nil {
		var quotaErr quota.CallQuotaExceededError
		if errors.As(err, &quotaErr) {
			dto.TooManyRequests(c, "daily ai quota exceeded")
			return
		}
		logger.Error(ctx, "failed to check quota", err)
		dto.InternalError(c, "quota check failed")
		return
	}

	improved, err := h.improver.Improve(ctx, user, req.Section, req.Content)
	if err != nil {
		logger.Error(ctx, "failed to improve resume", err, "user_id", userID)
		if dto.FromAppError(c, err) {
			return
		}
		dto.InternalError(c, "failed to improve resume")
		return
	}

	dto.Success(c, &dto.ImproveResumeResponse{Improved: improved})
}
