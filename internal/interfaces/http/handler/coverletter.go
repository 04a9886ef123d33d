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

// CoverLetterHandler 求职信处理器
type CoverLetterHandler struct {
	userRepo   repository.UserRepository
	letterRepo repository.CoverLetterRepository
	generator  *coach.CoverLetterGenerator
	checker    *quota.CallQuotaChecker
}

// NewCoverLetterHandler 创建求职信处理器
func NewCoverLetterHandler(
	userRepo repository.UserRepository,
	letterRepo repository.CoverLetterRepository,
	generator *coach.CoverLetterGenerator,
	checker *quota.CallQuotaChecker,
) *CoverLetterHandler {
	return &CoverLetterHandler{
		userRepo:   userRepo,
		letterRepo: letterRepo,
		generator:  generator,
		checker:    checker,
	}
}

// Create 生成一封求职信
// @Summary 生成求职信
// @Tags CoverLetter
// @Accept json
// @Produce json
// @Param body body dto.CreateCoverLetterRequest true "职位信息"
// @Success 201 {object} dto.Response[dto.CoverLetterResponse]
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/v1/cover-letters [post]
func (h *CoverLetterHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	var req dto.CreateCoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error(ctx, "failed to get user", err)
		dto.InternalError(c, "failed to create cover letter")
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

	content, err := h.generator.Generate(ctx, user, req.CompanyName, req.JobTitle, req.JobDescription)
	if err != nil {
		logger.Error(ctx, "failed to generate cover letter", err, "user_id", userID)
		if dto.FromAppError(c, err) {
			return
		}
		dto.InternalError(c, "failed to generate cover letter")
		return
	}

	letter := &entity.CoverLetter{
		UserID:         userID,
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Content:        content,
		Status:         entity.CoverLetterCompleted,
	}
	if err := h.letterRepo.Create(ctx, letter); err != nil {
		logger.Error(ctx, "failed to store cover letter", err)
		dto.InternalError(c, "failed to store cover letter")
		return
	}

	dto.Created(c, dto.ToCoverLetterDTO(letter))
}

// Get 获取单封求职信
// @Summary 获取求职信
// @Tags CoverLetter
// @Produce json
// @Param id path string true "求职信 ID"
// @Success 200 {object} dto.Response[dto.CoverLetterResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/cover-letters/{id} [get]
func (h *CoverLetterHandler) Get(c *gin.Context) {
	letter, ok := h.loadOwned(c)
	if !ok {
		return
	}
	dto.Success(c, dto.ToCoverLetterDTO(letter))
}

// List 分页列出当前用户的求职信
// @Summary 列出求职信
// @Tags CoverLetter
// @Produce json
// @Success 200 {object} dto.Response[[]dto.CoverLetterResponse]
// @Router /api/v1/cover-letters [get]
func (h *CoverLetterHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	page := dto.BindPage(c)

	result, err := h.letterRepo.ListByUser(ctx, middleware.GetUserID(c), repository.NewPagination(page.Page, page.PageSize))
	if err != nil {
		logger.Error(ctx, "failed to list cover letters", err)
		dto.InternalError(c, "failed to list cover letters")
		return
	}

	items := make([]*dto.CoverLetterResponse, 0, len(result.Items))
	for _, l := range result.Items {
		items = append(items, dto.ToCoverLetterDTO(l))
	}
	dto.SuccessWithPage(c, items, dto.NewPageMeta(page.Page, page.PageSize, int(result.Total)))
}

// Update 手工编辑求职信内容
// @Summary 更新求职信
// @Tags CoverLetter
// @Accept json
// @Produce json
// @Param id path string true "求职信 ID"
// @Param body body dto.UpdateCoverLetterRequest true "内容"
// @Success 200 {object} dto.Response[dto.CoverLetterResponse]
// @Router /api/v1/cover-letters/{id} [put]
func (h *CoverLetterHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateCoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	letter, ok := h.loadOwned(c)
	if !ok {
		return
	}

	letter.Content = req.Content
	letter.Status = entity.CoverLetterCompleted
	if err := h.letterRepo.Update(ctx, letter); err != nil {
		logger.Error(ctx, "failed to update cover letter", err, "letter_id", letter.ID)
		dto.InternalError(c, "failed to update cover letter")
		return
	}

	dto.Success(c, dto.ToCoverLetterDTO(letter))
}

// Delete 删除求职信
// @Summary 删除求职信
// @Tags CoverLetter
// @Param id path string true "求职信 ID"
// @Success 204
// @Router /api/v1/cover-letters/{id} [delete]
func (h *CoverLetterHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	letter, ok := h.loadOwned(c)
	if !ok {
		return
	}

	if err := h.letterRepo.Delete(ctx, letter.ID); err != nil {
		logger.Error(ctx, "failed to delete cover letter", err, "letter_id", letter.ID)
		dto.InternalError(c, "failed to delete cover letter")
		return
	}

	dto.NoContent(c)
}

// loadOwned 加载求职信并校验归属。出错时已写响应。
func (h *CoverLetterHandler) loadOwned(c *gin.Context) (*entity.CoverLetter, bool) {
	ctx := c.Request.Context()

	letter, err := h.letterRepo.GetByID(ctx, c.Param("id"))
	if err != nil {
		logger.Error(ctx, "failed to get cover letter", err)
		dto.InternalError(c, "failed to get cover letter")
		return nil, false
	}
	if letter == nil || letter.UserID != middleware.GetUserID(c) {
		dto.NotFound(c, "cover letter not found")
		return nil, false
	}
	return letter, true
}
