// Package handler 提供 HTTP 请求处理器
package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"senai-coach-api/internal/application/coach"
	"senai-coach-api/internal/application/quota"
	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/domain/repository"
	"senai-coach-api/internal/interfaces/http/dto"
	"senai-coach-api/internal/interfaces/http/middleware"
	"senai-coach-api/pkg/logger"
)

// AssessmentHandler 面试测验处理器
type AssessmentHandler struct {
	userRepo       repository.UserRepository
	assessmentRepo repository.AssessmentRepository
	generator      *coach.AssessmentGenerator
	checker        *quota.CallQuotaChecker
}

// NewAssessmentHandler 创建面试测验处理器
func NewAssessmentHandler(
	userRepo repository.UserRepository,
	assessmentRepo repository.AssessmentRepository,
	generator *coach.AssessmentGenerator,
	checker *quota.CallQuotaChecker,
) *AssessmentHandler {
	return &AssessmentHandler{
		userRepo:       userRepo,
		assessmentRepo: assessmentRepo,
		generator:      generator,
		checker:        checker,
	}
}

// Create 生成一份新测验
// @Summary 生成面试测验
// @Tags Assessment
// @Produce json
// @Success 201 {object} dto.Response[dto.AssessmentResponse]
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/v1/assessments [post]
func (h *AssessmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error(ctx, "failed to get user", err)
		dto.InternalError(c, "failed to create assessment")
		return
	}
	if user == nil {
		dto.NotFound(c, "user not found")
		return
	}

	if !h.checkQuota(c, userID) {
		return
	}

	questions, err := h.generator.GenerateQuiz(ctx, user)
	if err != nil {
		logger.Error(ctx, "failed to generate quiz", err, "user_id", userID)
		if dto.FromAppError(c, err) {
			return
		}
		dto.InternalError(c, "failed to generate quiz")
		return
	}

	assessment := &entity.Assessment{
		UserID:    userID,
		Category:  "Technical",
		Questions: questions,
	}
	if err := h.assessmentRepo.Create(ctx, assessment); err != nil {
		logger.Error(ctx, "failed to store assessment", err)
		dto.InternalError(c, "failed to store assessment")
		return
	}

	dto.Created(c, dto.ToAssessmentDTO(assessment))
}

// Get 获取单个测验
// @Summary 获取测验
// @Tags Assessment
// @Produce json
// @Param id path string true "测验 ID"
// @Success 200 {object} dto.Response[dto.AssessmentResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/assessments/{id} [get]
func (h *AssessmentHandler) Get(c *gin.Context) {
	assessment, ok := h.loadOwned(c)
	if !ok {
		return
	}
	dto.Success(c, dto.ToAssessmentDTO(assessment))
}

// List 分页列出当前用户的测验
// @Summary 列出测验
// @Tags Assessment
// @Produce json
// @Success 200 {object} dto.Response[[]dto.AssessmentResponse]
// @Router /api/v1/assessments [get]
func (h *AssessmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	page := dto.BindPage(c)

	result, err := h.assessmentRepo.ListByUser(ctx, middleware.GetUserID(c), repository.NewPagination(page.Page, page.PageSize))
	if err != nil {
		logger.Error(ctx, "failed to list assessments", err)
		dto.InternalError(c, "failed to list assessments")
		return
	}

	items := make([]*dto.AssessmentResponse, 0, len(result.Items))
	for _, a := range result.Items {
		items = append(items, dto.ToAssessmentDTO(a))
	}
	dto.SuccessWithPage(c, items, dto.NewPageMeta(page.Page, page.PageSize, int(result.Total)))
}

// Submit 提交作答并判分。
// 改进建议生成失败不阻塞判分，只记日志。
// @Summary 提交测验作答
// @Tags Assessment
// @Accept json
// @Produce json
// @Param id path string true "测验 ID"
// @Param body body dto.SubmitAssessmentRequest true "作答"
// @Success 200 {object} dto.Response[dto.AssessmentResponse]
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/assessments/{id}/submit [post]
func (h *AssessmentHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	assessment, ok := h.loadOwned(c)
	if !ok {
		return
	}
	if assessment.IsSubmitted() {
		dto.Conflict(c, "assessment already submitted")
		return
	}
	if len(req.Answers) != len(assessment.Questions) {
		dto.BadRequest(c, "answer count does not match question count")
		return
	}

	results, score := assessment.Score(req.Answers)
	now := time.Now()
	assessment.Results = results
	assessment.QuizScore = score
	assessment.SubmittedAt = &now

	if wrong := assessment.WrongAnswers(); len(wrong) > 0 {
		user, err := h.userRepo.GetByID(ctx, assessment.UserID)
		if err == nil && user != nil {
			tip, tipErr := h.generator.ImprovementTip(ctx, user, wrong)
			if tipErr != nil {
				logger.Warn(ctx, "failed to generate improvement tip", "error", tipErr, "assessment_id", assessment.ID)
			} else {
				assessment.ImprovementTip = tip
			}
		}
	}

	if err := h.assessmentRepo.Update(ctx, assessment); err != nil {
		logger.Error(ctx, "failed to store submission", err, "assessment_id", assessment.ID)
		dto.InternalError(c, "failed to store submission")
		return
	}

	dto.Success(c, dto.ToAssessmentDTO(assessment))
}

// loadOwned 加载测验并校验归属。出错时已写响应。
func (h *AssessmentHandler) loadOwned(c *gin.Context) (*entity.Assessment, bool) {
	ctx := c.Request.Context()

	assessment, err := h.assessmentRepo.GetByID(ctx, c.Param("id"))
	if err != nil {
		logger.Error(ctx, "failed to get assessment", err)
		dto.InternalError(c, "failed to get assessment")
		return nil, false
	}
	if assessment == nil || assessment.UserID != middleware.GetUserID(c) {
		dto.NotFound(c, "assessment not found")
		return nil, false
	}
	return assessment, true
}

func (h *AssessmentHandler) checkQuota(c *gin.Context, userID string) bool {
	ctx := c.Request.Context()
	if _, _, err := h.checker.CheckDaily(ctx, userID); err != nil {
		var quotaErr quota.CallQuotaExceededError
		if errors.As(err, &quotaErr) {
			dto.TooManyRequests(c, "daily ai quota exceeded")
			return false
		}
		logger.Error(ctx, "failed to check quota", err)
		dto.InternalError(c, "quota check failed")
		return false
	}
	return true
}
