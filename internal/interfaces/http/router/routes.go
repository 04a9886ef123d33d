// Package router 提供 HTTP 路由配置
package router

import (
	"senai-coach-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	insightHandler *handler.InsightHandler,
	assessmentHandler *handler.AssessmentHandler,
	resumeHandler *handler.ResumeHandler,
	coverLetterHandler *handler.CoverLetterHandler,
) {
	// 认证管理
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/logout", authHandler.Logout)
	}

	// 用户画像
	users := v1.Group("/users")
	{
		users.GET("/me", userHandler.GetMe)
		users.PUT("/me", userHandler.UpdateMe)
	}

	// 行业洞察
	insights := v1.Group("/insights")
	{
		insights.GET("", insightHandler.GetMine)
		insights.POST("/refresh", insightHandler.Refresh)
	}

	// 面试测验
	assessments := v1.Group("/assessments")
	{
		assessments.GET("", assessmentHandler.List)
		assessments.POST("", assessmentHandler.Create)
		assessments.GET("/:id", assessmentHandler.Get)
		assessments.POST("/:id/submit", assessmentHandler.Submit)
	}

	// 简历
	resume := v1.Group("/resume")
	{
		resume.GET("", resumeHandler.Get)
		resume.PUT("", resumeHandler.Save)
		resume.POST("/improve", resumeHandler.Improve)
	}

	// 求职信
	letters := v1.Group("/cover-letters")
	{
		letters.GET("", coverLetterHandler.List)
		letters.POST("", coverLetterHandler.Create)
		letters.GET("/:id", coverLetterHandler.Get)
		letters.PUT("/:id", coverLetterHandler.Update)
		letters.DELETE("/:id", coverLetterHandler.Delete)
	}
}
