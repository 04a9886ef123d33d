package dto

import (
	"github.com/gin-gonic/gin"

	apperrors "senai-coach-api/pkg/errors"
)

// FromAppError 将应用错误渲染为错误响应。
// 非应用错误返回 false，由调用方按场景兜底。
func FromAppError(c *gin.Context, err error) bool {
	appErr := apperrors.AsAppError(err)
	if appErr == nil {
		return false
	}
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		Code:    appErr.HTTPStatus,
		Message: appErr.Message,
		Error: &ErrorDetail{
			ErrorCode: string(appErr.Code),
			Details:   appErr.Detail,
		},
		TraceID: c.GetString("trace_id"),
	})
	return true
}
