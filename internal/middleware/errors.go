package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler 在處理器之後檢查 c.Errors，回傳通用的錯誤回應。
// Bind 類型的錯誤（缺少表單欄位）回應 400，其餘一律 500。
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		status := http.StatusInternalServerError
		if last.IsType(gin.ErrorTypeBind) {
			status = http.StatusBadRequest
		}

		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"error", c.Errors.String(),
		)

		if !c.Writer.Written() {
			c.String(status, http.StatusText(status))
		}
	}
}
