package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studieren/compliments/apperr"
)

var internalErrorBody = gin.H{
	"status":  "error",
	"message": "Internal Server Error",
}

// ErrorHandler 渲染最后一个通过 c.Error 挂载的错误。*apperr.Error 按其状态码和
// 消息返回，其余错误（包括 panic）统一返回 500，细节只写日志
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					"path", c.Request.URL.Path, "panic", fmt.Sprint(r))
				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorBody)
				}
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if e, ok := apperr.As(err); ok {
			c.JSON(e.Status, gin.H{"error": e.Message})
			return
		}

		logger.ErrorContext(c.Request.Context(), "internal server error",
			"path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, internalErrorBody)
	}
}
