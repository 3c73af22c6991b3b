package middleware

import (
	"errors"
	"net/http"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"mockgraph/internal/http/dto"
	"mockgraph/internal/http/resp"
)

// ZapRecovery turns a handler panic into a 500 error body. A panic caused by
// the client hanging up is logged at warn and answered with nothing.
func ZapRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		fields := []zap.Field{
			zap.Any("error", recovered),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("request_id", RequestIDFrom(c)),
		}

		if err, ok := recovered.(error); ok && (errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)) {
			logger.Warn("client connection lost", fields...)
			c.Abort()
			return
		}

		logger.Error("panic recovered", append(fields, zap.Stack("stack"))...)
		if c.Writer.Written() {
			// Streaming responses have already sent a status.
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    resp.CodeInternalError,
			Message: "internal error",
		})
	})
}
