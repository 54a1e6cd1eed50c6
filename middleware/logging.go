package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ottshare/ott-share-hub/utils"
)

// RequestLogger emits one structured log line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path
		ctx.Next()

		logger.Info("request",
			zap.Int("status", ctx.Writer.Status()),
			zap.String("method", ctx.Request.Method),
			zap.String("path", path),
			zap.String("ip", ctx.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Recovery converts panics into the generic 500 envelope so no internal
// detail leaks to the client.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("error", r),
					zap.String("path", ctx.Request.URL.Path),
					zap.Stack("stacktrace"),
				)
				utils.Fail(ctx, 500, "서버 오류가 발생했습니다.")
				ctx.Abort()
			}
		}()
		ctx.Next()
	}
}
