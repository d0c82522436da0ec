package middlewares

import (
	"strings"

	"blinkgate.io/application/interfaces"
	"blinkgate.io/application/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminAuthenticationMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		bearerToken := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		appContext, next := middlewares.AdminAuthenticationMiddleware(&interfaces.ApplicationContext[any]{
			Ctx:       ctx,
			Keys:      ctx.Keys,
			Header:    ctx.Request.Header,
			ClientIP:  ctx.ClientIP(),
			UserAgent: ctx.Request.UserAgent(),
		}, bearerToken)
		if next {
			ctx.Set("AppContext", appContext)
			ctx.Next()
		}
	}
}
