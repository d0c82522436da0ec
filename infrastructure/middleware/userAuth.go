package middlewares

import (
	"strings"

	"blinkgate.io/application/interfaces"
	"blinkgate.io/application/middlewares"
	"github.com/gin-gonic/gin"
)

func UserAuthenticationMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authToken := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		appContext, next := middlewares.UserAuthenticationMiddleware(&interfaces.ApplicationContext[any]{
			Ctx:       ctx,
			Keys:      ctx.Keys,
			Header:    ctx.Request.Header,
			ClientIP:  ctx.ClientIP(),
			UserAgent: ctx.Request.UserAgent(),
		}, authToken)
		if next {
			ctx.Set("AppContext", appContext)
			ctx.Next()
		}
	}
}
