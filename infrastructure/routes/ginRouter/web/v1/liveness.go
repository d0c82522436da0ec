package routev1

import (
	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/controller"
	"blinkgate.io/application/controller/dto"
	"blinkgate.io/application/interfaces"
	middlewares "blinkgate.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func LivenessRouter(router *gin.RouterGroup) {
	livenessRouter := router.Group("/liveness")
	livenessRouter.Use(middlewares.UserAuthenticationMiddleware())
	{
		livenessRouter.POST("/process-frame", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.ProcessFrameDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.ProcessFrame(&interfaces.ApplicationContext[dto.ProcessFrameDTO]{
				Ctx:       ctx,
				Body:      &body,
				Keys:      appContext.Keys,
				ClientIP:  appContext.ClientIP,
				UserAgent: appContext.UserAgent,
			})
		})

		livenessRouter.GET("/result", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.FetchVerificationResult(&interfaces.ApplicationContext[any]{
				Ctx:       ctx,
				Keys:      appContext.Keys,
				ClientIP:  appContext.ClientIP,
				UserAgent: appContext.UserAgent,
			})
		})
	}
}
