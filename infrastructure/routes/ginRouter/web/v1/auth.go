package routev1

import (
	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/controller"
	"blinkgate.io/application/controller/dto"
	"blinkgate.io/application/interfaces"
	"github.com/gin-gonic/gin"
)

func AuthRouter(router *gin.RouterGroup) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/register", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.RegisterUserDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.RegisterUser(&interfaces.ApplicationContext[dto.RegisterUserDTO]{
				Ctx:       ctx,
				Body:      &body,
				ClientIP:  appContext.ClientIP,
				UserAgent: appContext.UserAgent,
			})
		})

		authRouter.POST("/resend-verification", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.ResendVerificationDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.ResendVerification(&interfaces.ApplicationContext[dto.ResendVerificationDTO]{
				Ctx:       ctx,
				Body:      &body,
				ClientIP:  appContext.ClientIP,
				UserAgent: appContext.UserAgent,
			})
		})

		authRouter.POST("/verify-email", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.VerifyEmailDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.VerifyEmail(&interfaces.ApplicationContext[dto.VerifyEmailDTO]{
				Ctx:       ctx,
				Body:      &body,
				ClientIP:  appContext.ClientIP,
				UserAgent: appContext.UserAgent,
			})
		})
	}
}
