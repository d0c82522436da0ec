package routev1

import (
	"strconv"

	"blinkgate.io/application/controller"
	"blinkgate.io/application/controller/dto"
	"blinkgate.io/application/interfaces"
	middlewares "blinkgate.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func AdminRouter(router *gin.RouterGroup) {
	adminRouter := router.Group("/admin")
	adminRouter.Use(middlewares.AdminAuthenticationMiddleware())
	{
		adminRouter.GET("/events", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			limit, _ := strconv.ParseInt(ctx.Query("limit"), 10, 64)
			controller.FetchVerificationEvents(&interfaces.ApplicationContext[dto.FetchVerificationEventsDTO]{
				Ctx: ctx,
				Body: &dto.FetchVerificationEventsDTO{
					Limit: limit,
				},
				Keys: appContext.Keys,
			})
		})
	}
}
