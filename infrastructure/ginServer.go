package infrastructure

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/constants"
	"blinkgate.io/application/liveness"
	"blinkgate.io/infrastructure/logger"
	middlewares "blinkgate.io/infrastructure/middleware"
	ratelimit "blinkgate.io/infrastructure/ratelimit"
	webRoutev1 "blinkgate.io/infrastructure/routes/ginRouter/web/v1"
	server_response "blinkgate.io/infrastructure/serverResponse"
	startup "blinkgate.io/infrastructure/startUp"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type ginServer struct{}

func (s *ginServer) Start() {
	err := godotenv.Load()

	if err != nil {
		logger.Info("error loading env variables")
	}

	startup.StartServices()
	defer startup.CleanUpServices()

	server := gin.Default()
	origins := []string{}
	if os.Getenv("GIN_MODE") == "debug" {
		origins = append(origins, "http://localhost:5173")
	} else if os.Getenv("GIN_MODE") == "release" {
		origins = append(origins, strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",")...)
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "User-Agent"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	server.Use(cors.New(corsConfig))
	server.Use(ratelimit.TokenBucketPerIP())
	// base64 frames from the camera run a few MB each
	server.MaxMultipartMemory = 15 << 20

	server.Use(logger.RequestMetricMonitor.RequestMetricMiddleware().(func(*gin.Context)))

	v1 := server.Group("/api")
	v1.Use(middlewares.UserAgentMiddleware())

	routerV1 := v1.Group("/v1")
	{
		webRoutev1.AuthRouter(routerV1)
		webRoutev1.LivenessRouter(routerV1)
		webRoutev1.AdminRouter(routerV1)
	}

	server.GET("/ping", func(ctx *gin.Context) {
		server_response.Responder.Respond(ctx, http.StatusOK, "pong!", map[string]any{
			"classifierReady":        liveness.VerificationEngine.Ready(),
			"activeSessions":         liveness.VerificationEngine.ActiveSessions(),
			"frameCaptureIntervalMS": constants.FRAME_CAPTURE_INTERVAL_MS,
		}, nil, nil)
	})

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL))
	})

	gin_mode := os.Getenv("GIN_MODE")
	port := os.Getenv("PORT")
	if gin_mode == "debug" || gin_mode == "release" {
		logger.Info(fmt.Sprintf("Server starting on PORT %s", port))
		server.Run(fmt.Sprintf(":%s", port))
	} else {
		panic(fmt.Sprintf("invalid gin mode used - %s", gin_mode))
	}
}
