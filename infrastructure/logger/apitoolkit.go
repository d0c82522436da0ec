package logger

import (
	"context"
	"os"

	apitoolkit "github.com/apitoolkit/apitoolkit-go"
	"github.com/gin-gonic/gin"
)

type APIToolKitMonitor struct {
	client *apitoolkit.Client
}

func (monitor *APIToolKitMonitor) Init() {
	apiKey := os.Getenv("APITOOLKIT_API_KEY")
	if apiKey == "" {
		Warning("APITOOLKIT_API_KEY not set. request metrics will not be reported")
		return
	}
	client, err := apitoolkit.NewClient(context.Background(), apitoolkit.Config{APIKey: apiKey})
	if err != nil {
		Error("could not initialise apitoolkit client", LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	monitor.client = client
}

func (monitor *APIToolKitMonitor) RequestMetricMiddleware() interface{} {
	if monitor.client == nil {
		return func(ctx *gin.Context) {
			ctx.Next()
		}
	}
	return monitor.client.GinMiddleware
}
