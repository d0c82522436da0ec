package vision

import (
	"os"

	"blinkgate.io/infrastructure/logger"
	"blinkgate.io/infrastructure/network"
	"blinkgate.io/infrastructure/vision/facemesh"
	"blinkgate.io/infrastructure/vision/types"
)

var VisionService types.VisionServiceType

// InitErr holds the one-time initialisation failure. When set the
// engine fails every verification call until the process restarts.
var InitErr error

func InitialiseVisionService() {
	service := &facemesh.FaceMeshService{
		Network: &network.NetworkController{
			BaseUrl: os.Getenv("FACE_MESH_BASE_URL"),
		},
	}
	if err := service.HealthCheck(); err != nil {
		InitErr = err
		logger.Error("face-mesh service initialisation failed. liveness checks will be unavailable until restart", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	VisionService = service
	logger.Info("face-mesh service initialised successfully")
}
