package facemesh

import (
	"encoding/json"
	"errors"
	"fmt"

	"blinkgate.io/infrastructure/logger"
	"blinkgate.io/infrastructure/network"
	"blinkgate.io/infrastructure/vision/types"
)

// FaceMeshService talks to the face-mesh sidecar which runs the
// landmark model and classifies eye state from the eye aspect ratio.
type FaceMeshService struct {
	Network *network.NetworkController
}

type classifyRequest struct {
	Image *string `json:"image"`
}

func (fm *FaceMeshService) Classify(image *string) (*types.FrameAnalysis, error) {
	requestBody := classifyRequest{
		Image: image,
	}

	response, statusCode, err := fm.Network.Post("/classify", &map[string]string{}, requestBody, nil, false, nil)
	if err != nil {
		logger.Error("error classifying frame", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	if statusCode == nil || *statusCode != 200 {
		logger.Error("frame classification failed with status code", logger.LoggerOptions{
			Key:  "status_code",
			Data: statusCode,
		})
		return nil, errors.New("frame classification failed")
	}

	var result types.FrameAnalysis
	if err := json.Unmarshal(*response, &result); err != nil {
		logger.Error("error unmarshaling frame classification response", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	return &result, nil
}

func (fm *FaceMeshService) HealthCheck() error {
	response, statusCode, err := fm.Network.Get("/health", nil, nil)
	if err != nil {
		return err
	}
	if statusCode == nil || *statusCode != 200 {
		return fmt.Errorf("face-mesh service health check returned status %v", statusCode)
	}
	var health struct {
		ModelLoaded bool `json:"model_loaded"`
	}
	if err := json.Unmarshal(*response, &health); err != nil {
		return err
	}
	if !health.ModelLoaded {
		return errors.New("face-mesh model is not loaded")
	}
	return nil
}
