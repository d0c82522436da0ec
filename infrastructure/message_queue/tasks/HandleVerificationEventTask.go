package queue_tasks

import (
	"context"
	"encoding/json"

	"blinkgate.io/application/repository"
	"blinkgate.io/entities"
	"blinkgate.io/infrastructure/ipresolver"
	"blinkgate.io/infrastructure/logger"
	mq_types "blinkgate.io/infrastructure/message_queue/types"
	"blinkgate.io/infrastructure/useragent"
	"github.com/hibiken/asynq"
)

var HandleVerificationEventTaskName mq_types.Queues = "log_verification_event"

type VerificationEventPayload struct {
	Email          string
	Status         entities.VerificationStatus
	Reason         string
	OpenCaptured   bool
	ClosedCaptured bool
	IPAddress      string
	UserAgent      string
}

// HandleVerificationEventTask enriches a terminal verdict with client
// geo and device data and persists it for admin reporting.
func HandleVerificationEventTask(ctx context.Context, t *asynq.Task) error {
	var payload VerificationEventPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling verification event payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}

	event := entities.VerificationEvent{
		Email:          payload.Email,
		Status:         payload.Status,
		Reason:         payload.Reason,
		OpenCaptured:   payload.OpenCaptured,
		ClosedCaptured: payload.ClosedCaptured,
		IPAddress:      payload.IPAddress,
	}
	if payload.IPAddress != "" {
		ipResult, err := ipresolver.IPResolverInstance.LookUp(payload.IPAddress)
		if err == nil {
			event.City = ipResult.City
			event.CountryCode = ipResult.CountryCode
		}
	}
	if payload.UserAgent != "" {
		parsed := useragent.ParseUserAgent(payload.UserAgent)
		event.Device = parsed.Name + " on " + parsed.OS
	}

	_, err = repository.VerificationEventRepo().CreateOne(event)
	if err != nil {
		logger.Error("failed to log verification event", logger.LoggerOptions{
			Key:  "email",
			Data: payload.Email,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	return nil
}
