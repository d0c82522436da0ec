package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/constants"
	"blinkgate.io/application/controller/dto"
	"blinkgate.io/application/interfaces"
	"blinkgate.io/application/liveness"
	"blinkgate.io/application/repository"
	"blinkgate.io/entities"
	"blinkgate.io/infrastructure/database/repository/cache"
	"blinkgate.io/infrastructure/logger"
	messagequeue "blinkgate.io/infrastructure/message_queue"
	queue_tasks "blinkgate.io/infrastructure/message_queue/tasks"
	mq_types "blinkgate.io/infrastructure/message_queue/types"
	server_response "blinkgate.io/infrastructure/serverResponse"
	"blinkgate.io/infrastructure/validator"
)

// ProcessFrame runs one camera frame through the verification engine.
// The engine owns session state and never persists anything itself, so
// terminal verdicts are written back to the user record and logged
// from here.
func ProcessFrame(ctx *interfaces.ApplicationContext[dto.ProcessFrameDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	email := ctx.GetStringContextData("Email")
	token := ctx.GetStringContextData("VerificationToken")

	verdict := liveness.VerificationEngine.ProcessFrame(email, token, ctx.Body.Image)

	var responseCode *uint
	switch verdict.State {
	case liveness.StateVerified:
		recordTerminalVerdict(email, entities.StatusVerified, verdict, ctx.ClientIP, ctx.UserAgent)
	case liveness.StateFailed:
		recordTerminalVerdict(email, entities.StatusFailed, verdict, ctx.ClientIP, ctx.UserAgent)
		if verdict.Message == liveness.TimedOutMessage {
			responseCode = &constants.LIVENESS_SESSION_EXPIRED
		}
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, verdict.Message, verdict, nil, responseCode)
}

// FetchVerificationResult reports the outcome of the caller's latest
// attempt. Terminal verdicts are cached briefly so the result page
// does not hit the datastore on every poll.
func FetchVerificationResult(ctx *interfaces.ApplicationContext[any]) {
	email := ctx.GetStringContextData("Email")

	cached := cache.Cache.FindOne(fmt.Sprintf("%s-verification-result", email))
	if cached != nil {
		server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "verification result retrieved", map[string]any{
			"email":  email,
			"status": *cached,
		}, nil, nil)
		return
	}

	account, err := repository.UserRepo().FindOneByFilter(map[string]any{
		"email": email,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if account == nil {
		apperrors.NotFoundError(ctx.Ctx, "Email is not registered. Please register first.")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "verification result retrieved", map[string]any{
		"email":  email,
		"status": account.Status,
	}, nil, nil)
}

func recordTerminalVerdict(email string, status entities.VerificationStatus, verdict liveness.Verdict, clientIP string, userAgent string) {
	_, err := repository.UserRepo().UpdatePartialByFilter(map[string]any{
		"email": email,
	}, map[string]any{
		"status": status,
	})
	if err != nil {
		logger.Error("could not persist terminal verification status", logger.LoggerOptions{
			Key:  "email",
			Data: email,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}

	eventPayload, err := json.Marshal(queue_tasks.VerificationEventPayload{
		Email:          email,
		Status:         status,
		Reason:         verdict.Message,
		OpenCaptured:   verdict.OpenCaptured,
		ClosedCaptured: verdict.ClosedCaptured,
		IPAddress:      clientIP,
		UserAgent:      userAgent,
	})
	if err != nil {
		logger.Error("could not marshal verification event payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Payload:   eventPayload,
		Name:      queue_tasks.HandleVerificationEventTaskName,
		Priority:  mq_types.Medium,
		ProcessIn: 1,
	})

	cache.Cache.CreateEntry(fmt.Sprintf("%s-verification-result", email), string(status), time.Hour*24)
}
