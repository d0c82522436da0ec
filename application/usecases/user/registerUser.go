package user_usecases

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/controller/dto"
	"blinkgate.io/application/repository"
	"blinkgate.io/entities"
	"blinkgate.io/infrastructure/auth"
	"blinkgate.io/infrastructure/cryptography"
	"blinkgate.io/infrastructure/logger"
	messagequeue "blinkgate.io/infrastructure/message_queue"
	queue_tasks "blinkgate.io/infrastructure/message_queue/tasks"
	mq_types "blinkgate.io/infrastructure/message_queue/types"
)

// RegisterUserUseCase registers an email for blink verification.
// Registering an address that already exists rotates its verification
// token instead of failing, so users who lost the first email can just
// register again. Returns whether the account already existed.
func RegisterUserUseCase(ctx any, payload *dto.RegisterUserDTO, userAgent string) (bool, error) {
	email := strings.ToLower(payload.Email)
	userRepo := repository.UserRepo()
	existing, err := userRepo.FindOneByFilter(map[string]any{
		"email": email,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return false, err
	}

	token, err := auth.GenerateVerificationToken()
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return false, err
	}
	tokenHash, err := cryptography.CryptoHahser.HashString(*token, nil)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return false, err
	}

	if existing == nil {
		_, err = userRepo.CreateOne(entities.User{
			Email:                 email,
			VerificationTokenHash: string(tokenHash),
			Status:                entities.StatusPending,
			UserAgent:             userAgent,
		})
	} else {
		_, err = userRepo.UpdatePartialByFilter(map[string]any{
			"email": email,
		}, map[string]any{
			"verificationTokenHash": string(tokenHash),
			"emailVerified":         false,
			"userAgent":             userAgent,
		})
	}
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return false, err
	}

	queueVerificationEmail(email, *token)
	return existing != nil, nil
}

func queueVerificationEmail(email string, token string) {
	emailPayload, err := json.Marshal(queue_tasks.EmailPayload{
		To:       email,
		Subject:  "Verify your email to start your blink check",
		Template: "verification_email",
		Opts: map[string]any{
			"VerificationURL": fmt.Sprintf("%s/verify-email?token=%s&email=%s", os.Getenv("CLIENT_BASE_URL"), token, email),
		},
	})
	if err != nil {
		logger.Error("could not marshal verification email payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Payload:   emailPayload,
		Name:      queue_tasks.HandleEmailDeliveryTaskName,
		Priority:  mq_types.High,
		ProcessIn: 1,
	})
}
