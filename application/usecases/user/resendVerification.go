package user_usecases

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/constants"
	"blinkgate.io/application/controller/dto"
	"blinkgate.io/application/repository"
	"blinkgate.io/infrastructure/auth"
	"blinkgate.io/infrastructure/cryptography"
	"blinkgate.io/infrastructure/database/repository/cache"
)

// ResendVerificationUseCase rotates the verification token for an
// already registered email and mails a fresh link. Resends are
// throttled per address so the mailbox cannot be flooded.
func ResendVerificationUseCase(ctx any, payload *dto.ResendVerificationDTO, userAgent string) error {
	email := strings.ToLower(payload.Email)

	throttled := cache.Cache.FindOne(fmt.Sprintf("%s-resend-throttle", email))
	if throttled != nil {
		apperrors.ClientError(ctx, "A verification email was sent recently. Please wait a minute before requesting another.", nil, &constants.RESEND_THROTTLED)
		return errors.New("")
	}

	userRepo := repository.UserRepo()
	account, err := userRepo.FindOneByFilter(map[string]any{
		"email": email,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return err
	}
	if account == nil {
		apperrors.NotFoundError(ctx, "Email is not registered. Please register first.")
		return errors.New("")
	}

	token, err := auth.GenerateVerificationToken()
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return err
	}
	tokenHash, err := cryptography.CryptoHahser.HashString(*token, nil)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return err
	}
	_, err = userRepo.UpdatePartialByFilter(map[string]any{
		"email": email,
	}, map[string]any{
		"verificationTokenHash": string(tokenHash),
		"emailVerified":         false,
		"userAgent":             userAgent,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return err
	}

	queueVerificationEmail(email, *token)
	cache.Cache.CreateEntry(fmt.Sprintf("%s-resend-throttle", email), email, time.Minute*1)
	return nil
}
