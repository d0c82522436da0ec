package user_usecases

import (
	"errors"
	"strings"
	"time"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/constants"
	"blinkgate.io/application/controller/dto"
	"blinkgate.io/application/repository"
	"blinkgate.io/infrastructure/auth"
	"blinkgate.io/infrastructure/cryptography"
)

// VerifyEmailTokenUseCase checks the mailed token against the stored
// hash and, on success, issues the short-lived camera session token
// the browser presents on every frame.
func VerifyEmailTokenUseCase(ctx any, payload *dto.VerifyEmailDTO, userAgent string) (*string, error) {
	email := strings.ToLower(payload.Email)
	userRepo := repository.UserRepo()
	account, err := userRepo.FindOneByFilter(map[string]any{
		"email": email,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if account == nil || !cryptography.CryptoHahser.VerifyHashData(account.VerificationTokenHash, payload.Token) {
		apperrors.ClientError(ctx, "Invalid or expired verification link.", nil, &constants.VERIFICATION_TOKEN_EXPIRED)
		return nil, errors.New("")
	}

	if !account.EmailVerified {
		_, err = userRepo.UpdatePartialByFilter(map[string]any{
			"email": email,
		}, map[string]any{
			"emailVerified": true,
		})
		if err != nil {
			apperrors.UnknownError(ctx, err, nil)
			return nil, err
		}
	}

	sessionToken, err := auth.GenerateCameraSessionToken(auth.ClaimsData{
		Email:             email,
		VerificationToken: payload.Token,
		UserAgent:         userAgent,
		IssuedAt:          time.Now().Unix(),
		ExpiresAt:         time.Now().Add(time.Minute * 20).Unix(),
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	return sessionToken, nil
}
