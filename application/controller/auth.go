package controller

import (
	"net/http"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/constants"
	"blinkgate.io/application/controller/dto"
	"blinkgate.io/application/interfaces"
	user_usecases "blinkgate.io/application/usecases/user"
	server_response "blinkgate.io/infrastructure/serverResponse"
	"blinkgate.io/infrastructure/validator"
)

func RegisterUser(ctx *interfaces.ApplicationContext[dto.RegisterUserDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	alreadyExisted, err := user_usecases.RegisterUserUseCase(ctx.Ctx, ctx.Body, ctx.UserAgent)
	if err != nil {
		return
	}
	if alreadyExisted {
		server_response.Responder.Respond(ctx.Ctx, http.StatusOK,
			"Email already registered. Fresh verification link sent. Open it from your inbox.", nil, nil, &constants.ACCOUNT_EXISTS_UNVERIFIED)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated,
		"Verification email sent. Open the link from your inbox to continue.", nil, nil, &constants.ACCOUNT_CREATED)
}

func ResendVerification(ctx *interfaces.ApplicationContext[dto.ResendVerificationDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	if err := user_usecases.ResendVerificationUseCase(ctx.Ctx, ctx.Body, ctx.UserAgent); err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK,
		"New verification email sent. Open the link from your inbox.", nil, nil, nil)
}

func VerifyEmail(ctx *interfaces.ApplicationContext[dto.VerifyEmailDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	sessionToken, err := user_usecases.VerifyEmailTokenUseCase(ctx.Ctx, ctx.Body, ctx.UserAgent)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "Email verified. You can start the blink check now.", map[string]any{
		"sessionToken":           sessionToken,
		"frameCaptureIntervalMS": constants.FRAME_CAPTURE_INTERVAL_MS,
	}, nil, nil)
}
