package middlewares

import (
	"context"
	"os"
	"time"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/interfaces"
	"blinkgate.io/infrastructure/logger"
	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
)

// AdminAuthenticationMiddleware validates the operator bearer token
// against the identity provider's JWKS endpoint.
func AdminAuthenticationMiddleware(ctx *interfaces.ApplicationContext[any], bearerToken string) (*interfaces.ApplicationContext[any], bool) {
	if bearerToken == "" {
		apperrors.AuthenticationError(ctx.Ctx, "admin token missing")
		return nil, false
	}

	options := keyfunc.Options{
		Ctx: context.TODO(),
		RefreshErrorHandler: func(err error) {
			logger.Error("there was an error with the jwt.Keyfunc", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
		},
		RefreshInterval: time.Hour * 6,
	}
	jwks, err := keyfunc.Get(os.Getenv("ADMIN_JWKS_URL"), options)
	if err != nil {
		logger.Error("failed to create JWKS from resource at the given URL", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.AuthenticationError(ctx.Ctx, "admin verification failed")
		return nil, false
	}

	payload, err := jwt.Parse(bearerToken, jwks.Keyfunc)
	if err != nil {
		logger.Error("failed to parse admin token", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.AuthenticationError(ctx.Ctx, "admin verification failed")
		return nil, false
	}
	if !payload.Valid {
		apperrors.AuthenticationError(ctx.Ctx, "admin verification failed")
		return nil, false
	}
	if payload.Header["alg"] != "RS256" {
		logger.Error("invalid admin token algorithm", logger.LoggerOptions{
			Key:  "alg",
			Data: payload.Header["alg"],
		})
		apperrors.AuthenticationError(ctx.Ctx, "admin verification failed")
		return nil, false
	}

	claims := payload.Claims.(jwt.MapClaims)
	subject, _ := claims["sub"].(string)
	ctx.SetContextData("AdminID", subject)
	return ctx, true
}
