package middlewares

import (
	"os"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/interfaces"
	"blinkgate.io/infrastructure/auth"
	"blinkgate.io/infrastructure/logger"
	"github.com/golang-jwt/jwt"
)

// UserAuthenticationMiddleware validates the camera session token the
// browser received after email verification. The token's claims carry
// the identity and verification token the engine keys sessions by.
func UserAuthenticationMiddleware(ctx *interfaces.ApplicationContext[any], authToken string) (*interfaces.ApplicationContext[any], bool) {
	if authToken == "" {
		apperrors.AuthenticationError(ctx.Ctx, "Verification session expired. Please verify again.")
		return nil, false
	}

	validToken, err := auth.DecodeAuthToken(authToken)
	if err != nil {
		apperrors.AuthenticationError(ctx.Ctx, "Verification session expired. Please verify again.")
		return nil, false
	}
	if !validToken.Valid {
		apperrors.AuthenticationError(ctx.Ctx, "Invalid verification token.")
		return nil, false
	}

	claims := validToken.Claims.(jwt.MapClaims)
	if claims["iss"] != os.Getenv("JWT_ISSUER") {
		logger.Warning("camera session token with unexpected issuer", logger.LoggerOptions{
			Key:  "issuer",
			Data: claims["iss"],
		})
		apperrors.AuthenticationError(ctx.Ctx, "Invalid verification token.")
		return nil, false
	}

	email, _ := claims["email"].(string)
	verificationToken, _ := claims["verificationToken"].(string)
	if email == "" || verificationToken == "" {
		apperrors.AuthenticationError(ctx.Ctx, "Invalid verification token.")
		return nil, false
	}

	ctx.SetContextData("Email", email)
	ctx.SetContextData("VerificationToken", verificationToken)
	ctx.SetContextData("UserAgent", claims["userAgent"])
	return ctx, true
}
