package middlewares

import (
	"errors"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/interfaces"
)

// UserAgentMiddleware rejects requests with no user agent. The agent
// is kept on the context for verification event logging.
func UserAgentMiddleware(ctx *interfaces.ApplicationContext[any], clientIP string) (*interfaces.ApplicationContext[any], bool) {
	agent := ctx.GetHeader("User-Agent")
	if agent == nil {
		apperrors.ClientError(ctx.Ctx, "user agent header missing", []error{errors.New("user agent header missing")}, nil)
		return nil, false
	}
	ctx.UserAgent = *agent
	ctx.ClientIP = clientIP
	return ctx, true
}
