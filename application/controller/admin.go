package controller

import (
	"net/http"

	apperrors "blinkgate.io/application/appErrors"
	"blinkgate.io/application/controller/dto"
	"blinkgate.io/application/interfaces"
	"blinkgate.io/application/repository"
	"blinkgate.io/application/utils"
	"blinkgate.io/infrastructure/database/repository/mongo"
	server_response "blinkgate.io/infrastructure/serverResponse"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultEventFetchLimit int64 = 100
	maxEventFetchLimit     int64 = 500
)

// FetchVerificationEvents lists terminal verification outcomes for
// operators, newest first.
func FetchVerificationEvents(ctx *interfaces.ApplicationContext[dto.FetchVerificationEventsDTO]) {
	limit := ctx.Body.Limit
	if limit <= 0 {
		limit = defaultEventFetchLimit
	}
	if limit > maxEventFetchLimit {
		limit = maxEventFetchLimit
	}

	var sort interface{} = bson.M{"createdAt": -1}
	events, err := repository.VerificationEventRepo().FindMany(map[string]any{}, &mongo.FindOptions{
		Sort:  &sort,
		Limit: utils.GetInt64Pointer(limit),
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "verification events retrieved", map[string]any{
		"count":  len(events),
		"events": events,
	}, nil, nil)
}
