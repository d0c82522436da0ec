package repository

import (
	"sync"

	"blinkgate.io/entities"
	"blinkgate.io/infrastructure/database/connection/datastore"
	"blinkgate.io/infrastructure/database/repository/mongo"
)

var verificationEventOnce = sync.Once{}

var verificationEventRepository mongo.MongoRepository[entities.VerificationEvent]

func VerificationEventRepo() *mongo.MongoRepository[entities.VerificationEvent] {
	verificationEventOnce.Do(func() {
		verificationEventRepository = mongo.MongoRepository[entities.VerificationEvent]{Model: datastore.VerificationEventModel}
	})
	return &verificationEventRepository
}
