package entities

import (
	"time"

	"blinkgate.io/application/utils"
)

// VerificationEvent records the terminal outcome of one liveness
// attempt for admin reporting. Captured artifacts themselves are not
// retained here.
type VerificationEvent struct {
	Email          string             `bson:"email" json:"email"`
	Status         VerificationStatus `bson:"status" json:"status"`
	Reason         string             `bson:"reason" json:"reason"`
	OpenCaptured   bool               `bson:"openCaptured" json:"openCaptured"`
	ClosedCaptured bool               `bson:"closedCaptured" json:"closedCaptured"`
	IPAddress      string             `bson:"ipAddress" json:"ipAddress"`
	City           string             `bson:"city" json:"city"`
	CountryCode    string             `bson:"countryCode" json:"countryCode"`
	Device         string             `bson:"device" json:"device"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model VerificationEvent) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		model.ID = utils.GenerateUULDString()
	}
	model.UpdatedAt = now
	return &model
}
