package entities

import (
	"time"

	"blinkgate.io/application/utils"
)

type VerificationStatus string

const (
	StatusPending  VerificationStatus = "PENDING"
	StatusVerified VerificationStatus = "VERIFIED"
	StatusFailed   VerificationStatus = "FAILED"
)

// This represents a user registered for blink verification
type User struct {
	Email                 string             `bson:"email" json:"email"`
	VerificationTokenHash string             `bson:"verificationTokenHash" json:"-"`
	EmailVerified         bool               `bson:"emailVerified" json:"emailVerified"`
	Status                VerificationStatus `bson:"status" json:"status"`
	UserAgent             string             `bson:"userAgent" json:"userAgent"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model User) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		model.ID = utils.GenerateUULDString()
	}
	if model.Status == "" {
		model.Status = StatusPending
	}
	model.UpdatedAt = now
	return &model
}
