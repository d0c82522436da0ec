package auth

type ClaimsData struct {
	Email             string
	VerificationToken string
	UserAgent         string
	IssuedAt          int64
	ExpiresAt         int64
}
