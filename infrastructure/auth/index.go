package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"

	"github.com/golang-jwt/jwt"
)

// GenerateVerificationToken mints the opaque token mailed to the user.
func GenerateVerificationToken() (*string, error) {
	buffer := make([]byte, 32)
	_, err := rand.Read(buffer)
	if err != nil {
		return nil, err
	}
	token := base64.RawURLEncoding.EncodeToString(buffer)
	return &token, nil
}

// SafeTokenCompare compares two tokens in constant time.
func SafeTokenCompare(tokenA string, tokenB string) bool {
	if tokenA == "" || tokenB == "" {
		return false
	}
	return hmac.Equal([]byte(tokenA), []byte(tokenB))
}

// GenerateCameraSessionToken issues the short-lived token the browser
// presents on every frame submission.
func GenerateCameraSessionToken(claimsData ClaimsData) (*string, error) {
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":               os.Getenv("JWT_ISSUER"),
		"email":             claimsData.Email,
		"verificationToken": claimsData.VerificationToken,
		"userAgent":         claimsData.UserAgent,
		"iat":               claimsData.IssuedAt,
		"exp":               claimsData.ExpiresAt,
	}).SignedString([]byte(os.Getenv("JWT_SIGNING_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func DecodeAuthToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SIGNING_KEY")), nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}
