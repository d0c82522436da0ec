package dto

import (
	"strings"
	"testing"

	"blinkgate.io/infrastructure/validator"
)

func TestRegisterUserDTOValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload *RegisterUserDTO
		wantErr bool
	}{
		{
			name:    "valid email",
			payload: &RegisterUserDTO{Email: "user@example.com"},
			wantErr: false,
		},
		{
			name:    "missing email",
			payload: &RegisterUserDTO{},
			wantErr: true,
		},
		{
			name:    "not an email",
			payload: &RegisterUserDTO{Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "email over the rfc length cap",
			payload: &RegisterUserDTO{Email: strings.Repeat("a", 250) + "@example.com"},
			wantErr: true,
		},
		{
			name:    "email exactly at the length cap",
			payload: &RegisterUserDTO{Email: strings.Repeat("a", 242) + "@example.com"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidatorInstance.ValidateStruct(tt.payload)
			if tt.wantErr && errs == nil {
				t.Error("expected validation errors but got none")
			}
			if !tt.wantErr && errs != nil {
				t.Errorf("unexpected validation errors: %v", *errs)
			}
		})
	}
}

func TestVerifyEmailDTOValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload *VerifyEmailDTO
		wantErr bool
	}{
		{
			name: "valid payload",
			payload: &VerifyEmailDTO{
				Email: "user@example.com",
				Token: strings.Repeat("a", 43),
			},
			wantErr: false,
		},
		{
			name:    "missing token",
			payload: &VerifyEmailDTO{Email: "user@example.com"},
			wantErr: true,
		},
		{
			name: "token too long",
			payload: &VerifyEmailDTO{
				Email: "user@example.com",
				Token: strings.Repeat("a", 65),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidatorInstance.ValidateStruct(tt.payload)
			if tt.wantErr && errs == nil {
				t.Error("expected validation errors but got none")
			}
			if !tt.wantErr && errs != nil {
				t.Errorf("unexpected validation errors: %v", *errs)
			}
		})
	}
}
