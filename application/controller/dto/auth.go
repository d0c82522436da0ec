package dto

type RegisterUserDTO struct {
	Email string `json:"email" validate:"required,email,email_max_len"`
}

type ResendVerificationDTO struct {
	Email string `json:"email" validate:"required,email,email_max_len"`
}

type VerifyEmailDTO struct {
	Email string `json:"email" validate:"required,email,email_max_len"`
	Token string `json:"token" validate:"required,max=64"`
}
