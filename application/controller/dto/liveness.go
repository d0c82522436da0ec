package dto

type ProcessFrameDTO struct {
	Image string `json:"image" validate:"required"`
}

type FetchVerificationEventsDTO struct {
	Limit int64 `json:"limit"`
}
