package models

// Auth DTOs
type TokenRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"sessionId"`
}

type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}
