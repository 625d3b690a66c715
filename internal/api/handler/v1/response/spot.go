package response

import "github.com/buenrollo/spots-admin/internal/domain"

type SubmitSpotResponse struct {
	Message string      `json:"message"`
	Spot    domain.Spot `json:"spot"`

	// LogoError reports a rejected attachment on an otherwise successful
	// submission, which then went through without an image field.
	LogoError string `json:"logo_error,omitempty"`
}

type SessionResponse struct {
	Email   string `json:"email"`
	Welcome string `json:"welcome"`
}
