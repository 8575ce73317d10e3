package dto

import "time"

// CreateFeedbackRequest registro de feedback desde la ficha del cliente.
type CreateFeedbackRequest struct {
	ClientID           int        `json:"client_id"`
	OrderID            int        `json:"order_id"`
	ProductID          int        `json:"product_id"`
	Satisfaction       string     `json:"satisfaction"` // positivo | neutro | negativo
	PerceivedDuration  string     `json:"perceived_duration"`
	PerceivedIntensity string     `json:"perceived_intensity"`
	WouldRepurchase    bool       `json:"would_repurchase"`
	Comment            string     `json:"comment"`
	Date               *time.Time `json:"date"`
}

// UpdateFeedbackRequest campos opcionales a actualizar.
type UpdateFeedbackRequest struct {
	Satisfaction       *string `json:"satisfaction"`
	PerceivedDuration  *string `json:"perceived_duration"`
	PerceivedIntensity *string `json:"perceived_intensity"`
	WouldRepurchase    *bool   `json:"would_repurchase"`
	Comment            *string `json:"comment"`
}

// FeedbackResponse salida de un feedback.
type FeedbackResponse struct {
	ID                 int       `json:"id"`
	ClientID           int       `json:"client_id"`
	OrderID            int       `json:"order_id"`
	ProductID          int       `json:"product_id"`
	Satisfaction       string    `json:"satisfaction"`
	PerceivedDuration  string    `json:"perceived_duration,omitempty"`
	PerceivedIntensity string    `json:"perceived_intensity,omitempty"`
	WouldRepurchase    bool      `json:"would_repurchase"`
	Comment            string    `json:"comment,omitempty"`
	Date               time.Time `json:"date"`
}
