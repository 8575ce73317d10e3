package dto

import "time"

// CreateClientRequest alta manual de cliente desde el back-office.
type CreateClientRequest struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	InternalNotes string   `json:"internal_notes"`
	Tags          []string `json:"tags"`
}

// UpdateClientRequest campos opcionales a actualizar.
type UpdateClientRequest struct {
	Name          *string  `json:"name"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	InternalNotes *string  `json:"internal_notes"`
	Tags          []string `json:"tags"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	LastPurchase  time.Time `json:"last_purchase"`
	InternalNotes string    `json:"internal_notes,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
}
