package handler

import (
	"time"

	"github.com/minoq/storefront/internal/core/ports"
)

// Request/response types owned by the transport layer. Form-level field
// validation (the exact per-field messages) lives in the service, so these
// carry no validate tags for the product fields.

type addProductRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	ImageURL string `json:"image_url"`
}

// updateProductRequest is a partial update: absent fields stay untouched.
type updateProductRequest struct {
	Name     *string `json:"name"`
	Price    *string `json:"price"`
	ImageURL *string `json:"image_url"`
}

type listProductsResponse struct {
	Products         []ports.ProductView `json:"products"`
	FallbackImageURL string              `json:"fallback_image_url"`
}

type accessRequest struct {
	Code string `json:"code" validate:"required"`
}

type accessResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type noteResponse struct {
	Note string `json:"note"`
}

type noteRequest struct {
	Note string `json:"note"`
}

type linkResponse struct {
	Link string `json:"link"`
}
