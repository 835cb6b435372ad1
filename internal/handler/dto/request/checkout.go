package request

import (
	"time"

	"github.com/google/uuid"
)

type StartCheckoutRequest struct {
	CartID     uuid.UUID `json:"cart_id" binding:"required"`
	TTLSeconds int64     `json:"ttl_seconds,omitempty"`
}

func (r StartCheckoutRequest) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

type ExecuteCheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	PaymentToken  string `json:"payment_token" binding:"required"`
}
