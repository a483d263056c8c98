package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/customer"
)

type customerResponse struct {
	ID          uuid.UUID `json:"id"`
	ReferenceID string    `json:"reference_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	GSTIN       string    `json:"gstin,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:          c.ID,
		ReferenceID: c.ReferenceID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		GSTIN:       c.GSTIN,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toResponseList(cs []*customer.Customer) []customerResponse {
	resp := make([]customerResponse, len(cs))
	for i, c := range cs {
		resp[i] = toResponse(c)
	}

	return resp
}
