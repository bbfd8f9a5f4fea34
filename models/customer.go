package models

import "time"

// Customer is a water-service subscriber identified externally by ClientID.
type Customer struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerInput is used for creating customers.
type CustomerInput struct {
	ClientID string  `json:"clientId" yaml:"clientId" validate:"required"`
	Name     string  `json:"name" yaml:"name" validate:"required"`
	Address  string  `json:"address" yaml:"address" validate:"required"`
	Phone    *string `json:"phone" yaml:"phone"`
	Email    *string `json:"email" yaml:"email" validate:"omitempty,email"`
}

func (c *CustomerInput) Validate() string {
	return validationMessage(validate.Struct(c))
}

// CustomerPatch is a partial update. ClientID is immutable and therefore absent.
type CustomerPatch struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Address *string `json:"address" validate:"omitempty,min=1"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

func (c *CustomerPatch) Validate() string {
	return validationMessage(validate.Struct(c))
}
