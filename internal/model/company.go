package model

import "time"

// GlobalCompany is a company shared across operations.
type GlobalCompany struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	TaxNumber *string   `json:"taxNumber"`
	Contact   *string   `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
