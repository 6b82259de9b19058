package model

import (
	"time"
)

// CustomerStatus is the soft-delete tag of a customer. Inactive customers are
// retained so their purchases stay resolvable.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerInactive CustomerStatus = "Inactive"
)

type Customer struct {
	ID               int64          `db:"customer_id" json:"id"`
	FirstName        string         `db:"first_name" json:"first_name"`
	LastName         string         `db:"last_name" json:"last_name"`
	Email            string         `db:"email" json:"email"`
	PhoneNumber      string         `db:"phone_number" json:"phone_number"`
	Address          string         `db:"address" json:"address"`
	City             string         `db:"city" json:"city"`
	State            string         `db:"state" json:"state"`
	PostalCode       string         `db:"postal_code" json:"postal_code"`
	Country          string         `db:"country" json:"country"`
	DateOfBirth      *time.Time     `db:"date_of_birth" json:"date_of_birth,omitempty"`
	RegistrationDate time.Time      `db:"registration_date" json:"registration_date"`
	Status           CustomerStatus `db:"status" json:"status"`
}

// FullName joins first and last name for display.
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
