package handler

import (
	"time"

	"github.com/fekuna/crpm-service/internal/model"
)

// CustomerFields are the caller-supplied fields of a customer.
type CustomerFields struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	PostalCode  string     `json:"postal_code"`
	Country     string     `json:"country"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

func (f *CustomerFields) toModel(id int64) *model.Customer {
	return &model.Customer{
		ID:          id,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		PhoneNumber: f.PhoneNumber,
		Address:     f.Address,
		City:        f.City,
		State:       f.State,
		PostalCode:  f.PostalCode,
		Country:     f.Country,
		DateOfBirth: f.DateOfBirth,
	}
}

type CreateCustomerRequest struct {
	CustomerFields
}

type CreateCustomerResponse struct {
	ID int64 `json:"id"`
}

type GetCustomerRequest struct {
	ID int64 `json:"id"`
}

type GetCustomerResponse struct {
	Customer *model.Customer `json:"customer"`
}

type ListActiveCustomersRequest struct{}

type ListActiveCustomersResponse struct {
	Customers []*model.Customer `json:"customers"`
}

type UpdateCustomerRequest struct {
	ID int64 `json:"id"`
	CustomerFields
}

type UpdateCustomerResponse struct{}

type DeactivateCustomerRequest struct {
	ID int64 `json:"id"`
}

type DeactivateCustomerResponse struct{}
