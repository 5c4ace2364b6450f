package dto

import "github.com/credistore/credistore_backend/internal/core/domain"

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Phone     string `json:"phone"`
}

// CustomerResponse mirrors domain.Customer on the wire.
type CustomerResponse struct {
	UUID      string `json:"uuid"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		UUID:      c.UUID,
		Firstname: c.Firstname,
		Lastname:  c.Lastname,
		Phone:     c.Phone,
	}
}

// ToListCustomerResponse converts a slice of customers to response DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
