package services

import (
	"context"

	"github.com/credistore/credistore_backend/internal/core/domain"
	"github.com/credistore/credistore_backend/internal/dto"
)

// CustomerSvcFacade exposes customer management. Deleting a customer does not
// cascade into existing debts; those keep their embedded snapshot.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerUUID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerUUID string) error
}
