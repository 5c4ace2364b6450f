package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/dto"
)

// customerService manages credit customers.
type customerService struct {
	BaseService
	store portsrepo.StateStore
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(store portsrepo.StateStore) portssvc.CustomerSvcFacade {
	return &customerService{store: store}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
		UUID:      uuid.NewString(),
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Phone:     req.Phone,
	}

	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		state.Users = append(state.Users, customer)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.UUID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerUUID string) (*domain.Customer, error) {
	state := s.store.Snapshot(ctx)
	c := state.FindCustomer(customerUUID)
	if c == nil {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerUUID)
	}
	return c, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	state := s.store.Snapshot(ctx)
	return state.Users, nil
}

// DeleteCustomer removes the customer. Existing debts keep their embedded
// customer snapshot and are deliberately left untouched.
func (s *customerService) DeleteCustomer(ctx context.Context, customerUUID string) error {
	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		for i := range state.Users {
			if state.Users[i].UUID == customerUUID {
				state.Users = append(state.Users[:i], state.Users[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerUUID)
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerUUID))
	return nil
}
