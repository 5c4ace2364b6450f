package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/core/services"
)

type DebtSuite struct {
	suite.Suite
	store   portsrepo.StateStore
	service portssvc.DebtSvcFacade
}

func TestDebtService(t *testing.T) {
	suite.Run(t, new(DebtSuite))
}

func (s *DebtSuite) SetupTest() {
	s.store = newTestStore(s.T())
	s.service = services.NewDebtService(s.store)

	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	seedState(s.T(), s.store, func(state *domain.StoreState) {
		active := domain.Debt{
			UUID:      "debt-1",
			User:      domain.Customer{UUID: "cust-1", Firstname: "Maria", Lastname: "Lopez"},
			Amount:    decimal.NewFromInt(100),
			Status:    domain.DebtActive,
			DatePay:   "2026-09-15",
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		paid := domain.Debt{
			UUID:      "debt-2",
			User:      domain.Customer{UUID: "cust-2", Firstname: "Juan", Lastname: "Perez"},
			Amount:    decimal.NewFromInt(250),
			Status:    domain.DebtPaid,
			DatePay:   "2026-08-10",
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		state.Debts = append(state.Debts, active, paid)
		state.CurrentDayDebts = append(state.CurrentDayDebts, active)
	})
}

func (s *DebtSuite) TestListDebts() {
	all, err := s.service.ListDebts(context.Background(), nil)
	s.Require().NoError(err)
	s.Len(all, 2)

	active := domain.DebtActive
	filtered, err := s.service.ListDebts(context.Background(), &active)
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal("debt-1", filtered[0].UUID)

	settled := domain.DebtSettled
	none, err := s.service.ListDebts(context.Background(), &settled)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *DebtSuite) TestGetDebtByID() {
	debt, err := s.service.GetDebtByID(context.Background(), "debt-2")
	s.Require().NoError(err)
	s.Equal(domain.DebtPaid, debt.Status)

	_, err = s.service.GetDebtByID(context.Background(), "debt-ghost")
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *DebtSuite) TestUpdateDebtStatusChangesOnlyStatusAndTimestamp() {
	before, err := s.service.GetDebtByID(context.Background(), "debt-1")
	s.Require().NoError(err)

	updated, err := s.service.UpdateDebtStatus(context.Background(), "debt-1", domain.DebtPaid)
	s.Require().NoError(err)

	s.Equal(domain.DebtPaid, updated.Status)
	s.True(updated.UpdatedAt.After(before.UpdatedAt))
	// Everything else is untouched.
	s.Equal(before.UUID, updated.UUID)
	s.True(updated.Amount.Equal(before.Amount))
	s.Equal(before.DatePay, updated.DatePay)
	s.Equal(before.CreatedAt, updated.CreatedAt)
	s.Equal(before.User, updated.User)
}

func (s *DebtSuite) TestUpdateDebtStatusSyncsWorkingSet() {
	_, err := s.service.UpdateDebtStatus(context.Background(), "debt-1", domain.DebtPaid)
	s.Require().NoError(err)

	state := s.store.Snapshot(context.Background())
	s.Require().Len(state.CurrentDayDebts, 1)
	s.Equal(domain.DebtPaid, state.CurrentDayDebts[0].Status)
}

func (s *DebtSuite) TestUpdateDebtStatusRejectsUnknownStatus() {
	_, err := s.service.UpdateDebtStatus(context.Background(), "debt-1", domain.DebtStatus("cancelled"))
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *DebtSuite) TestUpdateDebtStatusNotFound() {
	_, err := s.service.UpdateDebtStatus(context.Background(), "debt-ghost", domain.DebtPaid)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}
