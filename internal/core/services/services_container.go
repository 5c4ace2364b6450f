package services

import (
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. Every service shares the one entity store.
func NewServiceContainer(cfg *config.Config, store portsrepo.StateStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(store)
	container.Customer = NewCustomerService(store)
	container.Checkout = NewCheckoutService(store,
		WithNegativeStockPolicy(cfg.AllowNegativeStock),
	)
	container.Debt = NewDebtService(store)
	container.Reporting = NewReportingService(store)
	container.Backup = NewBackupService(store)
	container.Auth = NewAuthService(cfg)

	return container
}
