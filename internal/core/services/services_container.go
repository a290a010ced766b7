package services

import (
	portsrepo "github.com/finpay-app/finpay_backend/internal/core/ports/repositories"
	portssvc "github.com/finpay-app/finpay_backend/internal/core/ports/services"
	"github.com/finpay-app/finpay_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.TransactionRepo)
	container.Token = NewTokenService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade   = (*userService)(nil)
	_ portssvc.LedgerSvcFacade = (*ledgerService)(nil)
	_ portssvc.TokenSvcFacade  = (*tokenService)(nil)
)
