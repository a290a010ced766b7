package repositories

// RepositoryProvider holds instances of all repositories, wired once at
// process start and handed to the service container.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
}
