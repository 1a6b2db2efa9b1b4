package unitofwork

import "context"

// RepositoryFactory creates a fresh unit of work per request scope.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
