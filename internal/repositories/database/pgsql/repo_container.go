package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mindnote-app/mindnote_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the repository provider backed by the
// given pgx pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		EntryRepo: newPgxEntryRepository(pool),
		TagRepo:   newPgxTagRepository(pool),
		UserRepo:  newPgxUserRepository(pool),
	}
}
