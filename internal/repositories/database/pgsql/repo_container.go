package pgsql

import (
	portsrepo "github.com/brightbooks/bb_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalRepo: newPgxJournalRepository(dbPool),
		AccountRepo: newPgxAccountRepository(dbPool),
		AuditRepo:   newPgxAuditRepository(dbPool),
	}
}
