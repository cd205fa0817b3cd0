package services

import (
	portsrepo "github.com/brightbooks/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/brightbooks/bb_backend/internal/core/ports/services"
)

// NewServiceContainer wires the service layer over the repository provider.
// The journal engine gets the audit-recording lifecycle hooks.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	hooks := NewAuditHooks(repos.AuditRepo)
	return &portssvc.ServiceContainer{
		Journal: NewJournalService(repos.JournalRepo, repos.AccountRepo, hooks),
		Account: NewAccountService(repos.AccountRepo),
		Audit:   NewAuditService(repos.AuditRepo, repos.JournalRepo),
	}
}
