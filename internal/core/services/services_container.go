package services

import (
	portsrepo "github.com/mindnote-app/mindnote_backend/internal/core/ports/repositories"
	portssvc "github.com/mindnote-app/mindnote_backend/internal/core/ports/services"
	"github.com/mindnote-app/mindnote_backend/internal/platform/config"
)

// NewServiceContainer wires all services against the repository
// provider and returns the container handed to the handler layer.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	entrySvc := NewEntryService(repos.EntryRepo, WithDemoTagWriter(repos.TagRepo))

	return &portssvc.ServiceContainer{
		EntrySvc:      entrySvc,
		TagSvc:        NewTagService(repos.TagRepo, repos.EntryRepo),
		StatsSvc:      NewStatsService(repos.EntryRepo),
		UserSvc:       NewUserService(repos.UserRepo),
		TokenSvc:      NewTokenService(repos.UserRepo, cfg),
		GoogleAuthSvc: NewGoogleAuthService(repos.UserRepo, cfg),
	}
}
