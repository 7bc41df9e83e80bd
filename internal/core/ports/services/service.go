package services

// ServiceContainer groups all service facades for dependency injection
// into the handler layer.
type ServiceContainer struct {
	EntrySvc      EntrySvcFacade
	TagSvc        TagSvcFacade
	StatsSvc      StatsSvcFacade
	UserSvc       UserSvcFacade
	TokenSvc      TokenSvcFacade
	GoogleAuthSvc GoogleAuthSvcFacade
}
