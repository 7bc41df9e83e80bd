package repositories

// RepositoryProvider bundles every repository implementation handed to
// the service layer by the composition root.
type RepositoryProvider struct {
	EntryRepo EntryRepositoryWithTx
	TagRepo   TagRepositoryFacade
	UserRepo  UserRepositoryFacade
}
