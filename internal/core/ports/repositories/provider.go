package repositories

// RepositoryProvider bundles every repository the service layer needs. It is
// constructed once at composition time by the storage adapter.
type RepositoryProvider struct {
	RateRepo        RateRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	MemberRepo      MemberRepositoryFacade
	ExchangeRepo    ExchangeRepositoryFacade
	ReportingRepo   ReportingRepository
}
