package repositories

// RepositoryProvider bundles the repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	JournalRepo   JournalRepository
	PeriodRepo    PeriodRepository
	ReportingRepo ReportingRepository
}
