package services

// ServiceContainer bundles the core services for dependency injection into
// the transport layer.
type ServiceContainer struct {
	Account   AccountService
	Journal   JournalService
	Period    PeriodService
	Reporting ReportingService
}
