package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it and pick the facades they need.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Balance     BalanceSvcFacade
	Reporting   ReportingSvc
	Account     AccountSvcFacade
	Period      PeriodSvcFacade
	Category    CategorySvcFacade
}
