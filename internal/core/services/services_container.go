package services

import (
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/platform/config"
)

// NewServiceContainer wires all services from the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Rate:        NewRateService(repos.RateRepo, cfg.BaseCurrency),
		Summary:     NewSummaryService(repos.TransactionRepo, repos.ExchangeRepo, repos.RateRepo, cfg.BaseCurrency),
		Exchange:    NewExchangeService(repos.ExchangeRepo, repos.RateRepo, cfg.BaseCurrency),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, cfg.BaseCurrency),
		Category:    NewCategoryService(repos.CategoryRepo),
		Member:      NewMemberService(repos.MemberRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
	}
}
