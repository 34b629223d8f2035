package pgsql

import (
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:        NewPgxRateRepository(dbPool),
		TransactionRepo: NewPgxTransactionRepository(dbPool),
		CategoryRepo:    NewPgxCategoryRepository(dbPool),
		MemberRepo:      NewPgxMemberRepository(dbPool),
		ExchangeRepo:    NewPgxExchangeRepository(dbPool),
		ReportingRepo:   NewPgxReportingRepository(dbPool),
	}
}
