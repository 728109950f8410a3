package pgsql

import (
	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		BusinessRepo:   newPgxBusinessRepository(dbPool),
		ExpenseRepo:    newPgxExpenseRepository(dbPool),
		RevenueRepo:    newPgxRevenueRepository(dbPool),
		AssessmentRepo: newPgxAssessmentRepository(dbPool),
	}
}
