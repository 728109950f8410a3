package pgsql

import (
	"context"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAssessmentRepository reads assessment inputs inside one snapshot, so an
// expense recorded mid-assessment cannot be half counted.
type PgxAssessmentRepository struct {
	BaseRepository
}

func newPgxAssessmentRepository(pool *pgxpool.Pool) *PgxAssessmentRepository {
	return &PgxAssessmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssessmentInputReader = (*PgxAssessmentRepository)(nil)

func (r *PgxAssessmentRepository) LoadAssessmentInputs(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueEntry, []domain.Expense, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	revenue, err := queryRevenueEntries(ctx, tx, businessID, period)
	if err != nil {
		return nil, nil, err
	}

	expenses, err := queryExpenses(ctx, tx,
		`SELECT `+expenseColumns+` FROM expenses
		WHERE business_id = $1 AND expense_date BETWEEN $2 AND $3
		ORDER BY expense_date, created_at, expense_id;`,
		businessID, period.From, period.To)
	if err != nil {
		return nil, nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return mapping.ToDomainRevenueEntrySlice(revenue), mapping.ToDomainExpenseSlice(expenses), nil
}
