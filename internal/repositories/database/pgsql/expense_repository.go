package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	"github.com/SscSPs/sme_tax_estimator/internal/models"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/mapping"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	expenseColumns = `expense_id, business_id, amount, expense_type, flow_type, category, tax_category,
	description, expense_date, created_at, created_by, last_updated_at, last_updated_by`
	defaultExpensePageSize = 50
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.BusinessID,
		&m.Amount,
		&m.ExpenseType,
		&m.FlowType,
		&m.Category,
		&m.TaxCategory,
		&m.Description,
		&m.ExpenseDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        INSERT INTO expenses (expense_id, business_id, amount, expense_type, flow_type, category, tax_category,
                              description, expense_date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.BusinessID, m.Amount, m.ExpenseType, m.FlowType, m.Category, m.TaxCategory,
		m.Description, m.ExpenseDate, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, businessID, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE business_id = $1 AND expense_id = $2;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, businessID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// ListExpenses pages through a business's expenses newest first, keyed on
// (expense_date, created_at, expense_id) so the order is total.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, businessID string, period domain.Period, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = defaultExpensePageSize
	}
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE business_id = $1 AND expense_date BETWEEN $2 AND $3`
	args := []any{businessID, period.From, period.To}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		query += ` AND (expense_date, created_at, expense_id) < ($4, $5, $6)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	query += ` ORDER BY expense_date DESC, created_at DESC, expense_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	ms, err := queryExpenses(ctx, r.Pool, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.ExpenseDate, CreatedAt: last.CreatedAt, ID: last.ExpenseID})
		next = &token
		ms = ms[:limit]
	}
	return mapping.ToDomainExpenseSlice(ms), next, nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, businessID, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE business_id = $1 AND expense_id = $2;`, businessID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}

func queryExpenses(ctx context.Context, q querier, query string, args ...any) ([]models.Expense, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query expenses", err)
	}
	defer rows.Close()

	ms := []models.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan expense row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating expense rows", err)
	}
	return ms, nil
}
