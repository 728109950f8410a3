package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	"github.com/SscSPs/sme_tax_estimator/internal/models"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const revenueColumns = `entry_id, business_id, amount, flow_type, description, entry_date,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxRevenueRepository struct {
	BaseRepository
}

func newPgxRevenueRepository(pool *pgxpool.Pool) *PgxRevenueRepository {
	return &PgxRevenueRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RevenueRepositoryFacade = (*PgxRevenueRepository)(nil)

func (r *PgxRevenueRepository) SaveRevenueEntry(ctx context.Context, entry domain.RevenueEntry) error {
	m := mapping.ToModelRevenueEntry(entry)
	query := `
        INSERT INTO revenue_entries (entry_id, business_id, amount, flow_type, description, entry_date,
                                     created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.BusinessID, m.Amount, m.FlowType, m.Description, m.EntryDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save revenue entry: %w", err)
	}
	return nil
}

func (r *PgxRevenueRepository) ListRevenueEntries(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueEntry, error) {
	ms, err := queryRevenueEntries(ctx, r.Pool, businessID, period)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainRevenueEntrySlice(ms), nil
}

func queryRevenueEntries(ctx context.Context, q querier, businessID string, period domain.Period) ([]models.RevenueEntry, error) {
	query := `SELECT ` + revenueColumns + ` FROM revenue_entries
		WHERE business_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date, created_at, entry_id;`
	rows, err := q.Query(ctx, query, businessID, period.From, period.To)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query revenue entries", err)
	}
	defer rows.Close()

	ms := []models.RevenueEntry{}
	for rows.Next() {
		var m models.RevenueEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.BusinessID,
			&m.Amount,
			&m.FlowType,
			&m.Description,
			&m.EntryDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan revenue row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating revenue rows", err)
	}
	return ms, nil
}
