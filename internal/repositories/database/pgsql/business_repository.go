package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	"github.com/SscSPs/sme_tax_estimator/internal/models"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const businessColumns = `business_id, owner_id, name, tax_enabled, jurisdiction, incorporation_date,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxBusinessRepository struct {
	BaseRepository
}

func newPgxBusinessRepository(pool *pgxpool.Pool) *PgxBusinessRepository {
	return &PgxBusinessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

func scanBusiness(row pgx.Row) (models.Business, error) {
	var m models.Business
	err := row.Scan(
		&m.BusinessID,
		&m.OwnerID,
		&m.Name,
		&m.TaxEnabled,
		&m.Jurisdiction,
		&m.IncorporationDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	m := mapping.ToModelBusiness(business)
	query := `
        INSERT INTO businesses (business_id, owner_id, name, tax_enabled, jurisdiction, incorporation_date,
                                created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.BusinessID, m.OwnerID, m.Name, m.TaxEnabled, m.Jurisdiction, m.IncorporationDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("business %q already exists for this owner: %w", business.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save business: %w", err)
	}
	return nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1;`
	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID %s: %w", businessID, err)
	}
	d := mapping.ToDomainBusiness(m)
	return &d, nil
}

func (r *PgxBusinessRepository) ListBusinessesByOwner(ctx context.Context, ownerID string) ([]domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE owner_id = $1 ORDER BY created_at DESC, business_id;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	ms := []models.Business{}
	for rows.Next() {
		m, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business rows: %w", err)
	}
	return mapping.ToDomainBusinessSlice(ms), nil
}

func (r *PgxBusinessRepository) UpdateTaxSettings(ctx context.Context, businessID string, settings domain.TaxSettings, updatedBy string, updatedAt time.Time) error {
	m := mapping.ToModelBusiness(domain.Business{BusinessProfile: domain.BusinessProfile{TaxSettings: settings}})
	query := `
        UPDATE businesses
        SET tax_enabled = $1, jurisdiction = $2, incorporation_date = $3, last_updated_at = $4, last_updated_by = $5
        WHERE business_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, m.TaxEnabled, m.Jurisdiction, m.IncorporationDate, updatedAt, updatedBy, businessID)
	if err != nil {
		return fmt.Errorf("failed to update tax settings: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("business %s: %w", businessID, apperrors.ErrNotFound)
	}
	return nil
}
