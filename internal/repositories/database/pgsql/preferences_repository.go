package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// preferencesRowID is the primary key of the single preferences row.
const preferencesRowID = 1

type PgxPreferencesRepository struct {
	BaseRepository
}

// newPgxPreferencesRepository creates a new repository for system preferences.
func newPgxPreferencesRepository(pool *pgxpool.Pool) portsrepo.PreferencesRepositoryWithTx {
	return &PgxPreferencesRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PreferencesRepositoryWithTx = (*PgxPreferencesRepository)(nil)

// SavePreferences upserts the single preferences row and appends a history entry
// in the same transaction.
func (r *PgxPreferencesRepository) SavePreferences(ctx context.Context, prefs domain.SystemPreferences) error {
	modelPrefs := mapping.ToModelPreferences(prefs)

	upsert := `
		INSERT INTO system_preferences (id, currency_code, locale, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			currency_code = EXCLUDED.currency_code,
			locale = EXCLUDED.locale,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	history := `
		INSERT INTO system_preferences_history (currency_code, locale, changed_at, changed_by)
		VALUES ($1, $2, $3, $4);
	`

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsert,
			preferencesRowID,
			modelPrefs.CurrencyCode,
			modelPrefs.Locale,
			modelPrefs.CreatedAt,
			modelPrefs.CreatedBy,
			modelPrefs.LastUpdatedAt,
			modelPrefs.LastUpdatedBy,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, history,
			modelPrefs.CurrencyCode,
			modelPrefs.Locale,
			modelPrefs.LastUpdatedAt,
			modelPrefs.LastUpdatedBy,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// ListPreferencesHistory returns the most recent changes first.
func (r *PgxPreferencesRepository) ListPreferencesHistory(ctx context.Context, limit int) ([]domain.PreferencesChange, error) {
	query := `
		SELECT currency_code, locale, changed_at, changed_by
		FROM system_preferences_history
		ORDER BY changed_at DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences history: %w", err)
	}

	changes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PreferencesChange])
	if err != nil {
		return nil, fmt.Errorf("failed to scan preferences history: %w", err)
	}
	return mapping.ToDomainPreferencesChangeSlice(changes), nil
}

// FindPreferences reads the single preferences row.
func (r *PgxPreferencesRepository) FindPreferences(ctx context.Context) (*domain.SystemPreferences, error) {
	query := `
		SELECT currency_code, locale, created_at, created_by, last_updated_at, last_updated_by
		FROM system_preferences
		WHERE id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, preferencesRowID)
	if err != nil {
		return nil, fmt.Errorf("failed to find preferences: %w", err)
	}

	modelPrefs, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.SystemPreferences])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preferences: %w", err)
	}

	prefs := mapping.ToDomainPreferences(modelPrefs)
	return &prefs, nil
}
