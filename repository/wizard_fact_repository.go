package repository

import (
	"context"

	"landlordheaven-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WizardFactRepository is the fact store: one fact bag per case
type WizardFactRepository struct {
	db *pgxpool.Pool
}

// NewWizardFactRepository creates a new wizard fact repository
func NewWizardFactRepository(db *pgxpool.Pool) *WizardFactRepository {
	return &WizardFactRepository{db: db}
}

// GetOrCreate is the read-through accessor: it returns the fact bag for a
// case, creating an empty row first if none exists yet
func (r *WizardFactRepository) GetOrCreate(ctx context.Context, caseID uuid.UUID) (models.WizardFacts, error) {
	insert := `
		INSERT INTO wizard_facts (case_id, facts)
		VALUES ($1, '{}'::jsonb)
		ON CONFLICT (case_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, insert, caseID); err != nil {
		return nil, err
	}

	var facts models.WizardFacts
	query := `SELECT facts FROM wizard_facts WHERE case_id = $1`
	if err := r.db.QueryRow(ctx, query, caseID).Scan(&facts); err != nil {
		return nil, err
	}
	if facts == nil {
		facts = make(models.WizardFacts)
	}

	return facts, nil
}

// Save replaces the fact bag for a case
func (r *WizardFactRepository) Save(ctx context.Context, caseID uuid.UUID, facts models.WizardFacts) error {
	query := `
		INSERT INTO wizard_facts (case_id, facts)
		VALUES ($1, $2)
		ON CONFLICT (case_id) DO UPDATE SET
			facts = EXCLUDED.facts,
			updated_at = NOW()`

	_, err := r.db.Exec(ctx, query, caseID, facts)
	return err
}
