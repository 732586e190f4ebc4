package repository

import (
	"context"

	"landlordheaven-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EvidenceFileRepository handles database operations for evidence files
type EvidenceFileRepository struct {
	db *pgxpool.Pool
}

// NewEvidenceFileRepository creates a new evidence file repository
func NewEvidenceFileRepository(db *pgxpool.Pool) *EvidenceFileRepository {
	return &EvidenceFileRepository{db: db}
}

// Create creates a new evidence file record
func (r *EvidenceFileRepository) Create(ctx context.Context, file *models.EvidenceFile) error {
	query := `
		INSERT INTO evidence_files (
			case_id, user_id, filename, mime_type, size, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		file.CaseID,
		file.UserID,
		file.Filename,
		file.MimeType,
		file.Size,
		file.StoragePath,
	).Scan(&file.ID, &file.CreatedAt)

	return err
}

// GetByID retrieves an evidence file by ID
func (r *EvidenceFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EvidenceFile, error) {
	file := &models.EvidenceFile{}
	query := `
		SELECT id, case_id, user_id, filename, mime_type, size, storage_path, created_at
		FROM evidence_files
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.CaseID,
		&file.UserID,
		&file.Filename,
		&file.MimeType,
		&file.Size,
		&file.StoragePath,
		&file.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return file, nil
}

// ListByCaseID retrieves all evidence files for a case
func (r *EvidenceFileRepository) ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.EvidenceFile, error) {
	query := `
		SELECT id, case_id, user_id, filename, mime_type, size, storage_path, created_at
		FROM evidence_files
		WHERE case_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.EvidenceFile
	for rows.Next() {
		file := &models.EvidenceFile{}
		err := rows.Scan(
			&file.ID,
			&file.CaseID,
			&file.UserID,
			&file.Filename,
			&file.MimeType,
			&file.Size,
			&file.StoragePath,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}

// Delete deletes an evidence file record
func (r *EvidenceFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM evidence_files WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
