package repository

import (
	"context"

	"landlordheaven-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for generated documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a generated document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (
			case_id, user_id, document_type, document_title, html_content,
			pdf_url, is_preview
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		doc.CaseID,
		doc.UserID,
		doc.DocumentType,
		doc.DocumentTitle,
		doc.HTMLContent,
		doc.PDFURL,
		doc.IsPreview,
	).Scan(&doc.ID, &doc.CreatedAt)

	return err
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, case_id, user_id, document_type, document_title, html_content,
			pdf_url, is_preview, qa_passed, qa_score, created_at
		FROM documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.CaseID,
		&doc.UserID,
		&doc.DocumentType,
		&doc.DocumentTitle,
		&doc.HTMLContent,
		&doc.PDFURL,
		&doc.IsPreview,
		&doc.QAPassed,
		&doc.QAScore,
		&doc.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ListByCaseID retrieves all documents for a case, newest first
func (r *DocumentRepository) ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.Document, error) {
	query := `
		SELECT id, case_id, user_id, document_type, document_title, html_content,
			pdf_url, is_preview, qa_passed, qa_score, created_at
		FROM documents
		WHERE case_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.CaseID,
			&doc.UserID,
			&doc.DocumentType,
			&doc.DocumentTitle,
			&doc.HTMLContent,
			&doc.PDFURL,
			&doc.IsPreview,
			&doc.QAPassed,
			&doc.QAScore,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// UpdateQA sets the QA review fields. The only mutation a document row ever
// receives after insert.
func (r *DocumentRepository) UpdateQA(ctx context.Context, id uuid.UUID, passed bool, score int) error {
	query := `
		UPDATE documents SET
			qa_passed = $2,
			qa_score = $3
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, passed, score)
	return err
}
