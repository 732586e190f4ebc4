package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"landlordheaven-backend/compliance"
	"landlordheaven-backend/generator"
	"landlordheaven-backend/mapper"
	"landlordheaven-backend/models"

	"github.com/google/uuid"
)

// Stores the orchestrator reads and writes. The concrete repository types
// satisfy these; tests supply fakes.
type CaseStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error)
}

type FactStore interface {
	GetOrCreate(ctx context.Context, caseID uuid.UUID) (models.WizardFacts, error)
}

type DocumentStore interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.Document, error)
	UpdateQA(ctx context.Context, id uuid.UUID, passed bool, score int) error
}

// ArtifactStore uploads rendered artifacts and returns a public URL
type ArtifactStore interface {
	Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
}

var (
	ErrCaseNotFound            = errors.New("case not found")
	ErrUnsupportedDocumentType = errors.New("unsupported document type")
	ErrJurisdictionMismatch    = errors.New("document type is not available for the case jurisdiction")
	ErrGenerationFailed        = errors.New("document generation failed")
	ErrUploadFailed            = errors.New("artifact upload failed")
	ErrSaveFailed              = errors.New("failed to save document record")
)

// Compliance error codes surfaced to the client as HTTP 422
const (
	CodeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
	CodeASTNotSuitable        = "AST_NOT_SUITABLE"
)

// ComplianceError carries the blocking field identifiers (or unsuitability
// reasons) of a refused generation
type ComplianceError struct {
	Code    string
	Missing []string
}

func (e *ComplianceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.Missing, ", "))
}

// DocumentService orchestrates document generation: load facts, map,
// validate, render, upload, persist. A document row is never written while a
// blocking compliance issue is outstanding.
type DocumentService struct {
	caseStore     CaseStore
	factStore     FactStore
	documentStore DocumentStore
	artifactStore ArtifactStore
	pdfRenderer   generator.PDFRenderer
	qaReviewer    *QAService
	now           func() time.Time
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// WithCaseStore sets the case store
func WithCaseStore(s CaseStore) DocumentServiceOption {
	return func(svc *DocumentService) {
		svc.caseStore = s
	}
}

// WithFactStore sets the wizard fact store
func WithFactStore(s FactStore) DocumentServiceOption {
	return func(svc *DocumentService) {
		svc.factStore = s
	}
}

// WithDocumentStore sets the document record store
func WithDocumentStore(s DocumentStore) DocumentServiceOption {
	return func(svc *DocumentService) {
		svc.documentStore = s
	}
}

// WithArtifactStore sets the artifact store
func WithArtifactStore(s ArtifactStore) DocumentServiceOption {
	return func(svc *DocumentService) {
		svc.artifactStore = s
	}
}

// WithPDFRenderer sets the optional PDF renderer
func WithPDFRenderer(r generator.PDFRenderer) DocumentServiceOption {
	return func(svc *DocumentService) {
		svc.pdfRenderer = r
	}
}

// WithQAReviewer sets the optional background QA reviewer
func WithQAReviewer(q *QAService) DocumentServiceOption {
	return func(svc *DocumentService) {
		svc.qaReviewer = q
	}
}

// WithClock overrides the time source (tests)
func WithClock(now func() time.Time) DocumentServiceOption {
	return func(svc *DocumentService) {
		svc.now = now
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	svc := &DocumentService{now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// GenerateDocumentRequest represents a request to generate a document
type GenerateDocumentRequest struct {
	CaseID       uuid.UUID
	DocumentType models.DocumentType
	IsPreview    bool
	User         *models.User // nil for anonymous preview requests
}

// GenerateDocumentResult represents a successful generation
type GenerateDocumentResult struct {
	Document *models.Document
	Warnings []models.ComplianceIssue
}

// GenerateDocument runs the full generation sequence. Terminal on the first
// failing step; no partial state is left behind (an uploaded artifact whose
// record insert then fails is an accepted orphan, not rolled back).
func (s *DocumentService) GenerateDocument(ctx context.Context, req GenerateDocumentRequest) (*GenerateDocumentResult, error) {
	if s.caseStore == nil {
		return nil, errors.New("case store not set")
	}
	if s.documentStore == nil {
		return nil, errors.New("document store not set")
	}

	// 1. Resolve the document type against the registry
	def, ok := generator.Lookup(req.DocumentType)
	if !ok {
		return nil, ErrUnsupportedDocumentType
	}

	// 2. Load the case
	kase, err := s.caseStore.GetByID(ctx, req.CaseID)
	if err != nil {
		return nil, ErrCaseNotFound
	}

	// 3. Jurisdiction/document-type cross-check
	if !def.AllowedIn(kase.Jurisdiction) {
		return nil, ErrJurisdictionMismatch
	}

	// 4. Load wizard facts; fall back to the collected_facts snapshot when
	// the fact store is empty. The fallback tolerates partially-migrated
	// cases and must be preserved.
	facts := s.loadFacts(ctx, kase)

	// 5. Map facts into the document family's case data shape
	data := def.Map(kase.ID.String(), facts)

	// 6. Suitability gate (AST family only)
	if def.Suitability != nil {
		if result := def.Suitability(data); !result.Valid {
			return nil, &ComplianceError{Code: CodeASTNotSuitable, Missing: result.Reasons}
		}
	}

	// 7. Compliance validation; blocking issues refuse generation
	issues := def.Issues(data)
	if kase.CaseType == models.CaseTypeMoneyClaim {
		if ed, ok := data.(*mapper.EvictionCaseData); ok {
			issues = append(issues, compliance.PreActionIssues(ed, s.now())...)
		}
	}
	if blocking := models.BlockingFields(issues); len(blocking) > 0 {
		return nil, &ComplianceError{Code: CodeMissingRequiredFields, Missing: blocking}
	}
	warnings := warningsOnly(issues)

	// 8. Render
	artifact, err := s.render(ctx, def, data, req.IsPreview)
	if err != nil {
		log.Printf("Document generation failed for case %s type %s: %v", kase.ID, req.DocumentType, err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	// 9. Upload the PDF artifact, if one was produced
	var pdfURL *string
	if len(artifact.PDF) > 0 {
		if s.artifactStore == nil {
			return nil, fmt.Errorf("%w: no artifact store configured", ErrUploadFailed)
		}
		key := s.artifactKey(req, kase)
		url, err := s.artifactStore.Upload(ctx, key, bytes.NewReader(artifact.PDF), "application/pdf")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		pdfURL = &url
	}

	// 10. Persist the document record
	doc := &models.Document{
		CaseID:        kase.ID,
		UserID:        userID(req, kase),
		DocumentType:  req.DocumentType,
		DocumentTitle: def.Title,
		HTMLContent:   artifact.HTML,
		PDFURL:        pdfURL,
		IsPreview:     req.IsPreview,
	}
	if err := s.documentStore.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	// 11. Kick off QA review for final documents. Background context: the
	// review must outlive the request.
	if !req.IsPreview && s.qaReviewer != nil {
		reviewed := *doc
		go s.qaReviewer.Review(context.Background(), &reviewed)
	}

	return &GenerateDocumentResult{Document: doc, Warnings: warnings}, nil
}

// ComplianceReport is the result of a dry-run validation
type ComplianceReport struct {
	DocumentType models.DocumentType       `json:"document_type"`
	Issues       []models.ComplianceIssue  `json:"issues"`
	Suitability  *models.SuitabilityResult `json:"suitability,omitempty"`
	CanGenerate  bool                      `json:"can_generate"`
}

// CheckCompliance runs the mapper and validator for a document type without
// generating anything
func (s *DocumentService) CheckCompliance(ctx context.Context, caseID uuid.UUID, documentType models.DocumentType) (*ComplianceReport, error) {
	def, ok := generator.Lookup(documentType)
	if !ok {
		return nil, ErrUnsupportedDocumentType
	}

	kase, err := s.caseStore.GetByID(ctx, caseID)
	if err != nil {
		return nil, ErrCaseNotFound
	}
	if !def.AllowedIn(kase.Jurisdiction) {
		return nil, ErrJurisdictionMismatch
	}

	facts := s.loadFacts(ctx, kase)
	data := def.Map(kase.ID.String(), facts)

	report := &ComplianceReport{DocumentType: documentType}
	if def.Suitability != nil {
		result := def.Suitability(data)
		report.Suitability = &result
	}
	report.Issues = def.Issues(data)
	if kase.CaseType == models.CaseTypeMoneyClaim {
		if ed, ok := data.(*mapper.EvictionCaseData); ok {
			report.Issues = append(report.Issues, compliance.PreActionIssues(ed, s.now())...)
		}
	}
	report.CanGenerate = len(models.BlockingFields(report.Issues)) == 0 &&
		(report.Suitability == nil || report.Suitability.Valid)

	return report, nil
}

// GetDocument retrieves a document by ID
func (s *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return s.documentStore.GetByID(ctx, id)
}

// ListCaseDocuments lists all documents generated for a case
func (s *DocumentService) ListCaseDocuments(ctx context.Context, caseID uuid.UUID) ([]*models.Document, error) {
	return s.documentStore.ListByCaseID(ctx, caseID)
}

// loadFacts reads the fact bag, falling back to the case's collected_facts
// snapshot when the store is empty or unavailable
func (s *DocumentService) loadFacts(ctx context.Context, kase *models.Case) models.WizardFacts {
	var facts models.WizardFacts
	if s.factStore != nil {
		loaded, err := s.factStore.GetOrCreate(ctx, kase.ID)
		if err != nil {
			log.Printf("Warning: fact store read failed for case %s, using snapshot: %v", kase.ID, err)
		} else {
			facts = loaded
		}
	}
	if len(facts) == 0 && len(kase.CollectedFacts) > 0 {
		facts = kase.CollectedFacts
	}
	if facts == nil {
		facts = make(models.WizardFacts)
	}
	return facts
}

// render executes the registered renderer, converting panics into errors so
// a failing template can never take the request handler down
func (s *DocumentService) render(ctx context.Context, def *generator.Definition, data interface{}, preview bool) (artifact *generator.Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			artifact = nil
			err = fmt.Errorf("renderer panic: %v", r)
		}
	}()

	html, err := def.Render(data, preview)
	if err != nil {
		return nil, err
	}

	artifact = &generator.Artifact{HTML: html}
	if s.pdfRenderer != nil {
		pdf, err := s.pdfRenderer.RenderPDF(ctx, html)
		if err != nil {
			return nil, fmt.Errorf("pdf rendering: %w", err)
		}
		artifact.PDF = pdf
	}
	return artifact, nil
}

// artifactKey builds the storage key: userID (or "anonymous") / caseID /
// documentType_timestamp.pdf
func (s *DocumentService) artifactKey(req GenerateDocumentRequest, kase *models.Case) string {
	segment := "anonymous"
	if id := userID(req, kase); id != nil {
		segment = id.String()
	}
	return fmt.Sprintf("%s/%s/%s_%d.pdf", segment, kase.ID, req.DocumentType, s.now().Unix())
}

func userID(req GenerateDocumentRequest, kase *models.Case) *uuid.UUID {
	if req.User != nil {
		id := req.User.ID
		return &id
	}
	return kase.UserID
}

func warningsOnly(issues []models.ComplianceIssue) []models.ComplianceIssue {
	var warnings []models.ComplianceIssue
	for _, issue := range issues {
		if issue.Severity == models.SeverityWarning {
			warnings = append(warnings, issue)
		}
	}
	return warnings
}
