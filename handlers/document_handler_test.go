package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"landlordheaven-backend/models"
	"landlordheaven-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubCaseStore struct {
	kase  *models.Case
	err   error
	calls int
}

func (s *stubCaseStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.kase, nil
}

type stubFactStore struct {
	facts models.WizardFacts
	calls int
}

func (s *stubFactStore) GetOrCreate(ctx context.Context, caseID uuid.UUID) (models.WizardFacts, error) {
	s.calls++
	return s.facts, nil
}

type stubDocumentStore struct {
	created []*models.Document
}

func (s *stubDocumentStore) Create(ctx context.Context, doc *models.Document) error {
	doc.ID = uuid.New()
	s.created = append(s.created, doc)
	return nil
}

func (s *stubDocumentStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return nil, errors.New("no rows")
}

func (s *stubDocumentStore) ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.Document, error) {
	return s.created, nil
}

func (s *stubDocumentStore) UpdateQA(ctx context.Context, id uuid.UUID, passed bool, score int) error {
	return nil
}

type fixture struct {
	router    *gin.Engine
	caseStore *stubCaseStore
	factStore *stubFactStore
	docStore  *stubDocumentStore
}

// newFixture wires the generate route the way cmd/server does, with an
// optional user injected in place of the auth middleware
func newFixture(kase *models.Case, facts models.WizardFacts, user *models.User) *fixture {
	caseStore := &stubCaseStore{kase: kase}
	if kase == nil {
		caseStore.err = errors.New("no rows")
	}
	factStore := &stubFactStore{facts: facts}
	docStore := &stubDocumentStore{}

	svc := service.NewDocumentService(
		service.WithCaseStore(caseStore),
		service.WithFactStore(factStore),
		service.WithDocumentStore(docStore),
	)
	handler := NewDocumentHandler(svc)

	r := gin.New()
	r.POST("/api/documents/generate", func(c *gin.Context) {
		if user != nil {
			c.Set(userContextKey, user)
		}
		handler.GenerateDocument(c)
	})
	r.GET("/api/cases/:id/compliance", handler.CheckCompliance)

	return &fixture{router: r, caseStore: caseStore, factStore: factStore, docStore: docStore}
}

func postGenerate(t *testing.T, f *fixture, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/documents/generate", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func validEnglandCase() *models.Case {
	return &models.Case{
		ID:           uuid.New(),
		Jurisdiction: models.JurisdictionEngland,
		CaseType:     models.CaseTypeEviction,
	}
}

func validSection21Facts() models.WizardFacts {
	return models.WizardFacts{
		"property_address":   "1 Test St",
		"tenant_full_name":   "J Smith",
		"landlord_full_name": "A Lee",
		"notice_expiry_date": "2026-03-01",
	}
}

func TestGenerateRejectsInvalidBody(t *testing.T) {
	f := newFixture(validEnglandCase(), validSection21Facts(), nil)

	w := postGenerate(t, f, map[string]interface{}{"document_type": "section21_notice"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing case_id, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["code"] != "INVALID_REQUEST" {
		t.Fatalf("unexpected code %v", body["code"])
	}
}

func TestGenerateRejectsUnknownDocumentType(t *testing.T) {
	f := newFixture(validEnglandCase(), validSection21Facts(), nil)

	w := postGenerate(t, f, map[string]interface{}{
		"case_id":       uuid.New().String(),
		"document_type": "eviction_letter",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %d", w.Code)
	}
	if f.caseStore.calls != 0 {
		t.Fatalf("enum validation must happen before any case lookup")
	}
}

func TestGenerateNonPreviewRequiresAuthBeforeCaseLookup(t *testing.T) {
	f := newFixture(validEnglandCase(), validSection21Facts(), nil)

	w := postGenerate(t, f, map[string]interface{}{
		"case_id":       uuid.New().String(),
		"document_type": "section21_notice",
		"is_preview":    false,
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if f.caseStore.calls != 0 {
		t.Fatalf("the auth check must run before any case lookup, saw %d lookups", f.caseStore.calls)
	}
	if f.factStore.calls != 0 {
		t.Fatalf("no fact loading may happen for an unauthenticated final request")
	}
}

func TestGeneratePreviewNeverRequiresAuth(t *testing.T) {
	f := newFixture(validEnglandCase(), validSection21Facts(), nil)

	// is_preview omitted: defaults to preview
	w := postGenerate(t, f, map[string]interface{}{
		"case_id":       f.caseStore.kase.ID.String(),
		"document_type": "section21_notice",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for an anonymous preview, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGenerateCaseNotFound(t *testing.T) {
	f := newFixture(nil, nil, nil)

	w := postGenerate(t, f, map[string]interface{}{
		"case_id":       uuid.New().String(),
		"document_type": "section21_notice",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["code"] != "CASE_NOT_FOUND" {
		t.Fatalf("unexpected code %v", body["code"])
	}
}

func TestGenerateJurisdictionMismatch(t *testing.T) {
	kase := validEnglandCase()
	kase.Jurisdiction = models.JurisdictionNorthernIreland
	f := newFixture(kase, validSection21Facts(), nil)

	w := postGenerate(t, f, map[string]interface{}{
		"case_id":       kase.ID.String(),
		"document_type": "section8_notice",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for NI + eviction notice, got %d", w.Code)
	}
}

func TestGenerateComplianceFailureShape(t *testing.T) {
	kase := validEnglandCase()
	f := newFixture(kase, models.WizardFacts{}, nil)

	w := postGenerate(t, f, map[string]interface{}{
		"case_id":       kase.ID.String(),
		"document_type": "section21_notice",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["code"] != "MISSING_REQUIRED_FIELDS" {
		t.Fatalf("unexpected code %v", body["code"])
	}
	missing, ok := body["missing"].([]interface{})
	if !ok || len(missing) == 0 {
		t.Fatalf("expected a populated missing list, got %v", body["missing"])
	}
	missingFields, ok := body["missingFields"].([]interface{})
	if !ok || fmt.Sprint(missingFields) != fmt.Sprint(missing) {
		t.Fatalf("missingFields must mirror missing: %v vs %v", missingFields, missing)
	}

	found := false
	for _, field := range missing {
		if field == "property_address" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected property_address in %v", missing)
	}
	if len(f.docStore.created) != 0 {
		t.Fatalf("a refused generation must persist nothing")
	}
}

func TestGenerateASTNotSuitableShape(t *testing.T) {
	kase := validEnglandCase()
	kase.CaseType = models.CaseTypeTenancyAgreement
	facts := models.WizardFacts{
		"property_address":   "1 Test St",
		"tenant_full_name":   "J Smith",
		"landlord_full_name": "A Lee",
		"rent_amount":        "950",
		"tenancy_start_date": "2026-09-01",
		"company_let":        true,
	}
	f := newFixture(kase, facts, nil)

	w := postGenerate(t, f, map[string]interface{}{
		"case_id":       kase.ID.String(),
		"document_type": "ast_standard",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["code"] != "AST_NOT_SUITABLE" {
		t.Fatalf("unexpected code %v", body["code"])
	}
}

func TestGenerateSuccessResponseShape(t *testing.T) {
	kase := validEnglandCase()
	user := &models.User{ID: uuid.New()}
	f := newFixture(kase, validSection21Facts(), user)

	w := postGenerate(t, f, map[string]interface{}{
		"case_id":       kase.ID.String(),
		"document_type": "section21_notice",
		"is_preview":    false,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success:true, got %v", body["success"])
	}
	if body["message"] == nil {
		t.Fatalf("expected a message in the 201 body")
	}
	doc, ok := body["document"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected an embedded document, got %v", body["document"])
	}
	if doc["document_title"] != "Section 21 Notice - Form 6A" {
		t.Fatalf("unexpected title %v", doc["document_title"])
	}
	if doc["is_preview"] != false {
		t.Fatalf("expected is_preview=false, got %v", doc["is_preview"])
	}
	if len(f.docStore.created) != 1 {
		t.Fatalf("expected one persisted document, got %d", len(f.docStore.created))
	}
}

func TestComplianceEndpoint(t *testing.T) {
	kase := validEnglandCase()
	f := newFixture(kase, models.WizardFacts{}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/cases/"+kase.ID.String()+"/compliance?document_type=section21_notice", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected a report payload, got %v", body)
	}
	if data["can_generate"] != false {
		t.Fatalf("empty facts must not be generatable: %v", data)
	}
}

func TestComplianceEndpointRejectsUnknownType(t *testing.T) {
	kase := validEnglandCase()
	f := newFixture(kase, models.WizardFacts{}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/cases/"+kase.ID.String()+"/compliance?document_type=eviction_letter", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown type, got %d", w.Code)
	}
}
