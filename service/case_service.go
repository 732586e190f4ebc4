package service

import (
	"context"
	"errors"

	"landlordheaven-backend/models"
	"landlordheaven-backend/repository"

	"github.com/google/uuid"
)

var (
	// ErrInvalidJurisdiction indicates a jurisdiction outside the four UK regimes
	ErrInvalidJurisdiction = errors.New("invalid jurisdiction")
	// ErrInvalidCaseType indicates an unsupported case type
	ErrInvalidCaseType = errors.New("invalid case type")
)

// CaseService handles business logic for cases and their wizard fact bags
type CaseService struct {
	caseRepo *repository.CaseRepository
	factRepo *repository.WizardFactRepository
}

// CaseServiceOption is a functional option for CaseService
type CaseServiceOption func(*CaseService)

// WithCaseRepository sets the case repository
func WithCaseRepository(repo *repository.CaseRepository) CaseServiceOption {
	return func(s *CaseService) {
		s.caseRepo = repo
	}
}

// WithWizardFactRepository sets the wizard fact repository
func WithWizardFactRepository(repo *repository.WizardFactRepository) CaseServiceOption {
	return func(s *CaseService) {
		s.factRepo = repo
	}
}

// NewCaseService creates a new case service
func NewCaseService(opts ...CaseServiceOption) *CaseService {
	s := &CaseService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCaseRequest represents a request to create a case
type CreateCaseRequest struct {
	UserID       *uuid.UUID
	Jurisdiction models.Jurisdiction
	CaseType     models.CaseType
}

// CreateCaseResult represents the result of creating a case
type CreateCaseResult struct {
	Case *models.Case
}

// CreateCase creates a new case with an empty fact bag
func (s *CaseService) CreateCase(ctx context.Context, req CreateCaseRequest) (*CreateCaseResult, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}
	if !req.Jurisdiction.Valid() {
		return nil, ErrInvalidJurisdiction
	}
	if !req.CaseType.Valid() {
		return nil, ErrInvalidCaseType
	}

	kase := &models.Case{
		UserID:         req.UserID,
		Jurisdiction:   req.Jurisdiction,
		CaseType:       req.CaseType,
		Status:         models.CaseStatusInProgress,
		CollectedFacts: models.WizardFacts{},
	}

	if err := s.caseRepo.Create(ctx, kase); err != nil {
		return nil, err
	}

	if s.factRepo != nil {
		if _, err := s.factRepo.GetOrCreate(ctx, kase.ID); err != nil {
			return nil, err
		}
	}

	return &CreateCaseResult{Case: kase}, nil
}

// GetCaseRequest represents a request to get a case
type GetCaseRequest struct {
	ID uuid.UUID
}

// GetCaseResult represents the result of getting a case
type GetCaseResult struct {
	Case *models.Case
}

// GetCase retrieves a case by ID
func (s *CaseService) GetCase(ctx context.Context, req GetCaseRequest) (*GetCaseResult, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	kase, err := s.caseRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, ErrCaseNotFound
	}

	return &GetCaseResult{Case: kase}, nil
}

// UpdateCaseRequest represents a request to update a case
type UpdateCaseRequest struct {
	Case *models.Case
}

// UpdateCaseResult represents the result of updating a case
type UpdateCaseResult struct {
	Case *models.Case
}

// UpdateCase updates a case's mutable columns
func (s *CaseService) UpdateCase(ctx context.Context, req UpdateCaseRequest) (*UpdateCaseResult, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	if err := s.caseRepo.Update(ctx, req.Case); err != nil {
		return nil, err
	}

	return &UpdateCaseResult{Case: req.Case}, nil
}

// DeleteCaseRequest represents a request to delete a case
type DeleteCaseRequest struct {
	ID uuid.UUID
}

// DeleteCase deletes a case and its dependent rows
func (s *CaseService) DeleteCase(ctx context.Context, req DeleteCaseRequest) error {
	if s.caseRepo == nil {
		return errors.New("case repository not set")
	}
	return s.caseRepo.Delete(ctx, req.ID)
}

// ListCasesRequest represents a request to list cases
type ListCasesRequest struct {
	UserID uuid.UUID
	Status *models.CaseStatus
	Limit  int
	Offset int
}

// ListCasesResult represents the result of listing cases
type ListCasesResult struct {
	Cases []*models.Case
}

// ListCases lists cases for a user
func (s *CaseService) ListCases(ctx context.Context, req ListCasesRequest) (*ListCasesResult, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	cases, err := s.caseRepo.ListByUserID(ctx, req.UserID, req.Status, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	return &ListCasesResult{Cases: cases}, nil
}

// SaveFactsRequest represents a request to merge facts into a case's bag
type SaveFactsRequest struct {
	CaseID  uuid.UUID
	Facts   models.WizardFacts
	Replace bool
}

// SaveFactsResult represents the result of saving facts
type SaveFactsResult struct {
	Facts models.WizardFacts
}

// SaveFacts merges (or replaces) a case's wizard facts and refreshes the
// collected_facts snapshot on the case row in the same call.
func (s *CaseService) SaveFacts(ctx context.Context, req SaveFactsRequest) (*SaveFactsResult, error) {
	if s.caseRepo == nil || s.factRepo == nil {
		return nil, errors.New("case or wizard fact repository not set")
	}

	if _, err := s.caseRepo.GetByID(ctx, req.CaseID); err != nil {
		return nil, ErrCaseNotFound
	}

	var facts models.WizardFacts
	var err error
	if req.Replace {
		facts = models.WizardFacts{}
	} else {
		facts, err = s.factRepo.GetOrCreate(ctx, req.CaseID)
		if err != nil {
			return nil, err
		}
	}
	facts.Merge(req.Facts)

	if err := s.factRepo.Save(ctx, req.CaseID, facts); err != nil {
		return nil, err
	}
	if err := s.caseRepo.UpdateCollectedFacts(ctx, req.CaseID, facts); err != nil {
		return nil, err
	}

	return &SaveFactsResult{Facts: facts}, nil
}

// GetFactsRequest represents a request to read a case's fact bag
type GetFactsRequest struct {
	CaseID uuid.UUID
}

// GetFactsResult represents the result of reading a case's fact bag
type GetFactsResult struct {
	Facts models.WizardFacts
}

// GetFacts returns the case's live fact bag
func (s *CaseService) GetFacts(ctx context.Context, req GetFactsRequest) (*GetFactsResult, error) {
	if s.factRepo == nil {
		return nil, errors.New("wizard fact repository not set")
	}

	facts, err := s.factRepo.GetOrCreate(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}

	return &GetFactsResult{Facts: facts}, nil
}
