package models

import (
	"time"

	"github.com/google/uuid"
)

// Jurisdiction identifies which UK statutory regime applies to a case
type Jurisdiction string

const (
	JurisdictionEngland         Jurisdiction = "england"
	JurisdictionWales           Jurisdiction = "wales"
	JurisdictionScotland        Jurisdiction = "scotland"
	JurisdictionNorthernIreland Jurisdiction = "northern-ireland"
)

// Valid reports whether j is one of the four supported jurisdictions
func (j Jurisdiction) Valid() bool {
	switch j {
	case JurisdictionEngland, JurisdictionWales, JurisdictionScotland, JurisdictionNorthernIreland:
		return true
	}
	return false
}

// CaseType represents the kind of legal outcome a case is working towards
type CaseType string

const (
	CaseTypeEviction         CaseType = "eviction"
	CaseTypeMoneyClaim       CaseType = "money_claim"
	CaseTypeTenancyAgreement CaseType = "tenancy_agreement"
)

// Valid reports whether t is a supported case type
func (t CaseType) Valid() bool {
	switch t {
	case CaseTypeEviction, CaseTypeMoneyClaim, CaseTypeTenancyAgreement:
		return true
	}
	return false
}

// CaseStatus represents the status of a case
type CaseStatus string

const (
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusCompleted  CaseStatus = "completed"
	CaseStatusArchived   CaseStatus = "archived"
)

// Case represents one user's attempt to produce a legal document bundle.
// UserID is nil for anonymous preview sessions.
type Case struct {
	ID             uuid.UUID    `json:"id"`
	UserID         *uuid.UUID   `json:"user_id,omitempty"`
	Jurisdiction   Jurisdiction `json:"jurisdiction"`
	CaseType       CaseType     `json:"case_type"`
	Status         CaseStatus   `json:"status"`
	CollectedFacts WizardFacts  `json:"collected_facts"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
