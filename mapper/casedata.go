package mapper

import (
	"github.com/shopspring/decimal"

	"landlordheaven-backend/models"
)

// EvictionCaseData is the normalized projection an England/Wales eviction
// notice generator works from. Absent facts are zero values or nil; presence
// is the validator's concern, not the mapper's.
type EvictionCaseData struct {
	CaseID           string
	PropertyAddress  string
	TenantFullName   string
	LandlordFullName string
	LandlordAddress  string
	LandlordPhone    string

	Grounds           []string
	GroundParticulars string

	NoticeServiceDate       string
	NoticeExpiryDate        string
	EarliestProceedingsDate string

	RentAmount    *decimal.Decimal
	RentPeriod    string
	ArrearsAmount *decimal.Decimal

	// Statutory service facts, tri-state: nil = never answered
	DepositProtected  *bool
	DepositScheme     string
	GasSafetyProvided *bool
	EPCProvided       *bool
	HowToRentProvided *bool

	// Money-claim pre-action protocol
	PreActionLetterDate string
}

// ScotlandEvictionCaseData is the projection for a Notice to Leave under the
// Private Housing (Tenancies) (Scotland) Act 2016
type ScotlandEvictionCaseData struct {
	CaseID           string
	PropertyAddress  string
	TenantFullName   string
	LandlordFullName string
	LandlordAddress  string

	Grounds           []string
	GroundParticulars string

	EntryDate         string
	NoticeServiceDate string
	LeaveDate         string

	RentAmount *decimal.Decimal
}

// TenancyCaseData is the shared projection for all six tenancy-agreement
// document types (England/Wales AST, Scotland PRT, Northern Ireland private
// tenancy, standard and premium tiers)
type TenancyCaseData struct {
	CaseID       string
	Jurisdiction models.Jurisdiction

	PropertyAddress  string
	TenantFullName   string
	LandlordFullName string
	LandlordAddress  string

	RentAmount    *decimal.Decimal
	RentPeriod    string
	DepositAmount *decimal.Decimal
	DepositScheme string

	TenancyStartDate string
	TenancyEndDate   string
	Furnished        string

	// AST suitability facts, tri-state: nil = never answered
	LodgerArrangement *bool
	ResidentLandlord  *bool
	CompanyLet        *bool
}
