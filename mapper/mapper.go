// Package mapper translates raw wizard facts into the normalized case-data
// projections the document generators work from. Mappers are pure: no I/O,
// deterministic for the same facts, and they never fail on missing fields —
// absence flows through as zero values for the validator to judge.
package mapper

import "landlordheaven-backend/models"

// Fallback key chains, one per logical field. The wizard frontend has saved
// the same answer under different keys across versions (flat keys, dotted
// nested paths), so precedence lives here, once, where it can be audited.
var (
	propertyAddressKeys = []string{"property_address", "property.address"}
	tenantNameKeys      = []string{"tenant_full_name", "tenant_name", "tenant.full_name", "tenant.name"}
	landlordNameKeys    = []string{"landlord_full_name", "landlord_name", "landlord.full_name", "landlord.name"}
	landlordAddressKeys = []string{"landlord_address", "landlord.address"}
	landlordPhoneKeys   = []string{"landlord_phone", "landlord.phone", "landlord_telephone"}

	groundsKeys           = []string{"grounds", "eviction_grounds", "eviction.grounds"}
	groundParticularsKeys = []string{"ground_particulars", "grounds_explanation", "arrears_details"}

	noticeServiceDateKeys = []string{"notice_service_date", "notice_served_date", "service_date"}
	noticeExpiryDateKeys  = []string{"notice_expiry_date", "notice_expiry", "expiry_date"}
	earliestProcKeys      = []string{"earliest_proceedings_date", "earliest_court_date"}

	rentAmountKeys    = []string{"rent_amount", "monthly_rent", "rent.amount"}
	rentPeriodKeys    = []string{"rent_period", "rent_frequency", "rent.period"}
	arrearsAmountKeys = []string{"arrears_amount", "rent_arrears", "arrears.total"}

	depositProtectedKeys = []string{"deposit_protected", "deposit.protected"}
	depositSchemeKeys    = []string{"deposit_scheme", "deposit.scheme"}
	depositAmountKeys    = []string{"deposit_amount", "deposit.amount"}
	gasSafetyKeys        = []string{"gas_safety_provided", "gas_safety_certificate", "compliance.gas_safety"}
	epcKeys              = []string{"epc_provided", "epc_served", "compliance.epc"}
	howToRentKeys        = []string{"how_to_rent_provided", "how_to_rent_served", "compliance.how_to_rent"}

	preActionLetterKeys = []string{"pre_action_letter_date", "letter_before_claim_date"}

	entryDateKeys        = []string{"entry_date", "tenancy_entry_date", "tenancy.entry_date"}
	leaveDateKeys        = []string{"leave_date", "earliest_leave_date"}
	tenancyStartKeys     = []string{"tenancy_start_date", "start_date", "tenancy.start_date"}
	tenancyEndKeys       = []string{"tenancy_end_date", "end_date", "tenancy.end_date"}
	furnishedKeys        = []string{"furnished", "furnished_status", "property.furnished"}
	lodgerKeys           = []string{"lodger_arrangement", "is_lodger", "tenancy.lodger"}
	residentLandlordKeys = []string{"resident_landlord", "landlord_resident", "tenancy.resident_landlord"}
	companyLetKeys       = []string{"company_let", "is_company_let", "tenancy.company_let"}
)

// MapEnglandWalesEviction projects wizard facts onto the case data shape the
// Section 8 / Section 21 generators require
func MapEnglandWalesEviction(caseID string, facts models.WizardFacts) *EvictionCaseData {
	return &EvictionCaseData{
		CaseID:           caseID,
		PropertyAddress:  facts.Address(propertyAddressKeys...),
		TenantFullName:   facts.String(tenantNameKeys...),
		LandlordFullName: facts.String(landlordNameKeys...),
		LandlordAddress:  facts.Address(landlordAddressKeys...),
		LandlordPhone:    facts.String(landlordPhoneKeys...),

		Grounds:           facts.StringSlice(groundsKeys...),
		GroundParticulars: facts.String(groundParticularsKeys...),

		NoticeServiceDate:       facts.String(noticeServiceDateKeys...),
		NoticeExpiryDate:        facts.String(noticeExpiryDateKeys...),
		EarliestProceedingsDate: facts.String(earliestProcKeys...),

		RentAmount:    facts.Decimal(rentAmountKeys...),
		RentPeriod:    facts.String(rentPeriodKeys...),
		ArrearsAmount: facts.Decimal(arrearsAmountKeys...),

		DepositProtected:  facts.Bool(depositProtectedKeys...),
		DepositScheme:     facts.String(depositSchemeKeys...),
		GasSafetyProvided: facts.Bool(gasSafetyKeys...),
		EPCProvided:       facts.Bool(epcKeys...),
		HowToRentProvided: facts.Bool(howToRentKeys...),

		PreActionLetterDate: facts.String(preActionLetterKeys...),
	}
}

// MapScotlandEviction projects wizard facts onto the Notice to Leave shape
func MapScotlandEviction(caseID string, facts models.WizardFacts) *ScotlandEvictionCaseData {
	return &ScotlandEvictionCaseData{
		CaseID:           caseID,
		PropertyAddress:  facts.Address(propertyAddressKeys...),
		TenantFullName:   facts.String(tenantNameKeys...),
		LandlordFullName: facts.String(landlordNameKeys...),
		LandlordAddress:  facts.Address(landlordAddressKeys...),

		Grounds:           facts.StringSlice(groundsKeys...),
		GroundParticulars: facts.String(groundParticularsKeys...),

		EntryDate:         facts.String(entryDateKeys...),
		NoticeServiceDate: facts.String(noticeServiceDateKeys...),
		LeaveDate:         facts.String(leaveDateKeys...),

		RentAmount: facts.Decimal(rentAmountKeys...),
	}
}

// MapTenancy projects wizard facts onto the tenancy-agreement shape shared by
// the AST, PRT and Northern Ireland private tenancy generators
func MapTenancy(caseID string, jurisdiction models.Jurisdiction, facts models.WizardFacts) *TenancyCaseData {
	return &TenancyCaseData{
		CaseID:       caseID,
		Jurisdiction: jurisdiction,

		PropertyAddress:  facts.Address(propertyAddressKeys...),
		TenantFullName:   facts.String(tenantNameKeys...),
		LandlordFullName: facts.String(landlordNameKeys...),
		LandlordAddress:  facts.Address(landlordAddressKeys...),

		RentAmount:    facts.Decimal(rentAmountKeys...),
		RentPeriod:    facts.String(rentPeriodKeys...),
		DepositAmount: facts.Decimal(depositAmountKeys...),
		DepositScheme: facts.String(depositSchemeKeys...),

		TenancyStartDate: facts.String(tenancyStartKeys...),
		TenancyEndDate:   facts.String(tenancyEndKeys...),
		Furnished:        facts.String(furnishedKeys...),

		LodgerArrangement: facts.Bool(lodgerKeys...),
		ResidentLandlord:  facts.Bool(residentLandlordKeys...),
		CompanyLet:        facts.Bool(companyLetKeys...),
	}
}
