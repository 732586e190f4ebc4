package generator

import (
	"strings"
	"testing"

	"landlordheaven-backend/models"
)

var allDocumentTypes = []models.DocumentType{
	models.DocTypeSection8Notice,
	models.DocTypeSection21Notice,
	models.DocTypeASTStandard,
	models.DocTypeASTPremium,
	models.DocTypeNoticeToLeave,
	models.DocTypeScotlandPRT,
	models.DocTypeScotlandPRTPremium,
	models.DocTypePrivateTenancy,
	models.DocTypePrivateTenancyPremium,
}

func sampleFacts() models.WizardFacts {
	return models.WizardFacts{
		"property_address":   "1 Test St",
		"tenant_full_name":   "J Smith",
		"landlord_full_name": "A Lee",
		"grounds":            []interface{}{"8"},
		"notice_expiry_date": "2026-03-01",
		"entry_date":         "2024-06-01",
		"rent_amount":        "950",
		"tenancy_start_date": "2026-09-01",
	}
}

func TestRegistryCoversAllNineTypes(t *testing.T) {
	for _, dt := range allDocumentTypes {
		def, ok := Lookup(dt)
		if !ok {
			t.Fatalf("registry is missing %s", dt)
		}
		if def.Type != dt {
			t.Fatalf("definition for %s reports type %s", dt, def.Type)
		}
		if def.Title == "" {
			t.Fatalf("definition for %s has no title", dt)
		}
		if def.Map == nil || def.Issues == nil || def.Render == nil {
			t.Fatalf("definition for %s is incomplete", dt)
		}
	}

	if got := Types(); len(got) != len(allDocumentTypes) {
		t.Fatalf("expected %d registered types, got %d", len(allDocumentTypes), len(got))
	}
}

func TestLookupRejectsUnknownType(t *testing.T) {
	if _, ok := Lookup("eviction_letter"); ok {
		t.Fatalf("expected unknown type to miss the registry")
	}
}

func TestNorthernIrelandRestrictedToTenancyDocuments(t *testing.T) {
	s8, _ := Lookup(models.DocTypeSection8Notice)
	if s8.AllowedIn(models.JurisdictionNorthernIreland) {
		t.Fatalf("section 8 must not be available in Northern Ireland")
	}
	ntl, _ := Lookup(models.DocTypeNoticeToLeave)
	if ntl.AllowedIn(models.JurisdictionNorthernIreland) {
		t.Fatalf("notice to leave must not be available in Northern Ireland")
	}
	pt, _ := Lookup(models.DocTypePrivateTenancy)
	if !pt.AllowedIn(models.JurisdictionNorthernIreland) {
		t.Fatalf("private tenancy must be available in Northern Ireland")
	}
}

func TestRestrictionIsOneDirectional(t *testing.T) {
	// Only NI is restricted; an England case may request any type, including
	// the NI tenancy agreements
	for _, dt := range allDocumentTypes {
		def, _ := Lookup(dt)
		for _, j := range []models.Jurisdiction{
			models.JurisdictionEngland,
			models.JurisdictionWales,
			models.JurisdictionScotland,
		} {
			if !def.AllowedIn(j) {
				t.Fatalf("%s must be allowed in %s", dt, j)
			}
		}
	}
}

func TestSection21Title(t *testing.T) {
	def, _ := Lookup(models.DocTypeSection21Notice)
	if def.Title != "Section 21 Notice - Form 6A" {
		t.Fatalf("unexpected title %q", def.Title)
	}
}

func TestOnlyASTFamilyCarriesSuitabilityGate(t *testing.T) {
	gated := map[models.DocumentType]bool{
		models.DocTypeASTStandard: true,
		models.DocTypeASTPremium:  true,
	}
	for _, dt := range allDocumentTypes {
		def, _ := Lookup(dt)
		if gated[dt] && def.Suitability == nil {
			t.Fatalf("%s must carry the suitability gate", dt)
		}
		if !gated[dt] && def.Suitability != nil {
			t.Fatalf("%s must not carry the suitability gate", dt)
		}
	}
}

func TestEveryTypeRendersFromSampleFacts(t *testing.T) {
	for _, dt := range allDocumentTypes {
		def, _ := Lookup(dt)
		data := def.Map("case-1", sampleFacts())
		html, err := def.Render(data, true)
		if err != nil {
			t.Fatalf("%s render failed: %v", dt, err)
		}
		if !strings.Contains(html, "J Smith") {
			t.Fatalf("%s output is missing the tenant name", dt)
		}
		if !strings.Contains(html, "</html>") {
			t.Fatalf("%s output is not a complete document", dt)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	def, _ := Lookup(models.DocTypeASTStandard)
	data := def.Map("case-1", sampleFacts())

	first, err := def.Render(data, false)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := def.Render(data, false)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if first != second {
		t.Fatalf("same input rendered different content")
	}
}

func TestPreviewWatermark(t *testing.T) {
	def, _ := Lookup(models.DocTypeSection21Notice)
	data := def.Map("case-1", sampleFacts())

	preview, err := def.Render(data, true)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(preview, "PREVIEW") {
		t.Fatalf("preview output is missing the watermark")
	}

	final, err := def.Render(data, false)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(final, "PREVIEW") {
		t.Fatalf("final output must not carry the watermark")
	}
}

func TestPremiumTierExtendsTheAgreement(t *testing.T) {
	standard, _ := Lookup(models.DocTypeASTStandard)
	premium, _ := Lookup(models.DocTypeASTPremium)

	stdHTML, err := standard.Render(standard.Map("case-1", sampleFacts()), false)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	premHTML, err := premium.Render(premium.Map("case-1", sampleFacts()), false)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if len(premHTML) <= len(stdHTML) {
		t.Fatalf("premium agreement should carry additional clauses")
	}
}

func TestScotlandStatuteWording(t *testing.T) {
	def, _ := Lookup(models.DocTypeScotlandPRT)
	html, err := def.Render(def.Map("case-1", sampleFacts()), false)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "Private Housing (Tenancies) (Scotland) Act 2016") {
		t.Fatalf("PRT agreement is missing the 2016 Act reference")
	}
}
