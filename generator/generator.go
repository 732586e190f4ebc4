// Package generator routes validated case data to the correct jurisdiction
// template. The set of supported document types is a registry, not a switch:
// each entry binds a document type to its title, category, mapper, validator
// and renderer, which makes rules like "Northern Ireland cases may only
// request tenancy documents" a property of the table.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sort"

	"landlordheaven-backend/compliance"
	"landlordheaven-backend/mapper"
	"landlordheaven-backend/models"
)

// Artifact is the output bundle of one generation run. PDF is nil when no
// renderer is configured or the document type is HTML/preview-only.
type Artifact struct {
	HTML string
	PDF  []byte
}

// PDFRenderer turns rendered HTML into PDF bytes. Rasterization itself is an
// external collaborator; a nil renderer means HTML-only output.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Definition binds one document type to everything the orchestrator needs
type Definition struct {
	Type     models.DocumentType
	Title    string
	Category models.DocumentCategory

	// Map projects wizard facts into this family's case data shape
	Map func(caseID string, facts models.WizardFacts) interface{}
	// Issues validates the projected case data
	Issues func(data interface{}) []models.ComplianceIssue
	// Suitability is non-nil only for document families with an
	// instrument-suitability gate (the AST family)
	Suitability func(data interface{}) models.SuitabilityResult
	// Render produces the HTML artifact
	Render func(data interface{}, preview bool) (string, error)
}

// AllowedIn reports whether a case in jurisdiction j may request this
// document type. The only dispatch-time restriction is that Northern Ireland
// cases are limited to tenancy documents.
func (d *Definition) AllowedIn(j models.Jurisdiction) bool {
	if j == models.JurisdictionNorthernIreland && d.Category != models.CategoryTenancy {
		return false
	}
	return true
}

type evictionView struct {
	Data    *mapper.EvictionCaseData
	Preview bool
}

type scotlandView struct {
	Data    *mapper.ScotlandEvictionCaseData
	Preview bool
}

type tenancyView struct {
	Data          *mapper.TenancyCaseData
	Preview       bool
	Title         string
	Statute       string
	Heading       string
	Premium       bool
	WitnessClause bool
}

var registry = map[models.DocumentType]*Definition{
	models.DocTypeSection8Notice: {
		Type:     models.DocTypeSection8Notice,
		Title:    "Section 8 Notice - Form 3",
		Category: models.CategoryEviction,
		Map:      mapEviction,
		Issues: func(data interface{}) []models.ComplianceIssue {
			return compliance.Section8Issues(data.(*mapper.EvictionCaseData))
		},
		Render: func(data interface{}, preview bool) (string, error) {
			return execute(section8Template, evictionView{Data: data.(*mapper.EvictionCaseData), Preview: preview})
		},
	},
	models.DocTypeSection21Notice: {
		Type:     models.DocTypeSection21Notice,
		Title:    "Section 21 Notice - Form 6A",
		Category: models.CategoryEviction,
		Map:      mapEviction,
		Issues: func(data interface{}) []models.ComplianceIssue {
			return compliance.Section21Issues(data.(*mapper.EvictionCaseData))
		},
		Render: func(data interface{}, preview bool) (string, error) {
			return execute(section21Template, evictionView{Data: data.(*mapper.EvictionCaseData), Preview: preview})
		},
	},
	models.DocTypeNoticeToLeave: {
		Type:     models.DocTypeNoticeToLeave,
		Title:    "Notice to Leave",
		Category: models.CategoryEviction,
		Map: func(caseID string, facts models.WizardFacts) interface{} {
			return mapper.MapScotlandEviction(caseID, facts)
		},
		Issues: func(data interface{}) []models.ComplianceIssue {
			return compliance.ScotlandEvictionIssues(data.(*mapper.ScotlandEvictionCaseData))
		},
		Render: func(data interface{}, preview bool) (string, error) {
			return execute(noticeToLeaveTemplate, scotlandView{Data: data.(*mapper.ScotlandEvictionCaseData), Preview: preview})
		},
	},

	models.DocTypeASTStandard:           tenancyDefinition(models.DocTypeASTStandard, "Assured Shorthold Tenancy Agreement", models.JurisdictionEngland, false),
	models.DocTypeASTPremium:            tenancyDefinition(models.DocTypeASTPremium, "Assured Shorthold Tenancy Agreement (Premium)", models.JurisdictionEngland, true),
	models.DocTypeScotlandPRT:           tenancyDefinition(models.DocTypeScotlandPRT, "Private Residential Tenancy Agreement", models.JurisdictionScotland, false),
	models.DocTypeScotlandPRTPremium:    tenancyDefinition(models.DocTypeScotlandPRTPremium, "Private Residential Tenancy Agreement (Premium)", models.JurisdictionScotland, true),
	models.DocTypePrivateTenancy:        tenancyDefinition(models.DocTypePrivateTenancy, "Private Tenancy Agreement", models.JurisdictionNorthernIreland, false),
	models.DocTypePrivateTenancyPremium: tenancyDefinition(models.DocTypePrivateTenancyPremium, "Private Tenancy Agreement (Premium)", models.JurisdictionNorthernIreland, true),
}

func mapEviction(caseID string, facts models.WizardFacts) interface{} {
	return mapper.MapEnglandWalesEviction(caseID, facts)
}

// tenancyDefinition builds a registry entry for one tenancy-agreement tier.
// The family jurisdiction picks the statute wording; the AST family
// additionally carries the suitability gate.
func tenancyDefinition(t models.DocumentType, title string, family models.Jurisdiction, premium bool) *Definition {
	var statute, heading string
	witness := false
	switch family {
	case models.JurisdictionScotland:
		statute = "Private Housing (Tenancies) (Scotland) Act 2016"
		heading = "PRIVATE RESIDENTIAL TENANCY AGREEMENT"
		witness = true
	case models.JurisdictionNorthernIreland:
		statute = "Private Tenancies Act (Northern Ireland) 2022"
		heading = "PRIVATE TENANCY AGREEMENT"
	default:
		statute = "Housing Act 1988 (as amended)"
		heading = "ASSURED SHORTHOLD TENANCY AGREEMENT"
	}

	def := &Definition{
		Type:     t,
		Title:    title,
		Category: models.CategoryTenancy,
		Map: func(caseID string, facts models.WizardFacts) interface{} {
			return mapper.MapTenancy(caseID, family, facts)
		},
		Issues: func(data interface{}) []models.ComplianceIssue {
			return compliance.TenancyIssues(data.(*mapper.TenancyCaseData))
		},
		Render: func(data interface{}, preview bool) (string, error) {
			return execute(tenancyTemplate, tenancyView{
				Data:          data.(*mapper.TenancyCaseData),
				Preview:       preview,
				Title:         title,
				Statute:       statute,
				Heading:       heading,
				Premium:       premium,
				WitnessClause: witness,
			})
		},
	}

	if family == models.JurisdictionEngland {
		def.Suitability = func(data interface{}) models.SuitabilityResult {
			return compliance.CheckASTSuitability(data.(*mapper.TenancyCaseData))
		}
	}
	return def
}

// Lookup resolves a document type against the registry
func Lookup(t models.DocumentType) (*Definition, bool) {
	def, ok := registry[t]
	return def, ok
}

// Types returns the closed set of supported document types, sorted
func Types() []models.DocumentType {
	types := make([]models.DocumentType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func execute(tmpl *template.Template, view interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
