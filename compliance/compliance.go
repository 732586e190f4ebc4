// Package compliance decides whether a requested document can legally be
// generated from the mapped case data, and enumerates exactly which required
// facts or statutory preconditions are unmet. Validators never fail: they
// return structured issues for the orchestrator to act on. Error severity
// blocks generation, warning severity does not.
package compliance

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"landlordheaven-backend/mapper"
	"landlordheaven-backend/models"
)

// PreActionProtocolDays is the minimum age of a letter before claim under the
// Pre-Action Protocol for Debt Claims before proceedings may be issued
const PreActionProtocolDays = 14

var two = decimal.NewFromInt(2)

// Section8Issues validates case data for a Section 8 notice (Form 3)
func Section8Issues(d *mapper.EvictionCaseData) []models.ComplianceIssue {
	var issues []models.ComplianceIssue
	issues = appendMissing(issues, "property_address", d.PropertyAddress)
	issues = appendMissing(issues, "tenant_full_name", d.TenantFullName)
	issues = appendMissing(issues, "landlord_full_name", d.LandlordFullName)
	if len(d.Grounds) == 0 {
		issues = append(issues, models.ComplianceIssue{
			Field:    "grounds",
			Severity: models.SeverityError,
			Message:  "At least one ground for possession must be selected",
		})
	}
	issues = append(issues, ground8ArrearsIssues(d)...)
	return issues
}

// Section21Issues validates case data for a Section 21 notice (Form 6A).
// Statutory service facts answered "no" are blocking: a Section 21 notice is
// invalid if the deposit is unprotected or the gas safety certificate, EPC or
// How to Rent guide was never given to the tenant. Unanswered facts produce
// warnings only, because absence of an answer is tolerated at mapping time.
func Section21Issues(d *mapper.EvictionCaseData) []models.ComplianceIssue {
	var issues []models.ComplianceIssue
	issues = appendMissing(issues, "property_address", d.PropertyAddress)
	issues = appendMissing(issues, "tenant_full_name", d.TenantFullName)
	issues = appendMissing(issues, "landlord_full_name", d.LandlordFullName)
	issues = appendMissing(issues, "notice_expiry_date", d.NoticeExpiryDate)

	issues = append(issues, statutoryServiceIssue("deposit_protected", d.DepositProtected,
		"The tenancy deposit must be protected in a government-approved scheme before a Section 21 notice is served")...)
	issues = append(issues, statutoryServiceIssue("gas_safety_provided", d.GasSafetyProvided,
		"A current gas safety certificate must be given to the tenant before a Section 21 notice is served")...)
	issues = append(issues, statutoryServiceIssue("epc_provided", d.EPCProvided,
		"An Energy Performance Certificate must be given to the tenant before a Section 21 notice is served")...)
	issues = append(issues, statutoryServiceIssue("how_to_rent_provided", d.HowToRentProvided,
		"The 'How to Rent' guide must be given to the tenant before a Section 21 notice is served")...)
	return issues
}

// ScotlandEvictionIssues validates case data for a Notice to Leave
func ScotlandEvictionIssues(d *mapper.ScotlandEvictionCaseData) []models.ComplianceIssue {
	var issues []models.ComplianceIssue
	issues = appendMissing(issues, "property_address", d.PropertyAddress)
	issues = appendMissing(issues, "tenant_full_name", d.TenantFullName)
	issues = appendMissing(issues, "landlord_full_name", d.LandlordFullName)
	issues = appendMissing(issues, "entry_date", d.EntryDate)
	if len(d.Grounds) == 0 {
		issues = append(issues, models.ComplianceIssue{
			Field:    "grounds",
			Severity: models.SeverityError,
			Message:  "At least one eviction ground under schedule 3 of the 2016 Act must be selected",
		})
	}
	return issues
}

// TenancyIssues validates case data shared by all tenancy-agreement types
func TenancyIssues(d *mapper.TenancyCaseData) []models.ComplianceIssue {
	var issues []models.ComplianceIssue
	issues = appendMissing(issues, "property_address", d.PropertyAddress)
	issues = appendMissing(issues, "tenant_full_name", d.TenantFullName)
	issues = appendMissing(issues, "landlord_full_name", d.LandlordFullName)
	issues = appendMissing(issues, "tenancy_start_date", d.TenancyStartDate)
	if d.RentAmount == nil {
		issues = append(issues, models.ComplianceIssue{
			Field:    "rent_amount",
			Severity: models.SeverityError,
			Message:  "Rent amount is required",
		})
	}
	issues = append(issues, depositCapIssues(d)...)
	return issues
}

// CheckASTSuitability gates whether an Assured Shorthold Tenancy is an
// appropriate instrument at all for the facts given. Returns valid=false with
// reasons for lodger/licence situations, resident landlords and company lets,
// which cannot be ASTs under the Housing Act 1988.
func CheckASTSuitability(d *mapper.TenancyCaseData) models.SuitabilityResult {
	var reasons []string
	if d.LodgerArrangement != nil && *d.LodgerArrangement {
		reasons = append(reasons, "The occupier is a lodger; a licence to occupy is the appropriate agreement, not an AST")
	}
	if d.ResidentLandlord != nil && *d.ResidentLandlord {
		reasons = append(reasons, "The landlord lives in the same property; the tenancy cannot be an AST")
	}
	if d.CompanyLet != nil && *d.CompanyLet {
		reasons = append(reasons, "The tenant is a company; company lets fall outside the assured tenancy regime")
	}
	if rent := annualRent(d.RentAmount, d.RentPeriod); rent != nil && rent.GreaterThan(decimal.NewFromInt(100000)) {
		reasons = append(reasons, "The annual rent exceeds £100,000; the tenancy falls outside the AST rent limit")
	}
	return models.SuitabilityResult{Valid: len(reasons) == 0, Reasons: reasons}
}

// PreActionIssues checks money-claim timing under the Pre-Action Protocol for
// Debt Claims. Advisory only: claims are never blocked here.
func PreActionIssues(d *mapper.EvictionCaseData, now time.Time) []models.ComplianceIssue {
	if d.PreActionLetterDate == "" {
		return []models.ComplianceIssue{{
			Field:    "pre_action_letter_date",
			Severity: models.SeverityWarning,
			Message:  "No letter before claim recorded; the pre-action protocol requires one before issuing proceedings",
		}}
	}
	sent, err := parseDate(d.PreActionLetterDate)
	if err != nil {
		return []models.ComplianceIssue{{
			Field:    "pre_action_letter_date",
			Severity: models.SeverityWarning,
			Message:  "Letter before claim date could not be parsed",
			Actual:   d.PreActionLetterDate,
		}}
	}
	if age := now.Sub(sent); age < PreActionProtocolDays*24*time.Hour {
		return []models.ComplianceIssue{{
			Field:    "pre_action_letter_date",
			Severity: models.SeverityWarning,
			Message:  fmt.Sprintf("The letter before claim must be at least %d days old before proceedings are issued", PreActionProtocolDays),
			Expected: fmt.Sprintf("served on or before %s", now.AddDate(0, 0, -PreActionProtocolDays).Format("2006-01-02")),
			Actual:   sent.Format("2006-01-02"),
		}}
	}
	return nil
}

// ground8ArrearsIssues warns when Ground 8 is relied on but the recorded
// arrears fall short of the mandatory two-months-unpaid threshold
func ground8ArrearsIssues(d *mapper.EvictionCaseData) []models.ComplianceIssue {
	if !containsGround(d.Grounds, "8") || d.RentAmount == nil || d.ArrearsAmount == nil {
		return nil
	}
	threshold := d.RentAmount.Mul(two)
	if d.ArrearsAmount.GreaterThanOrEqual(threshold) {
		return nil
	}
	return []models.ComplianceIssue{{
		Field:    "arrears_amount",
		Severity: models.SeverityWarning,
		Message:  "Ground 8 requires at least two months' rent unpaid; the recorded arrears fall below that threshold",
		Expected: threshold.StringFixed(2),
		Actual:   d.ArrearsAmount.StringFixed(2),
	}}
}

// depositCapIssues warns when the deposit exceeds the Tenant Fees Act 2019
// five-weeks cap (England; used as guidance elsewhere)
func depositCapIssues(d *mapper.TenancyCaseData) []models.ComplianceIssue {
	if d.DepositAmount == nil || d.RentAmount == nil {
		return nil
	}
	weekly := weeklyRent(d.RentAmount, d.RentPeriod)
	if weekly == nil {
		return nil
	}
	cap := weekly.Mul(decimal.NewFromInt(5))
	if d.DepositAmount.LessThanOrEqual(cap) {
		return nil
	}
	return []models.ComplianceIssue{{
		Field:    "deposit_amount",
		Severity: models.SeverityWarning,
		Message:  "The deposit exceeds the five-weeks-rent cap",
		Expected: cap.StringFixed(2),
		Actual:   d.DepositAmount.StringFixed(2),
	}}
}

func statutoryServiceIssue(field string, answered *bool, message string) []models.ComplianceIssue {
	if answered == nil {
		return []models.ComplianceIssue{{
			Field:    field,
			Severity: models.SeverityWarning,
			Message:  message,
			Actual:   "not answered",
		}}
	}
	if !*answered {
		return []models.ComplianceIssue{{
			Field:    field,
			Severity: models.SeverityError,
			Message:  message,
			Actual:   "no",
		}}
	}
	return nil
}

func appendMissing(issues []models.ComplianceIssue, field, value string) []models.ComplianceIssue {
	if strings.TrimSpace(value) != "" {
		return issues
	}
	return append(issues, models.ComplianceIssue{
		Field:    field,
		Severity: models.SeverityError,
		Message:  labelFor(field) + " is required",
	})
}

func containsGround(grounds []string, ground string) bool {
	for _, g := range grounds {
		g = strings.TrimSpace(strings.ToLower(g))
		if g == ground {
			return true
		}
		// Labelled forms like "Ground 8 - serious rent arrears" carry the
		// number as the second token; compare it exactly so "Ground 81"
		// never matches ground "8".
		if rest, ok := strings.CutPrefix(g, "ground "); ok {
			num, _, _ := strings.Cut(rest, " ")
			if strings.TrimRight(num, ":,.") == ground {
				return true
			}
		}
	}
	return false
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "2 January 2006", time.RFC3339}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date: %q", value)
}

func annualRent(amount *decimal.Decimal, period string) *decimal.Decimal {
	weekly := weeklyRent(amount, period)
	if weekly == nil {
		return nil
	}
	annual := weekly.Mul(decimal.NewFromInt(52))
	return &annual
}

func weeklyRent(amount *decimal.Decimal, period string) *decimal.Decimal {
	if amount == nil {
		return nil
	}
	var weekly decimal.Decimal
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "weekly":
		weekly = *amount
	case "fortnightly":
		weekly = amount.Div(two)
	case "yearly", "annually":
		weekly = amount.Div(decimal.NewFromInt(52))
	default:
		// rent defaults to monthly when the wizard never asked
		weekly = amount.Mul(decimal.NewFromInt(12)).Div(decimal.NewFromInt(52))
	}
	return &weekly
}

func labelFor(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
