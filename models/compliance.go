package models

// IssueSeverity distinguishes blocking compliance failures from advisories
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// ComplianceIssue is a structured statement that a statutory precondition or
// required fact is unmet. Issues are produced fresh each validation run and
// never persisted. Field doubles as the machine-readable code the client uses
// to route the user back to the relevant wizard step.
type ComplianceIssue struct {
	Field    string        `json:"field"`
	Severity IssueSeverity `json:"severity"`
	Message  string        `json:"message"`
	Expected string        `json:"expected,omitempty"`
	Actual   string        `json:"actual,omitempty"`
}

// SuitabilityResult reports whether a tenancy-agreement family is an
// appropriate instrument for the facts at hand
type SuitabilityResult struct {
	Valid   bool     `json:"valid"`
	Reasons []string `json:"reasons"`
}

// BlockingFields returns the field identifiers of all error-severity issues,
// in order
func BlockingFields(issues []ComplianceIssue) []string {
	var fields []string
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			fields = append(fields, issue.Field)
		}
	}
	return fields
}
