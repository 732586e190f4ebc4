package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType identifies one of the supported legal documents
type DocumentType string

const (
	DocTypeSection8Notice        DocumentType = "section8_notice"
	DocTypeSection21Notice       DocumentType = "section21_notice"
	DocTypeASTStandard           DocumentType = "ast_standard"
	DocTypeASTPremium            DocumentType = "ast_premium"
	DocTypeNoticeToLeave         DocumentType = "notice_to_leave"
	DocTypeScotlandPRT           DocumentType = "scotland_prt"
	DocTypeScotlandPRTPremium    DocumentType = "scotland_prt_premium"
	DocTypePrivateTenancy        DocumentType = "private_tenancy"
	DocTypePrivateTenancyPremium DocumentType = "private_tenancy_premium"
)

// DocumentCategory groups document types by legal function
type DocumentCategory string

const (
	CategoryEviction DocumentCategory = "eviction"
	CategoryTenancy  DocumentCategory = "tenancy"
)

// Document represents a generated document record. Immutable after insert
// except the QA fields, which a separate review process fills in later.
type Document struct {
	ID            uuid.UUID    `json:"id"`
	CaseID        uuid.UUID    `json:"case_id"`
	UserID        *uuid.UUID   `json:"user_id,omitempty"`
	DocumentType  DocumentType `json:"document_type"`
	DocumentTitle string       `json:"document_title"`
	HTMLContent   string       `json:"html_content"`
	PDFURL        *string      `json:"pdf_url,omitempty"`
	IsPreview     bool         `json:"is_preview"`
	QAPassed      *bool        `json:"qa_passed,omitempty"`
	QAScore       *int         `json:"qa_score,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}
