package models

import (
	"time"

	"github.com/google/uuid"
)

// EvidenceFile represents a supporting document uploaded against a case,
// e.g. a gas safety certificate, EPC, or deposit protection certificate
type EvidenceFile struct {
	ID          uuid.UUID `json:"id"`
	CaseID      uuid.UUID `json:"case_id"`
	UserID      uuid.UUID `json:"user_id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
