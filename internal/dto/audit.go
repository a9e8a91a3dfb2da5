package dto

import (
	"parish-ledger/internal/models"
)

// AuditLogListResponse represents a paginated list of audit entries for a resource
type AuditLogListResponse struct {
	Entries []*models.AuditLog `json:"entries"`
	Total   int64              `json:"total"`
	Offset  int                `json:"offset"`
	Limit   int                `json:"limit"`
}
