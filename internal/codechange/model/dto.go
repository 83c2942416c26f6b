package model

// CreateCodeChangeRequest represents a manual code-change log entry.
type CreateCodeChangeRequest struct {
	FilePath    string `json:"file_path"   binding:"required"`
	Description string `json:"description" binding:"required"`
	ChangeType  string `json:"change_type" binding:"required"`
	TicketID    *uint  `json:"ticket_id"`
	ExternalURL string `json:"external_url"`
}

// ListCodeChangesFilter narrows the code-change listing.
type ListCodeChangesFilter struct {
	// ProfileID filters by owning profile when non-zero.
	ProfileID uint
}

// CodeChangesResponse lists code changes.
type CodeChangesResponse struct {
	CodeChanges []CodeChange `json:"code_changes"`
	Total       int          `json:"total"`
}
