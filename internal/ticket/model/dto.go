package model

// CreateTicketRequest represents a public bug report submission.
type CreateTicketRequest struct {
	Developer        string `json:"developer"         binding:"required"`
	Class            string `json:"class"             binding:"required"`
	Spec             string `json:"spec"`
	CurrentBehavior  string `json:"current_behavior"  binding:"required"`
	ExpectedBehavior string `json:"expected_behavior" binding:"required"`
	Priority         string `json:"priority"`
	ReporterName     string `json:"reporter_name"`
}

// UpdateTicketRequest represents a partial update by an authenticated
// developer. Nil fields are left unchanged.
type UpdateTicketRequest struct {
	Class            *string `json:"class"`
	Spec             *string `json:"spec"`
	CurrentBehavior  *string `json:"current_behavior"`
	ExpectedBehavior *string `json:"expected_behavior"`
	Priority         *string `json:"priority"`
	Status           *string `json:"status"`
	ResolveReason    *string `json:"resolveReason"`
}

// ListTicketsFilter narrows the public ticket listing.
type ListTicketsFilter struct {
	Developer string
	Status    string
	Priority  string
	// Archived filters on the archival flag when non-nil.
	Archived *bool
}

// TicketResponse wraps a single ticket with the standard message field.
type TicketResponse struct {
	Message string    `json:"message"`
	Ticket  BugTicket `json:"ticket"`
}

// TicketsResponse lists tickets.
type TicketsResponse struct {
	Tickets []BugTicket `json:"tickets"`
	Total   int         `json:"total"`
}
