// Package model provides data transfer objects for the statistics module.
package model

// DeveloperStatistics aggregates tracker activity for one developer.
// Archived tickets count toward their status bucket; hard-deleted rows
// are gone and therefore excluded by definition.
type DeveloperStatistics struct {
	Developer         string `json:"developer"`
	OpenTickets       int    `json:"open_tickets"`
	InProgressTickets int    `json:"in_progress_tickets"`
	ResolvedTickets   int    `json:"resolved_tickets"`
	OpenFeatures      int    `json:"open_features"`
	AcceptedFeatures  int    `json:"accepted_features"`
	RejectedFeatures  int    `json:"rejected_features"`
	CodeChanges       int    `json:"code_changes"`
}

// StatisticsResponse represents the dashboard statistics payload.
type StatisticsResponse struct {
	Developers    []DeveloperStatistics `json:"developers"`
	TotalTickets  int                   `json:"total_tickets"`
	TotalFeatures int                   `json:"total_features"`
}
