package model

// CreateFeatureRequest represents a public feature suggestion submission.
type CreateFeatureRequest struct {
	Developer    string `json:"developer"   binding:"required"`
	Category     string `json:"category"    binding:"required"`
	Class        string `json:"class"`
	Description  string `json:"description" binding:"required"`
	IsPrivate    bool   `json:"isPrivate"`
	ReporterName string `json:"reporter_name"`
}

// UpdateFeatureRequest represents a partial update by an authenticated
// developer. Nil fields are left unchanged.
type UpdateFeatureRequest struct {
	Category    *string `json:"category"`
	Class       *string `json:"class"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	IsPrivate   *bool   `json:"isPrivate"`
}

// ListFeaturesFilter narrows the feature listing.
type ListFeaturesFilter struct {
	Developer string
	Status    string
	// IncludePrivate is set for authenticated callers only.
	IncludePrivate bool
}

// FeatureResponse wraps a single feature request with the standard message field.
type FeatureResponse struct {
	Message string         `json:"message"`
	Feature FeatureRequest `json:"feature"`
}

// FeaturesResponse lists feature requests.
type FeaturesResponse struct {
	Features []FeatureRequest `json:"features"`
	Total    int              `json:"total"`
}
