package model

// RegisterRequest represents the request to create a developer account.
type RegisterRequest struct {
	Username           string `json:"username"            binding:"required"`
	Email              string `json:"email"               binding:"required"`
	Password           string `json:"password"            binding:"required"`
	DeveloperType      string `json:"developer_type"      binding:"required"`
	RegistrationSecret string `json:"registration_secret" binding:"required"`
}

// LoginRequest represents a login attempt. Identifier is resolved as an
// email when it contains '@', otherwise as a username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

// AuthResponse is returned after a successful register or login.
type AuthResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// UpdateAvatarRequest sets the caller's profile avatar.
type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatar_url" binding:"required"`
}

// ProfilesResponse lists all developer profiles.
type ProfilesResponse struct {
	Profiles []Profile `json:"profiles"`
}
