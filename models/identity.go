package models

// UserInfo is the OpenID Connect profile of the authenticated user.
type UserInfo struct {
	UserID          string   `json:"user_id" validate:"required"`
	Name            string   `json:"name,omitempty"`
	GivenName       string   `json:"given_name,omitempty"`
	FamilyName      string   `json:"family_name,omitempty"`
	Email           string   `json:"email,omitempty"`
	EmailVerified   bool     `json:"email_verified,omitempty"`
	PayerID         string   `json:"payer_id,omitempty"`
	VerifiedAccount bool     `json:"verified_account,omitempty"`
	Address         *Address `json:"address,omitempty"`
	Locale          string   `json:"locale,omitempty"`
	Zoneinfo        string   `json:"zoneinfo,omitempty"`
}

// TokenInfo is an OAuth token exchange response.
type TokenInfo struct {
	Scope        string `json:"scope,omitempty"`
	AccessToken  string `json:"access_token" validate:"required"`
	TokenType    string `json:"token_type,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}
