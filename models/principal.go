package models

// Principal is the authenticated caller resolved from a session.
type Principal struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	TokenID string `json:"-"`
}
