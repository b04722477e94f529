package models

// AuthResult is returned by every auth action of the request-scoped auth
// provider. It is never persisted; callers branch on Success and show Error
// to the user as is.
type AuthResult struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AuthSuccess builds a successful result.
func AuthSuccess(user *User) AuthResult {
	return AuthResult{Success: true, User: user}
}

// AuthFailure builds a failed result carrying a user-facing message.
func AuthFailure(message string) AuthResult {
	return AuthResult{Success: false, Error: message}
}
