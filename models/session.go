package models

import "time"

// Session is a login session issued by the identity backend.
//
// Secret is the opaque token stored in the session cookie. Nothing in the
// application decodes or validates it; only the identity backend can tell
// whether it is still valid.
type Session struct {
	ID     string    `json:"$id"`
	UserID string    `json:"userId"`
	Secret string    `json:"secret"`
	Expire time.Time `json:"expire"`
}

// IsZero reports whether s carries no secret.
func (s Session) IsZero() bool {
	return s.Secret == ""
}
