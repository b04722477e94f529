package models

import "time"

// User is the account record owned by the identity backend.
// The application only holds a read-mostly copy for the duration of a
// request; it is re-fetched after every mutation.
type User struct {
	// ID is the backend-assigned identifier of the account.
	ID string `json:"$id"`

	// Email is the login e-mail address.
	Email string `json:"email"`

	// Name is the display name shown in the marketplace.
	Name string `json:"name"`

	// Phone is optional and empty when the user never provided one.
	Phone string `json:"phone,omitempty"`

	// EmailVerification reports whether the e-mail address was confirmed.
	EmailVerification bool `json:"emailVerification"`

	// PhoneVerification reports whether the phone number was confirmed.
	PhoneVerification bool `json:"phoneVerification"`

	// Prefs is an opaque key-value bag stored alongside the account.
	Prefs map[string]any `json:"prefs"`

	// Registration is the account creation timestamp.
	Registration time.Time `json:"registration"`

	// Status is false for disabled accounts.
	Status bool `json:"status"`

	// Labels are free-form tags; the known ones are mapped to [Role].
	Labels []string `json:"labels"`

	// AccessedAt is the last time the account was used.
	AccessedAt time.Time `json:"accessedAt"`
}

// Roles returns the closed set of roles encoded in the user's labels.
// Unknown labels are ignored.
func (u User) Roles() []Role {
	roles := make([]Role, 0, len(u.Labels))
	for _, label := range u.Labels {
		if role, ok := ParseRole(label); ok {
			roles = append(roles, role)
		}
	}

	return roles
}

// HasRole reports whether the user carries the given role label.
func (u User) HasRole(role Role) bool {
	for _, r := range u.Roles() {
		if r == role {
			return true
		}
	}

	return false
}

// Can reports whether any of the user's roles grants capability c.
func (u User) Can(c Capability) bool {
	if !u.Status {
		return false
	}

	for _, role := range u.Roles() {
		if role.Grants(c) {
			return true
		}
	}

	return false
}

// CanManage reports whether the user may edit or delete posting: the owner
// while still allowed to post jobs, or anyone who manages all postings.
func (u User) CanManage(posting JobPosting) bool {
	return (u.ID == posting.OwnerID && u.Can(CapPostJob)) || u.Can(CapManageAnyJob)
}

// PrefString returns a string preference or an empty string.
func (u User) PrefString(key string) string {
	if u.Prefs == nil {
		return ""
	}

	s, _ := u.Prefs[key].(string)
	return s
}

// ProfileUpdate carries the fields a user may change on the profile page.
//
// Changing Email requires Password (the user's current password); the
// identity backend rejects e-mail changes without it.
type ProfileUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Credentials is the body of login and signup forms.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// PrefAvatarFileID is the preference key holding the profile photo file id.
const PrefAvatarFileID = "avatarFileId"
