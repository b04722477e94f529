package models

// Role is a closed set of marketplace roles stored as account labels.
type Role string

const (
	// RoleEmployer is a household looking for help ("majikan").
	RoleEmployer Role = "majikan"

	// RoleWorker is a domestic-help worker ("pekerja").
	RoleWorker Role = "pekerja"

	// RoleAdmin moderates postings and reviews.
	RoleAdmin Role = "admin"
)

// Capability is an action gated by role.
type Capability int

const (
	// CapViewDashboard allows opening the dashboard pages.
	CapViewDashboard Capability = iota + 1

	// CapPostJob allows creating and editing own job postings.
	CapPostJob

	// CapWriteReview allows reviewing a worker.
	CapWriteReview

	// CapManageAnyJob allows editing or deleting postings of other users.
	CapManageAnyJob
)

var roleCapabilities = map[Role][]Capability{
	RoleEmployer: {CapViewDashboard, CapPostJob, CapWriteReview},
	RoleWorker:   {CapViewDashboard},
	RoleAdmin:    {CapViewDashboard, CapPostJob, CapWriteReview, CapManageAnyJob},
}

// ParseRole maps a label to a known role.
func ParseRole(label string) (Role, bool) {
	role := Role(label)
	if _, ok := roleCapabilities[role]; !ok {
		return "", false
	}

	return role, true
}

// Grants reports whether the role includes capability c.
func (r Role) Grants(c Capability) bool {
	for _, capability := range roleCapabilities[r] {
		if capability == c {
			return true
		}
	}

	return false
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}
