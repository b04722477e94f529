package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-helper-market/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldCity        = "city"
	FieldSalary      = "salary"
	FieldArrangement = "arrangement"
	FieldStatus      = "status"
	FieldExpiresAt   = "expires_at"
	FieldOwnerID     = "owner_id"

	FieldWorkerID = "worker_id"
	FieldAuthorID = "author_id"
	FieldRating   = "rating"
	FieldComment  = "comment"

	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldRole     = "role"
)

// Limits of free-text fields, in runes.
const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 5000
	MaxCityLength        = 80
	MaxCommentLength     = 1000
	MaxNameLength        = 128
	MinPasswordLength    = 8
)

var allowedCategories = []models.JobCategory{
	models.CategoryNanny,
	models.CategoryHousekeeper,
	models.CategoryCaregiver,
	models.CategoryCook,
	models.CategoryDriver,
}

// MarketplaceValidator validates job postings, their updates, reviews and
// the credentials of the signup form.
type MarketplaceValidator struct {
	now func() time.Time
}

func NewMarketplaceValidator() Validator {
	return &MarketplaceValidator{now: time.Now}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *MarketplaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JobPosting:
		return v.validateJobPosting(value, fields...)
	case *models.JobPosting:
		return v.validateJobPosting(*value, fields...)

	case models.JobPostingUpdate:
		return v.validateJobPostingUpdate(value, fields...)
	case *models.JobPostingUpdate:
		return v.validateJobPostingUpdate(*value, fields...)

	case models.Review:
		return v.validateReview(value, fields...)
	case *models.Review:
		return v.validateReview(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidCategory(c models.JobCategory) bool {
	for _, allowed := range allowedCategories {
		if c == allowed {
			return true
		}
	}
	return false
}

func isValidArrangement(a models.Arrangement) bool {
	return a == models.ArrangementLiveIn || a == models.ArrangementLiveOut
}

func isValidStatus(s models.JobStatus) bool {
	return s == models.JobStatusOpen || s == models.JobStatusClosed
}

func validText(s string, maxLen int) bool {
	s = strings.TrimSpace(s)
	return s != "" && utf8.RuneCountInString(s) <= maxLen
}

func validSalary(minSalary, maxSalary int64) bool {
	if minSalary < 0 || maxSalary < 0 {
		return false
	}
	// zero max means "negotiable"
	return maxSalary == 0 || maxSalary >= minSalary
}

func (v *MarketplaceValidator) validateJobPosting(p models.JobPosting, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldTitle, FieldDescription, FieldCategory, FieldCity, FieldSalary, FieldArrangement, FieldExpiresAt}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if strings.TrimSpace(p.OwnerID) == "" {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if !validText(p.Title, MaxTitleLength) {
				return ErrInvalidTitle
			}
		case FieldDescription:
			if utf8.RuneCountInString(p.Description) > MaxDescriptionLength {
				return ErrInvalidDescription
			}
		case FieldCategory:
			if !isValidCategory(p.Category) {
				return ErrInvalidCategory
			}
		case FieldCity:
			if !validText(p.City, MaxCityLength) {
				return ErrInvalidCity
			}
		case FieldSalary:
			if !validSalary(p.SalaryMin, p.SalaryMax) {
				return ErrInvalidSalary
			}
		case FieldArrangement:
			if !isValidArrangement(p.Arrangement) {
				return ErrInvalidArrangement
			}
		case FieldStatus:
			if !isValidStatus(p.Status) {
				return ErrInvalidStatus
			}
		case FieldExpiresAt:
			if !p.ExpiresAt.IsZero() && !p.ExpiresAt.After(v.now()) {
				return ErrInvalidExpiry
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateJobPostingUpdate(u models.JobPostingUpdate, fields ...string) error {
	if u.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldCategory, FieldCity, FieldArrangement, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if u.Title != nil && !validText(*u.Title, MaxTitleLength) {
				return ErrInvalidTitle
			}
		case FieldDescription:
			if u.Description != nil && utf8.RuneCountInString(*u.Description) > MaxDescriptionLength {
				return ErrInvalidDescription
			}
		case FieldCategory:
			if u.Category != nil && !isValidCategory(*u.Category) {
				return ErrInvalidCategory
			}
		case FieldCity:
			if u.City != nil && !validText(*u.City, MaxCityLength) {
				return ErrInvalidCity
			}
		case FieldArrangement:
			if u.Arrangement != nil && !isValidArrangement(*u.Arrangement) {
				return ErrInvalidArrangement
			}
		case FieldStatus:
			if u.Status != nil && !isValidStatus(*u.Status) {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	// the salary range is checked against the stored posting after Apply
	return nil
}

func (v *MarketplaceValidator) validateReview(r models.Review, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWorkerID, FieldAuthorID, FieldRating, FieldComment}
	}

	for _, f := range fields {
		switch f {
		case FieldWorkerID:
			if strings.TrimSpace(r.WorkerID) == "" {
				return ErrInvalidWorkerID
			}
		case FieldAuthorID:
			if strings.TrimSpace(r.AuthorID) == "" {
				return ErrInvalidAuthorID
			}
			if r.AuthorID == r.WorkerID {
				return ErrSelfReview
			}
		case FieldRating:
			if r.Rating < models.MinRating || r.Rating > models.MaxRating {
				return ErrInvalidRating
			}
		case FieldComment:
			if utf8.RuneCountInString(r.Comment) > MaxCommentLength {
				return ErrInvalidComment
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			addr, err := mail.ParseAddress(strings.TrimSpace(c.Email))
			if err != nil || addr.Address != strings.TrimSpace(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(c.Password) < MinPasswordLength {
				return ErrInvalidPassword
			}
		case FieldName:
			if !validText(c.Name, MaxNameLength) {
				return ErrInvalidName
			}
		case FieldRole:
			role, ok := models.ParseRole(c.Role)
			if c.Role != "" && (!ok || role == models.RoleAdmin) {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
