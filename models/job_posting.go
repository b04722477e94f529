package models

import "time"

// JobCategory is the kind of help a household is looking for.
type JobCategory string

const (
	CategoryNanny       JobCategory = "nanny"
	CategoryHousekeeper JobCategory = "housekeeper"
	CategoryCaregiver   JobCategory = "caregiver"
	CategoryCook        JobCategory = "cook"
	CategoryDriver      JobCategory = "driver"
)

// Arrangement tells whether the worker lives in the employer's house.
type Arrangement string

const (
	ArrangementLiveIn  Arrangement = "live-in"
	ArrangementLiveOut Arrangement = "live-out"
)

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// JobPosting is a vacancy ("lowongan") published by an employer.
type JobPosting struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"ownerId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    JobCategory `json:"category"`
	City        string      `json:"city"`

	// SalaryMin and SalaryMax are monthly amounts in rupiah.
	SalaryMin int64 `json:"salaryMin"`
	SalaryMax int64 `json:"salaryMax"`

	Arrangement Arrangement `json:"arrangement"`
	Status      JobStatus   `json:"status"`
	PhotoFileID string      `json:"photoFileId,omitempty"`

	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobPostingUpdate holds the optional fields of an edit form.
// Nil fields are left unchanged.
type JobPostingUpdate struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Category    *JobCategory `json:"category,omitempty"`
	City        *string      `json:"city,omitempty"`
	SalaryMin   *int64       `json:"salaryMin,omitempty"`
	SalaryMax   *int64       `json:"salaryMax,omitempty"`
	Arrangement *Arrangement `json:"arrangement,omitempty"`
	Status      *JobStatus   `json:"status,omitempty"`
	PhotoFileID *string      `json:"photoFileId,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u JobPostingUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil && u.City == nil &&
		u.SalaryMin == nil && u.SalaryMax == nil && u.Arrangement == nil && u.Status == nil &&
		u.PhotoFileID == nil
}

// Apply copies the non-nil fields of u onto p.
func (u JobPostingUpdate) Apply(p *JobPosting) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.SalaryMin != nil {
		p.SalaryMin = *u.SalaryMin
	}
	if u.SalaryMax != nil {
		p.SalaryMax = *u.SalaryMax
	}
	if u.Arrangement != nil {
		p.Arrangement = *u.Arrangement
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.PhotoFileID != nil {
		p.PhotoFileID = *u.PhotoFileID
	}
}

// JobPostingFilter narrows a listing. Zero values mean "any".
type JobPostingFilter struct {
	OwnerID  string
	Category JobCategory
	City     string
	Status   JobStatus
}
