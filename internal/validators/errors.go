package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTitle       = errors.New("invalid title")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidCity        = errors.New("invalid city")
	ErrInvalidSalary      = errors.New("invalid salary range")
	ErrInvalidArrangement = errors.New("invalid arrangement")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidExpiry      = errors.New("expiry must be in the future")
	ErrInvalidOwnerID     = errors.New("invalid owner ID")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")

	ErrInvalidWorkerID = errors.New("invalid worker ID")
	ErrInvalidAuthorID = errors.New("invalid author ID")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidComment  = errors.New("invalid comment")
	ErrSelfReview      = errors.New("cannot review yourself")

	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidRole     = errors.New("invalid role")
)
