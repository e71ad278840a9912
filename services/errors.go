package services

import "errors"

// Shared sentinel errors, mapped to HTTP statuses in the handlers package.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed          = errors.New("validation failed")
	ErrSportSlugRequired         = errors.New("sport slug is required")
	ErrTeamARequired             = errors.New("team A name is required")
	ErrTeamBRequired             = errors.New("team B name is required")
	ErrInvalidMatchStatus        = errors.New("invalid match status provided")
	ErrInvalidStatusTransition   = errors.New("invalid match status transition")
	ErrSportNameRequired         = errors.New("sport name is required")
	ErrAnnouncementTitleRequired = errors.New("announcement title is required")
	ErrAnnouncementBodyRequired  = errors.New("announcement body is required")
	ErrUnsupportedLogoType       = errors.New("unsupported logo content type")

	// Conflicts
	ErrSportNameConflict = errors.New("sport name already exists")
	ErrSportSlugConflict = errors.New("sport slug already exists")
	ErrSportInUse        = errors.New("sport cannot be deleted while matches reference it")

	// Authentication and authorization
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrSportForbidden         = errors.New("caller is not permitted to manage this sport")
	ErrSuperAdminRequired     = errors.New("super admin privileges required")

	// Entity-specific not-found (more context than the generic ErrNotFound)
	ErrSportNotFound        = errors.New("sport not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrUserNotFound         = errors.New("user not found")

	// Infrastructure
	ErrMediaStorageUnavailable = errors.New("media storage is not configured")
)
