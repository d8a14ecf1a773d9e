package preregistration

import "errors"

var (
	ErrNotFound = errors.New("pre-registered employee not found")

	ErrEmployeeCodePreRegistered = errors.New("employee code already exists in pre-registration list")
	ErrEmailPreRegistered        = errors.New("email already exists in pre-registration list")
	ErrEmployeeCodeRegistered    = errors.New("employee code already registered")
	ErrEmailRegistered           = errors.New("email already registered")

	// ErrAlreadyRegistered guards deletion: a consumed entry is kept.
	ErrAlreadyRegistered = errors.New("employee has already completed registration")
)
