package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Auth errors
var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrTokenRevoked          = errors.New("token has been revoked")
	ErrUserNotFound          = errors.New("user not found")
	ErrRoleNotFound          = errors.New("role not found")
)

// Profile errors
var (
	ErrShelterNotFound            = errors.New("shelter profile not found")
	ErrVetNotFound                = errors.New("vet profile not found")
	ErrVisitorNotFound            = errors.New("visitor profile not found")
	ErrPhoneAlreadyExists         = errors.New("phone number already exists")
	ErrIdentificationAlreadyTaken = errors.New("identification number already exists")
)

// Workflow errors
var (
	ErrForbidden            = errors.New("actor is not allowed to perform this action")
	ErrShelterNotAuthorized = errors.New("shelter is not authorized")
	ErrVetNotAuthorized     = errors.New("vet is not authorized")
	ErrVetAlreadyAssigned   = errors.New("vet is already assigned to this shelter")
	ErrAnimalNotFound       = errors.New("animal not found")
	ErrAnimalNotInShelter   = errors.New("animal does not belong to this shelter")
	ErrAnimalAdopted        = errors.New("animal has already been adopted")
	ErrStatusBackward       = errors.New("animal status cannot move backward")
	ErrVisitNotRequested    = errors.New("no visit has been requested for this animal")
	ErrVisitWithoutVisitor  = errors.New("visit request has no planning visitor attached")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
