// Package services holds the clinic's business layer: the ClinicService
// facade over all entity repositories and the UserService enforcing the
// role invariants. This file centralizes the service-level error values so
// handlers can map them to HTTP results consistently. Persistence-layer
// not-found errors never cross the service boundary; they are translated
// into the sentinels below.
package services

import "errors"

var (
	// ErrOwnerNotFound indicates the requested owner does not exist.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrPetNotFound indicates the requested pet does not exist.
	ErrPetNotFound = errors.New("pet not found")

	// ErrVisitNotFound indicates the requested visit does not exist.
	ErrVisitNotFound = errors.New("visit not found")

	// ErrVetNotFound indicates the requested vet does not exist.
	ErrVetNotFound = errors.New("vet not found")

	// ErrSpecialtyNotFound indicates the requested specialty does not exist.
	ErrSpecialtyNotFound = errors.New("specialty not found")

	// ErrPetTypeNotFound indicates the requested pet type does not exist.
	ErrPetTypeNotFound = errors.New("pet type not found")

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoRoles is returned when a user save carries an empty role set.
	// The save is rejected before any database write.
	ErrNoRoles = errors.New("user must have at least one role")
)
