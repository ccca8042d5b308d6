// Package repo defines the persistence contracts shared by both storage
// strategies. Each entity gets a small capability interface; a Store bundles
// one repository per entity and is the single dependency of the service
// layer. The concrete implementations live in the gormstore (ORM) and
// sqlstore (hand-written SQL) subpackages and must be observably
// interchangeable: same rows written, same identifier assignment, same
// not-found signaling.
package repo

import (
	"context"
	"errors"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// ErrNotFound is returned by lookups when no row matches. Both storage
// strategies translate their driver-specific not-found signals into this
// sentinel so callers never see strategy-specific errors.
var ErrNotFound = errors.New("record not found")

// OwnerRepository persists owners and their pet/visit aggregates.
// FindByID and the list operations return fully hydrated aggregates: pets
// attached with their visits and pet types resolved.
type OwnerRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Owner, error)
	FindAll(ctx context.Context) ([]domain.Owner, error)
	// FindByLastNamePrefix returns owners whose last name starts with the
	// given prefix. Matching follows the database collation.
	FindByLastNamePrefix(ctx context.Context, prefix string) ([]domain.Owner, error)
	// Save inserts when the owner has no ID (assigning the generated key
	// back onto the entity) and updates the owner row otherwise.
	Save(ctx context.Context, o *domain.Owner) error
	// Delete removes the owner and cascades through its pets and their
	// visits, children first, inside one transaction.
	Delete(ctx context.Context, o *domain.Owner) error
}

// PetRepository persists pets. FindByID returns the pet with its visits and
// resolved type.
type PetRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Pet, error)
	FindAll(ctx context.Context) ([]domain.Pet, error)
	Save(ctx context.Context, p *domain.Pet) error
	// Delete removes the pet's visits, then the pet, inside one transaction.
	Delete(ctx context.Context, p *domain.Pet) error
}

// VisitRepository persists visits.
type VisitRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Visit, error)
	FindAll(ctx context.Context) ([]domain.Visit, error)
	FindByPetID(ctx context.Context, petID int) ([]domain.Visit, error)
	Save(ctx context.Context, v *domain.Visit) error
	Delete(ctx context.Context, v *domain.Visit) error
}

// VetRepository persists vets and their specialty links. Save replaces the
// vet's join rows wholesale; Delete removes join rows before the vet row.
type VetRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Vet, error)
	FindAll(ctx context.Context) ([]domain.Vet, error)
	Save(ctx context.Context, v *domain.Vet) error
	Delete(ctx context.Context, v *domain.Vet) error
}

// SpecialtyRepository persists specialties. Delete removes vet_specialties
// join rows referencing the specialty before the specialty row.
type SpecialtyRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Specialty, error)
	FindAll(ctx context.Context) ([]domain.Specialty, error)
	Save(ctx context.Context, s *domain.Specialty) error
	Delete(ctx context.Context, s *domain.Specialty) error
}

// PetTypeRepository persists pet types. Delete cascades through every pet
// referencing the type (visits first, then the pet) before the type row.
type PetTypeRepository interface {
	FindByID(ctx context.Context, id int) (*domain.PetType, error)
	FindAll(ctx context.Context) ([]domain.PetType, error)
	Save(ctx context.Context, t *domain.PetType) error
	Delete(ctx context.Context, t *domain.PetType) error
}

// UserRepository persists users. Save upserts the user row by username and
// replaces the user's roles wholesale in the same transaction.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Save(ctx context.Context, u *domain.User) error
}

// Store bundles one repository per entity. The service facade depends on
// this struct only; the chosen strategy fills it at startup.
type Store struct {
	Owners      OwnerRepository
	Pets        PetRepository
	Visits      VisitRepository
	Vets        VetRepository
	Specialties SpecialtyRepository
	PetTypes    PetTypeRepository
	Users       UserRepository
}
