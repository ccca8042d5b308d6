// Handler wiring.
//
// Handlers are transport-thin: they parse and validate input, call the
// clinic or user service, and translate results into HTTP responses per the
// API's status contract. Service dependencies are abstract interfaces so the
// transport layer stays decoupled from the concrete service types.
package handlers

import (
	"context"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// ClinicService defines the clinic record operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ClinicService interface {
	FindOwnerByID(ctx context.Context, id int) (*domain.Owner, error)
	FindAllOwners(ctx context.Context) ([]domain.Owner, error)
	FindOwnersByLastName(ctx context.Context, prefix string) ([]domain.Owner, error)
	SaveOwner(ctx context.Context, o *domain.Owner) error
	DeleteOwner(ctx context.Context, o *domain.Owner) error

	FindPetByID(ctx context.Context, id int) (*domain.Pet, error)
	FindAllPets(ctx context.Context) ([]domain.Pet, error)
	SavePet(ctx context.Context, p *domain.Pet) error
	DeletePet(ctx context.Context, p *domain.Pet) error

	FindVisitByID(ctx context.Context, id int) (*domain.Visit, error)
	FindAllVisits(ctx context.Context) ([]domain.Visit, error)
	FindVisitsByPetID(ctx context.Context, petID int) ([]domain.Visit, error)
	SaveVisit(ctx context.Context, v *domain.Visit) error
	DeleteVisit(ctx context.Context, v *domain.Visit) error

	FindVetByID(ctx context.Context, id int) (*domain.Vet, error)
	FindAllVets(ctx context.Context) ([]domain.Vet, error)
	SaveVet(ctx context.Context, v *domain.Vet) error
	DeleteVet(ctx context.Context, v *domain.Vet) error

	FindSpecialtyByID(ctx context.Context, id int) (*domain.Specialty, error)
	FindAllSpecialties(ctx context.Context) ([]domain.Specialty, error)
	SaveSpecialty(ctx context.Context, s *domain.Specialty) error
	DeleteSpecialty(ctx context.Context, s *domain.Specialty) error

	FindPetTypeByID(ctx context.Context, id int) (*domain.PetType, error)
	FindAllPetTypes(ctx context.Context) ([]domain.PetType, error)
	SavePetType(ctx context.Context, t *domain.PetType) error
	DeletePetType(ctx context.Context, t *domain.PetType) error
}

// UserService defines the account management operations consumed by HTTP
// handlers.
type UserService interface {
	SaveUser(ctx context.Context, u *domain.User) error
}

// Handlers groups the HTTP endpoints for all clinic resources.
type Handlers struct {
	clinic ClinicService
	users  UserService
}

// New constructs a Handlers instance bound to the given services.
func New(clinic ClinicService, users UserService) *Handlers {
	return &Handlers{clinic: clinic, users: users}
}
