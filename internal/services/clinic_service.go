// Package services – ClinicService
//
// ClinicService is the single facade all HTTP handlers talk to. It exposes
// one cohesive API over every entity repository and normalizes the storage
// strategies' not-found signal into explicit service sentinels, so callers
// never need to distinguish which persistence strategy is active. Write
// paths run in their own transaction inside the repositories (single-row
// saves are atomic by themselves; cascade deletes and replace-all saves are
// wrapped by the stores).
package services

import (
	"context"
	"errors"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/repo"
)

// ClinicService aggregates all entity repositories behind one API.
type ClinicService struct {
	store *repo.Store
}

// NewClinicService constructs the facade over the chosen storage strategy.
func NewClinicService(store *repo.Store) *ClinicService {
	return &ClinicService{store: store}
}

// mapNotFound converts repository not-found errors into the given service
// sentinel and passes other errors through untouched.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return sentinel
	}
	return err
}

// FindOwnerByID returns the fully hydrated owner aggregate or
// ErrOwnerNotFound.
func (s *ClinicService) FindOwnerByID(ctx context.Context, id int) (*domain.Owner, error) {
	o, err := s.store.Owners.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrOwnerNotFound)
	}
	return o, nil
}

// FindAllOwners returns every owner aggregate.
func (s *ClinicService) FindAllOwners(ctx context.Context) ([]domain.Owner, error) {
	return s.store.Owners.FindAll(ctx)
}

// FindOwnersByLastName returns owners whose last name starts with prefix.
func (s *ClinicService) FindOwnersByLastName(ctx context.Context, prefix string) ([]domain.Owner, error) {
	return s.store.Owners.FindByLastNamePrefix(ctx, prefix)
}

// SaveOwner inserts or updates the owner.
func (s *ClinicService) SaveOwner(ctx context.Context, o *domain.Owner) error {
	return s.store.Owners.Save(ctx, o)
}

// DeleteOwner removes the owner and cascades through its pets and visits.
func (s *ClinicService) DeleteOwner(ctx context.Context, o *domain.Owner) error {
	return s.store.Owners.Delete(ctx, o)
}

// FindPetByID returns the hydrated pet or ErrPetNotFound.
func (s *ClinicService) FindPetByID(ctx context.Context, id int) (*domain.Pet, error) {
	p, err := s.store.Pets.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrPetNotFound)
	}
	return p, nil
}

// FindAllPets returns every pet.
func (s *ClinicService) FindAllPets(ctx context.Context) ([]domain.Pet, error) {
	return s.store.Pets.FindAll(ctx)
}

// SavePet inserts or updates the pet.
func (s *ClinicService) SavePet(ctx context.Context, p *domain.Pet) error {
	return s.store.Pets.Save(ctx, p)
}

// DeletePet removes the pet and its visits.
func (s *ClinicService) DeletePet(ctx context.Context, p *domain.Pet) error {
	return s.store.Pets.Delete(ctx, p)
}

// FindVisitByID returns the visit or ErrVisitNotFound.
func (s *ClinicService) FindVisitByID(ctx context.Context, id int) (*domain.Visit, error) {
	v, err := s.store.Visits.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrVisitNotFound)
	}
	return v, nil
}

// FindAllVisits returns every visit.
func (s *ClinicService) FindAllVisits(ctx context.Context) ([]domain.Visit, error) {
	return s.store.Visits.FindAll(ctx)
}

// FindVisitsByPetID returns the pet's visits, most recent first.
func (s *ClinicService) FindVisitsByPetID(ctx context.Context, petID int) ([]domain.Visit, error) {
	return s.store.Visits.FindByPetID(ctx, petID)
}

// SaveVisit inserts or updates the visit.
func (s *ClinicService) SaveVisit(ctx context.Context, v *domain.Visit) error {
	return s.store.Visits.Save(ctx, v)
}

// DeleteVisit removes the visit.
func (s *ClinicService) DeleteVisit(ctx context.Context, v *domain.Visit) error {
	return s.store.Visits.Delete(ctx, v)
}

// FindVetByID returns the vet with specialties or ErrVetNotFound.
func (s *ClinicService) FindVetByID(ctx context.Context, id int) (*domain.Vet, error) {
	v, err := s.store.Vets.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrVetNotFound)
	}
	return v, nil
}

// FindAllVets returns every vet with specialties attached.
func (s *ClinicService) FindAllVets(ctx context.Context) ([]domain.Vet, error) {
	return s.store.Vets.FindAll(ctx)
}

// SaveVet inserts or updates the vet, replacing its specialty links.
func (s *ClinicService) SaveVet(ctx context.Context, v *domain.Vet) error {
	return s.store.Vets.Save(ctx, v)
}

// DeleteVet removes the vet and its specialty links.
func (s *ClinicService) DeleteVet(ctx context.Context, v *domain.Vet) error {
	return s.store.Vets.Delete(ctx, v)
}

// FindSpecialtyByID returns the specialty or ErrSpecialtyNotFound.
func (s *ClinicService) FindSpecialtyByID(ctx context.Context, id int) (*domain.Specialty, error) {
	spec, err := s.store.Specialties.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrSpecialtyNotFound)
	}
	return spec, nil
}

// FindAllSpecialties returns every specialty.
func (s *ClinicService) FindAllSpecialties(ctx context.Context) ([]domain.Specialty, error) {
	return s.store.Specialties.FindAll(ctx)
}

// SaveSpecialty inserts or updates the specialty.
func (s *ClinicService) SaveSpecialty(ctx context.Context, spec *domain.Specialty) error {
	return s.store.Specialties.Save(ctx, spec)
}

// DeleteSpecialty removes the specialty and its join rows.
func (s *ClinicService) DeleteSpecialty(ctx context.Context, spec *domain.Specialty) error {
	return s.store.Specialties.Delete(ctx, spec)
}

// FindPetTypeByID returns the pet type or ErrPetTypeNotFound.
func (s *ClinicService) FindPetTypeByID(ctx context.Context, id int) (*domain.PetType, error) {
	t, err := s.store.PetTypes.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrPetTypeNotFound)
	}
	return t, nil
}

// FindAllPetTypes returns every pet type ordered by name.
func (s *ClinicService) FindAllPetTypes(ctx context.Context) ([]domain.PetType, error) {
	return s.store.PetTypes.FindAll(ctx)
}

// SavePetType inserts or updates the pet type.
func (s *ClinicService) SavePetType(ctx context.Context, t *domain.PetType) error {
	return s.store.PetTypes.Save(ctx, t)
}

// DeletePetType removes the type, cascading through referencing pets.
func (s *ClinicService) DeletePetType(ctx context.Context, t *domain.PetType) error {
	return s.store.PetTypes.Delete(ctx, t)
}
