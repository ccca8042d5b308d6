package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/repo"
)

// notFoundStore fails every lookup with the repository sentinel so the
// facade's error translation can be checked entity by entity.
type notFoundOwners struct{}

func (notFoundOwners) FindByID(context.Context, int) (*domain.Owner, error) {
	return nil, repo.ErrNotFound
}
func (notFoundOwners) FindAll(context.Context) ([]domain.Owner, error) { return nil, nil }
func (notFoundOwners) FindByLastNamePrefix(context.Context, string) ([]domain.Owner, error) {
	return nil, nil
}
func (notFoundOwners) Save(context.Context, *domain.Owner) error   { return nil }
func (notFoundOwners) Delete(context.Context, *domain.Owner) error { return nil }

type notFoundPets struct{}

func (notFoundPets) FindByID(context.Context, int) (*domain.Pet, error) {
	return nil, repo.ErrNotFound
}
func (notFoundPets) FindAll(context.Context) ([]domain.Pet, error) { return nil, nil }
func (notFoundPets) Save(context.Context, *domain.Pet) error       { return nil }
func (notFoundPets) Delete(context.Context, *domain.Pet) error     { return nil }

type notFoundVisits struct{}

func (notFoundVisits) FindByID(context.Context, int) (*domain.Visit, error) {
	return nil, repo.ErrNotFound
}
func (notFoundVisits) FindAll(context.Context) ([]domain.Visit, error)        { return nil, nil }
func (notFoundVisits) FindByPetID(context.Context, int) ([]domain.Visit, error) { return nil, nil }
func (notFoundVisits) Save(context.Context, *domain.Visit) error              { return nil }
func (notFoundVisits) Delete(context.Context, *domain.Visit) error            { return nil }

type notFoundVets struct{}

func (notFoundVets) FindByID(context.Context, int) (*domain.Vet, error) {
	return nil, repo.ErrNotFound
}
func (notFoundVets) FindAll(context.Context) ([]domain.Vet, error) { return nil, nil }
func (notFoundVets) Save(context.Context, *domain.Vet) error       { return nil }
func (notFoundVets) Delete(context.Context, *domain.Vet) error     { return nil }

type notFoundSpecialties struct{}

func (notFoundSpecialties) FindByID(context.Context, int) (*domain.Specialty, error) {
	return nil, repo.ErrNotFound
}
func (notFoundSpecialties) FindAll(context.Context) ([]domain.Specialty, error) { return nil, nil }
func (notFoundSpecialties) Save(context.Context, *domain.Specialty) error       { return nil }
func (notFoundSpecialties) Delete(context.Context, *domain.Specialty) error     { return nil }

type notFoundPetTypes struct{}

func (notFoundPetTypes) FindByID(context.Context, int) (*domain.PetType, error) {
	return nil, repo.ErrNotFound
}
func (notFoundPetTypes) FindAll(context.Context) ([]domain.PetType, error) { return nil, nil }
func (notFoundPetTypes) Save(context.Context, *domain.PetType) error       { return nil }
func (notFoundPetTypes) Delete(context.Context, *domain.PetType) error     { return nil }

func TestClinicService_TranslatesNotFoundPerEntity(t *testing.T) {
	svc := NewClinicService(&repo.Store{
		Owners:      notFoundOwners{},
		Pets:        notFoundPets{},
		Visits:      notFoundVisits{},
		Vets:        notFoundVets{},
		Specialties: notFoundSpecialties{},
		PetTypes:    notFoundPetTypes{},
	})
	ctx := context.Background()

	if _, err := svc.FindOwnerByID(ctx, 1); !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("owner: %v", err)
	}
	if _, err := svc.FindPetByID(ctx, 1); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("pet: %v", err)
	}
	if _, err := svc.FindVisitByID(ctx, 1); !errors.Is(err, ErrVisitNotFound) {
		t.Fatalf("visit: %v", err)
	}
	if _, err := svc.FindVetByID(ctx, 1); !errors.Is(err, ErrVetNotFound) {
		t.Fatalf("vet: %v", err)
	}
	if _, err := svc.FindSpecialtyByID(ctx, 1); !errors.Is(err, ErrSpecialtyNotFound) {
		t.Fatalf("specialty: %v", err)
	}
	if _, err := svc.FindPetTypeByID(ctx, 1); !errors.Is(err, ErrPetTypeNotFound) {
		t.Fatalf("pet type: %v", err)
	}
}

// erroringOwners fails lookups with an unrelated error to verify the facade
// does not swallow it behind a not-found sentinel.
type erroringOwners struct {
	notFoundOwners
	err error
}

func (e erroringOwners) FindByID(context.Context, int) (*domain.Owner, error) {
	return nil, e.err
}

func TestClinicService_PassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewClinicService(&repo.Store{Owners: erroringOwners{err: boom}})

	_, err := svc.FindOwnerByID(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error, got %v", err)
	}
	if errors.Is(err, ErrOwnerNotFound) {
		t.Fatal("unrelated error must not look like not-found")
	}
}
